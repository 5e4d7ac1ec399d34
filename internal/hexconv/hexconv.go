package hexconv

var lowerTable = [256]bool{
	'0': true,
	'1': true,
	'2': true,
	'3': true,
	'4': true,
	'5': true,
	'6': true,
	'7': true,
	'8': true,
	'9': true,
	'a': true,
	'b': true,
	'c': true,
	'd': true,
	'e': true,
	'f': true,
}

// IsLower tells whether the char is a hex digit in its lowercase form. Uppercase
// A-F are rejected, as hosts are already lowercased when they reach us
func IsLower(char byte) bool {
	return lowerTable[char]
}
