package checkers

// Path signature bits, see PathSignature.
const (
	NeedsPercentEncoding uint8 = 1 << iota
	HasBackslash
	HasDot
	HasPercent
)

var pathSignatureTable = func() (table [256]uint8) {
	for char := 0; char < 0x20; char++ {
		table[char] = NeedsPercentEncoding
	}

	for char := 0x7f; char < len(table); char++ {
		table[char] = NeedsPercentEncoding
	}

	const pathPercentEncodeSet = " \"#<>?`{}"
	for i := 0; i < len(pathPercentEncodeSet); i++ {
		table[pathPercentEncodeSet[i]] = NeedsPercentEncoding
	}

	table['\\'] = HasBackslash
	table['.'] = HasDot
	table['%'] = HasPercent

	return table
}()

// PathSignature summarizes which of the path-relevant classes occur in the input.
// Zero means the path can be taken as is: nothing to encode, no backslashes to
// flip, no dot segments to resolve and no percent-encoded sequences.
func PathSignature(input string) (signature uint8) {
	for i := 0; i < len(input); i++ {
		signature |= pathSignatureTable[input[i]]
	}

	return signature
}
