package checkers

import "github.com/indigo-web/urlcheck/internal/hexconv"

func IsDigit(char byte) bool {
	return '0' <= char && char <= '9'
}

// ToLower sets the case bit. The result is meaningful for ASCII letters only,
// any other byte just gets mangled.
func ToLower(char byte) byte {
	return char | 0x20
}

func IsAlpha(char byte) bool {
	lower := ToLower(char)
	return 'a' <= lower && lower <= 'z'
}

// IsLowerHex accepts 0-9 and a-f.
func IsLowerHex(char byte) bool {
	return hexconv.IsLower(char)
}
