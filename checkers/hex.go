package checkers

import (
	"encoding/binary"

	"github.com/indigo-web/urlcheck/internal/endian"
	"github.com/indigo-web/utils/uf"
)

var (
	zeroX         = binary.NativeEndian.Uint16(uf.S2B("0x"))
	hexPrefixMask = endian.SecondByteMask()
)

// HasHexPrefix tells whether the input starts with 0x or 0X.
func HasHexPrefix(input string) bool {
	return len(input) >= 2 && hasHexPrefixUnsafe(input)
}

// hasHexPrefixUnsafe compares both leading bytes at once, loading them as a single
// word and forcing the case bit of the second one. The input MUST be at least 2
// bytes long, otherwise the load panics.
func hasHexPrefixUnsafe(input string) bool {
	return binary.NativeEndian.Uint16(uf.S2B(input))|hexPrefixMask == zeroX
}
