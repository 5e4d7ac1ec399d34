package endian

import "golang.org/x/sys/cpu"

// IsBig reports whether the platform stores the most significant byte of a
// word first. The value is fixed at build time by the target architecture.
func IsBig() bool {
	return cpu.IsBigEndian
}

// SecondByteMask returns the mask that sets the ASCII case bit (0x20) of the
// byte at index 1 after two bytes were loaded as a native-endian uint16. On
// little-endian platforms that byte lands in the high half of the word.
func SecondByteMask() uint16 {
	if IsBig() {
		return 0x0020
	}

	return 0x2000
}
