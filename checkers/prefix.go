package checkers

import "github.com/indigo-web/utils/strcomp"

// BeginsWith compares the prefix byte by byte. Empty prefix always matches.
func BeginsWith(view, prefix string) bool {
	return len(view) >= len(prefix) && view[:len(prefix)] == prefix
}

// BeginsWithFold is BeginsWith ignoring the case of ASCII letters. Meant for schemes,
// which are case-insensitive. Any other byte must match exactly.
func BeginsWithFold(view, prefix string) bool {
	if len(view) < len(prefix) || !strcomp.EqualFold(view[:len(prefix)], prefix) {
		return false
	}

	// EqualFold sets the case bit on every byte, so e.g. 0x1a and ':' are equal to it
	for i := 0; i < len(prefix); i++ {
		if view[i] != prefix[i] && !IsAlpha(prefix[i]) {
			return false
		}
	}

	return true
}
