package checkers

// IsWindowsDriveLetter recognizes a drive letter as it comes in a raw file URL,
// e.g. C: or C|. The letter must either end the input or be followed by one of
// the delimiters /, \, ? or #, so c:foo isn't a drive letter.
func IsWindowsDriveLetter(input string) bool {
	if len(input) < 2 || !IsAlpha(input[0]) || (input[1] != ':' && input[1] != '|') {
		return false
	}

	if len(input) == 2 {
		return true
	}

	switch input[2] {
	case '/', '\\', '?', '#':
		return true
	default:
		return false
	}
}

// IsNormalizedWindowsDriveLetter accepts only the colon form and doesn't look past
// it. This is NOT a relaxed IsWindowsDriveLetter: C| is rejected here.
func IsNormalizedWindowsDriveLetter(input string) bool {
	return len(input) >= 2 && IsAlpha(input[0]) && input[1] == ':'
}
