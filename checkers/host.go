package checkers

import (
	"strings"

	"github.com/indigo-web/urlcheck/internal/hexconv"
)

const (
	maxDomainLength = 253
	maxLabelLength  = 63
)

// IsIPv4 tells whether the host must be treated as an IPv4 address. The host is
// expected to be lowercased already. Only the last label is inspected (a single
// trailing dot is ignored): it must consist of digits or be a 0x-prefixed lowercase
// hex number. The number itself isn't validated.
func IsIPv4(host string) bool {
	if len(host) > 0 && host[len(host)-1] == '.' {
		host = host[:len(host)-1]
	}

	number := host[strings.LastIndexByte(host, '.')+1:]
	if len(number) == 0 {
		return false
	}

	if allOf(number, IsDigit) {
		return true
	}

	return HasHexPrefix(number) && allOf(number[2:], hexconv.IsLower)
}

// VerifyDNSLength checks the domain against the DNS length limits: at most 253
// octets (254 with the trailing dot) in total and 1 to 63 octets per label.
func VerifyDNSLength(host string) bool {
	if len(host) == 0 {
		return false
	}

	if host[len(host)-1] == '.' {
		if len(host) > maxDomainLength+1 {
			return false
		}
	} else if len(host) > maxDomainLength {
		return false
	}

	for start := 0; start < len(host); {
		labelLen := strings.IndexByte(host[start:], '.')
		if labelLen == -1 {
			labelLen = len(host) - start
		}

		if labelLen == 0 || labelLen > maxLabelLength {
			return false
		}

		start += labelLen + 1
	}

	return true
}

func allOf(str string, pred func(byte) bool) bool {
	for i := 0; i < len(str); i++ {
		if !pred(str[i]) {
			return false
		}
	}

	return true
}
