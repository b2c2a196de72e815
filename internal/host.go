package internal

import (
	"strings"
	"unicode"

	"golang.org/x/net/idna"
)

// IdnaHost converts an internationalized host[:port] to its ASCII form.
// Values that cannot be converted are returned unchanged.
func IdnaHost(host string) string {
	if isAscii(host) {
		return host
	}
	name, port := host, ""
	if i := strings.LastIndexByte(host, ':'); i >= 0 && !strings.Contains(host[i:], "]") {
		name, port = host[:i], host[i:]
	}
	if v, err := idna.Lookup.ToASCII(name); err == nil {
		return v + port
	}
	return host
}

func isAscii(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > unicode.MaxASCII {
			return false
		}
	}
	return true
}
