package parsing

import (
	"bytes"
	"strconv"

	"github.com/oesand/framer/internal"
	"github.com/oesand/framer/internal/scan"
)

var httpVersionPrefix = []byte("HTTP/")

// parseHTTPVersion parses a whole "HTTP/<digits>.<digits>" token.
func parseHTTPVersion(value []byte) (major, minor uint16, ok bool) {
	if !bytes.HasPrefix(value, httpVersionPrefix) {
		return 0, 0, false
	}
	majorDigits, pos := scan.CaptureWhile(value, len(httpVersionPrefix), scan.IsDigit)
	if len(majorDigits) == 0 || pos >= len(value) || value[pos] != '.' {
		return 0, 0, false
	}
	minorDigits, pos := scan.CaptureWhile(value, pos+1, scan.IsDigit)
	if len(minorDigits) == 0 || pos != len(value) {
		return 0, 0, false
	}

	maj, err := strconv.ParseUint(internal.BufferToString(majorDigits), 10, 16)
	if err != nil {
		return 0, 0, false
	}
	min, err := strconv.ParseUint(internal.BufferToString(minorDigits), 10, 16)
	if err != nil {
		return 0, 0, false
	}
	return uint16(maj), uint16(min), true
}
