package parsing

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/oesand/framer/internal"
	"github.com/oesand/framer/internal/scan"
	"github.com/oesand/framer/specs"
)

// ParseContentLength reads the declared body size.
//
// Repeated Content-Length headers are merged into a list by the header
// parser; such a list is accepted only when every element is the same.
func ParseContentLength(header *specs.Header) (size int64, has bool, err error) {
	raw, has := header.TryGet(specs.HeaderContentLength)
	if !has {
		return 0, false, nil
	}

	size = -1
	for _, part := range strings.Split(raw, ",") {
		value, ok := parseDecimal(strings.TrimSpace(part))
		if !ok || (size >= 0 && value != size) {
			return 0, true, fmt.Errorf("%w: %q", specs.ErrInvalidContentLength, raw)
		}
		size = value
	}
	return size, true, nil
}

func parseDecimal(text string) (int64, bool) {
	digits, end := scan.CaptureWhile(internal.StringToBuffer(text), 0, scan.IsDigit)
	if len(digits) == 0 || end != len(text) {
		return 0, false
	}
	value, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}
