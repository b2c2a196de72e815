package specs

import (
	"fmt"
	"strconv"

	"golang.org/x/net/http/httpguts"
)

var rawHttpPrefix = []byte("HTTP/")

// StartLine is the first line of a message: either *RequestLine or *StatusLine.
type StartLine interface {
	// Proto returns the major and minor HTTP version.
	Proto() (major, minor uint16)
	// WireLen returns the serialized size including lineBreak.
	WireLen(lineBreak []byte) int
	// AppendWire appends the line terminated by lineBreak.
	AppendWire(dst []byte, lineBreak []byte) []byte

	startLine()
}

// RequestLine is "<method> <target> HTTP/<major>.<minor>".
type RequestLine struct {
	ProtoMajor, ProtoMinor uint16

	Method HttpMethod
	Target string
}

func (line *RequestLine) startLine() {}

func (line *RequestLine) Proto() (uint16, uint16) {
	return line.ProtoMajor, line.ProtoMinor
}

func (line *RequestLine) WireLen(lineBreak []byte) int {
	return len(line.Method) + 1 + len(line.Target) + 1 +
		versionLen(line.ProtoMajor, line.ProtoMinor) + len(lineBreak)
}

func (line *RequestLine) AppendWire(dst []byte, lineBreak []byte) []byte {
	dst = append(dst, line.Method...)
	dst = append(dst, ' ')
	dst = append(dst, line.Target...)
	dst = append(dst, ' ')
	dst = appendVersion(dst, line.ProtoMajor, line.ProtoMinor)
	return append(dst, lineBreak...)
}

// Validate checks that the method is a token and the target is
// non-empty and free of whitespace and control bytes.
func (line *RequestLine) Validate() error {
	if !line.Method.IsToken() {
		return fmt.Errorf("%w: method %q", ErrInvalidFormat, line.Method)
	}
	if line.Target == "" {
		return fmt.Errorf("%w: empty request target", ErrInvalidFormat)
	}
	for i := 0; i < len(line.Target); i++ {
		if c := line.Target[i]; c <= ' ' || c == 0x7f {
			return fmt.Errorf("%w: request target %q", ErrInvalidFormat, line.Target)
		}
	}
	return nil
}

func (line *RequestLine) String() string {
	return string(line.AppendWire(nil, nil))
}

// StatusLine is "HTTP/<major>.<minor> <code> <reason>".
// Reason may be empty and may contain spaces.
type StatusLine struct {
	ProtoMajor, ProtoMinor uint16

	Code   StatusCode
	Reason string
}

func (line *StatusLine) startLine() {}

func (line *StatusLine) Proto() (uint16, uint16) {
	return line.ProtoMajor, line.ProtoMinor
}

func (line *StatusLine) WireLen(lineBreak []byte) int {
	return versionLen(line.ProtoMajor, line.ProtoMinor) + 1 +
		decimalLen(uint64(line.Code)) + 1 + len(line.Reason) + len(lineBreak)
}

func (line *StatusLine) AppendWire(dst []byte, lineBreak []byte) []byte {
	dst = appendVersion(dst, line.ProtoMajor, line.ProtoMinor)
	dst = append(dst, ' ')
	dst = strconv.AppendUint(dst, uint64(line.Code), 10)
	dst = append(dst, ' ')
	dst = append(dst, line.Reason...)
	return append(dst, lineBreak...)
}

// Validate checks that the reason phrase holds only visible text.
func (line *StatusLine) Validate() error {
	if !httpguts.ValidHeaderFieldValue(line.Reason) {
		return fmt.Errorf("%w: reason phrase %q", ErrInvalidFormat, line.Reason)
	}
	return nil
}

func (line *StatusLine) String() string {
	return string(line.AppendWire(nil, nil))
}

func appendVersion(dst []byte, major, minor uint16) []byte {
	dst = append(dst, rawHttpPrefix...)
	dst = strconv.AppendUint(dst, uint64(major), 10)
	dst = append(dst, '.')
	return strconv.AppendUint(dst, uint64(minor), 10)
}

func versionLen(major, minor uint16) int {
	return len(rawHttpPrefix) + decimalLen(uint64(major)) + 1 + decimalLen(uint64(minor))
}

func decimalLen(v uint64) int {
	n := 1
	for v >= 10 {
		v /= 10
		n++
	}
	return n
}
