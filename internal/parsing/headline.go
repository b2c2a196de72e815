package parsing

import (
	"strconv"

	"github.com/oesand/framer/internal"
	"github.com/oesand/framer/internal/scan"
	"github.com/oesand/framer/specs"
)

var notWhitespace = scan.Not(scan.IsWhitespace)

// ParseStartLine parses a request line or a status line at offset and
// returns it with the offset of the following line.
func ParseStartLine(b []byte, offset int, isRequest bool) (specs.StartLine, int, error) {
	if isRequest {
		line, next, err := ParseRequestLine(b, offset)
		if err != nil {
			return nil, offset, err
		}
		return line, next, nil
	}
	line, next, err := ParseStatusLine(b, offset)
	if err != nil {
		return nil, offset, err
	}
	return line, next, nil
}

// parse headline: GET /index.html HTTP/1.0
func ParseRequestLine(b []byte, offset int) (*specs.RequestLine, int, error) {
	if offset < 0 || offset > len(b) {
		return nil, offset, specs.NewParseError(specs.ErrOutOfRange, offset, "start offset")
	}
	eol := scan.SeekToLineBreak(b, offset)
	line := b[offset:eol]

	method, pos := scan.CaptureWhile(line, 0, notWhitespace)
	if len(method) == 0 {
		return nil, offset, startLineError(offset, pos, "missing method")
	}
	if pos >= len(line) || line[pos] != ' ' {
		return nil, offset, startLineError(offset, pos, "expected space after method")
	}

	target, pos := scan.CaptureWhile(line, pos+1, notWhitespace)
	if len(target) == 0 {
		return nil, offset, startLineError(offset, pos, "missing request target")
	}
	if pos >= len(line) || line[pos] != ' ' {
		return nil, offset, startLineError(offset, pos, "expected space after request target")
	}

	version, end := scan.CaptureWhile(line, pos+1, notWhitespace)
	major, minor, ok := parseHTTPVersion(version)
	if !ok {
		return nil, offset, startLineError(offset, pos+1, "malformed http version")
	}
	if end != len(line) {
		return nil, offset, startLineError(offset, end, "unexpected content after http version")
	}

	return &specs.RequestLine{
		ProtoMajor: major,
		ProtoMinor: minor,
		Method:     specs.HttpMethod(method),
		Target:     string(target),
	}, scan.SkipLineBreak(b, eol), nil
}

// parse headline: HTTP/1.0 200 OK
func ParseStatusLine(b []byte, offset int) (*specs.StatusLine, int, error) {
	if offset < 0 || offset > len(b) {
		return nil, offset, specs.NewParseError(specs.ErrOutOfRange, offset, "start offset")
	}
	eol := scan.SeekToLineBreak(b, offset)
	line := b[offset:eol]

	version, pos := scan.CaptureWhile(line, 0, notWhitespace)
	major, minor, ok := parseHTTPVersion(version)
	if !ok {
		return nil, offset, startLineError(offset, 0, "malformed http version")
	}
	if pos >= len(line) || line[pos] != ' ' {
		return nil, offset, startLineError(offset, pos, "expected space after http version")
	}

	digits, pos := scan.CaptureWhile(line, pos+1, scan.IsDigit)
	if len(digits) == 0 {
		return nil, offset, startLineError(offset, pos, "missing status code")
	}
	code, err := strconv.ParseUint(internal.BufferToString(digits), 10, 32)
	if err != nil {
		return nil, offset, startLineError(offset, pos, "status code out of range")
	}
	if pos >= len(line) || line[pos] != ' ' {
		return nil, offset, startLineError(offset, pos, "expected space after status code")
	}

	return &specs.StatusLine{
		ProtoMajor: major,
		ProtoMinor: minor,
		Code:       specs.StatusCode(code),
		Reason:     string(line[pos+1:]),
	}, scan.SkipLineBreak(b, eol), nil
}

func startLineError(offset, pos int, reason string) error {
	return specs.NewParseError(specs.ErrMalformedStartLine, offset+pos, reason)
}
