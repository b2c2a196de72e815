package parsing

import (
	"bytes"

	"github.com/oesand/framer/internal/scan"
	"github.com/oesand/framer/specs"
)

// ParseHeaders parses a header block at offset up to and including the
// blank line that terminates it, and returns the offset just past that line.
func ParseHeaders(b []byte, offset int) (*specs.Header, int, error) {
	header := specs.NewHeader()
	next, err := ParseHeadersInto(header, b, offset)
	if err != nil {
		return nil, offset, err
	}
	return header, next, nil
}

// ParseHeadersInto parses a header block into header.
//
// Repeated names are merged with Header.Add. A line starting with
// whitespace continues the value of the previous header line.
func ParseHeadersInto(header *specs.Header, b []byte, offset int) (int, error) {
	if offset < 0 || offset > len(b) {
		return offset, specs.NewParseError(specs.ErrOutOfRange, offset, "header offset")
	}

	var last string
	var hasLast bool

	pos := offset
	for {
		lineStart := pos
		pos = scan.SkipWhile(b, lineStart, scan.IsHorizontalSpace)
		eol := scan.SeekToLineBreak(b, pos)

		if pos == eol {
			if eol == len(b) {
				return offset, specs.NewParseError(specs.ErrUnterminatedHeaderBlock, lineStart, "")
			}
			return scan.SkipLineBreak(b, eol), nil
		}

		if pos > lineStart {
			if !hasLast {
				return offset, specs.NewParseError(specs.ErrMalformedHeaderLine, lineStart,
					"continuation line without preceding header")
			}
			folded := string(trimHorizontalSpace(b[pos:eol]))
			if value := header.Get(last); value != "" {
				folded = value + " " + folded
			}
			header.Set(last, folded)
			pos = scan.SkipLineBreak(b, eol)
			continue
		}

		line := b[:eol]
		colon := scan.SeekToByte(line, pos, ':')
		if colon == eol {
			return offset, specs.NewParseError(specs.ErrMalformedHeaderLine, pos, "missing colon")
		}
		name, _ := scan.CaptureWhile(line[:colon], pos, scan.Not(scan.IsHorizontalSpace))
		if len(name) == 0 {
			return offset, specs.NewParseError(specs.ErrMalformedHeaderLine, pos, "empty header name")
		}

		last, hasLast = string(name), true
		header.Add(last, string(trimHorizontalSpace(line[colon+1:])))
		pos = scan.SkipLineBreak(b, eol)
	}
}

func trimHorizontalSpace(value []byte) []byte {
	return bytes.Trim(value, " \t")
}
