package framer

import (
	"errors"
	"fmt"
	"github.com/oesand/framer/internal/parsing"
	"github.com/oesand/framer/internal/scan"
	"github.com/oesand/framer/specs"
	"log"
)

// Parser frames HTTP/1.x messages from fully buffered bytes.
// The zero value is ready to use; a Parser holds no state between calls
// and may be shared by goroutines.
type Parser struct {
	// StrictBody makes a body shorter than its Content-Length an
	// ErrTruncatedBody failure. By default the body is cut to the
	// available bytes and the caller checks Message.BodyComplete.
	StrictBody bool

	// MaxHeaderBytes limits the size of the start line and header block.
	// If zero, DefaultMaxHeaderBytes is used. A negative value disables the limit.
	MaxHeaderBytes int

	// ValidateFields checks the parsed start line and header fields
	// against the HTTP grammar and reports ErrInvalidFormat.
	ValidateFields bool

	// CanonicalNames rewrites header names to title case, e.g. "content-type"
	// is stored as "Content-Type".
	CanonicalNames bool

	Logger *log.Logger

	// Debug flag to log framing decisions
	Debug bool
}

func (parser *Parser) logger() *log.Logger {
	if parser.Logger != nil {
		return parser.Logger
	}
	return log.Default()
}

func (parser *Parser) debugf(format string, args ...any) {
	if parser.Debug {
		parser.logger().Printf("framer: "+format, args...)
	}
}

func (parser *Parser) maxHeaderBytes() int {
	if parser.MaxHeaderBytes == 0 {
		return DefaultMaxHeaderBytes
	}
	return parser.MaxHeaderBytes
}

// headView limits b to the bytes the start line and header block may occupy.
// A CR LF pair cut by the limit is kept whole so the view never ends on a
// bare CR that the full buffer follows with LF.
func (parser *Parser) headView(b []byte, offset int) ([]byte, bool) {
	limit := parser.maxHeaderBytes()
	if limit < 0 || len(b)-offset <= limit {
		return b, false
	}
	end := offset + limit
	if scan.IsCrLf(b, end-1) {
		end++
	}
	return b[:end], true
}

func checkOffset(buf specs.Buffer, offset int) error {
	if offset < 0 || offset > buf.Len() {
		return specs.NewParseError(specs.ErrOutOfRange, offset, "start offset")
	}
	return nil
}

// ParseStartLine parses a request line or a status line at offset and
// returns the offset of the line that follows it.
func (parser *Parser) ParseStartLine(buf specs.Buffer, offset int, isRequest bool) (specs.StartLine, int, error) {
	if err := checkOffset(buf, offset); err != nil {
		return nil, offset, err
	}
	view, limited := parser.headView(buf.Bytes(), offset)
	line, next, err := parser.parseStartLine(view, limited, offset, isRequest)
	if err != nil {
		return nil, offset, err
	}
	if parser.ValidateFields {
		if err = validateStartLine(line); err != nil {
			return nil, offset, err
		}
	}
	return line, next, nil
}

// ParseHeaders parses a header block at offset, including the blank line
// that ends it, and returns the offset just past that line.
func (parser *Parser) ParseHeaders(buf specs.Buffer, offset int) (*specs.Header, int, error) {
	if err := checkOffset(buf, offset); err != nil {
		return nil, offset, err
	}
	view, limited := parser.headView(buf.Bytes(), offset)
	header, next, err := parser.parseHeaders(view, limited, offset)
	if err != nil {
		return nil, offset, err
	}
	if parser.ValidateFields {
		if err = header.Validate(); err != nil {
			return nil, offset, err
		}
	}
	return header, next, nil
}

func (parser *Parser) parseStartLine(view []byte, limited bool, offset int, isRequest bool) (specs.StartLine, int, error) {
	if limited && scan.SeekToLineBreak(view, offset) == len(view) {
		return nil, offset, specs.NewParseError(specs.ErrTooLarge, offset,
			fmt.Sprintf("start line exceeds %d bytes", parser.maxHeaderBytes()))
	}
	return parsing.ParseStartLine(view, offset, isRequest)
}

func (parser *Parser) parseHeaders(view []byte, limited bool, offset int) (*specs.Header, int, error) {
	header, next, err := parsing.ParseHeaders(view, offset)
	if err != nil {
		if limited && errors.Is(err, specs.ErrUnterminatedHeaderBlock) {
			return nil, offset, specs.NewParseError(specs.ErrTooLarge, offset,
				fmt.Sprintf("header block exceeds %d bytes", parser.maxHeaderBytes()))
		}
		return nil, offset, err
	}
	if parser.CanonicalNames {
		header.Canonicalize()
	}
	return header, next, nil
}

// Parse frames one message starting at offset. It returns the message and
// the offset at which its body begins; the body holds at most Content-Length
// bytes copied out of buf. On failure the returned offset is the one passed in.
func (parser *Parser) Parse(buf specs.Buffer, offset int, isRequest bool) (*Message, int, error) {
	if err := checkOffset(buf, offset); err != nil {
		return nil, offset, err
	}

	// The start line and the header block share one size limit.
	view, limited := parser.headView(buf.Bytes(), offset)
	line, pos, err := parser.parseStartLine(view, limited, offset, isRequest)
	if err != nil {
		return nil, offset, err
	}
	header, bodyStart, err := parser.parseHeaders(view, limited, pos)
	if err != nil {
		return nil, offset, err
	}
	parser.debugf("parsed %q with %d header fields, body at offset %d", line, header.Len(), bodyStart)

	msg := &Message{
		StartLine: line,
		Header:    header,
	}
	if parser.ValidateFields {
		if err = msg.Validate(); err != nil {
			return nil, offset, err
		}
	}

	size, has, err := parsing.ParseContentLength(header)
	if err != nil {
		return nil, offset, err
	}
	if !has || size == 0 {
		return msg, bodyStart, nil
	}

	available := int64(buf.Len() - bodyStart)
	if available < size {
		if parser.StrictBody {
			return nil, offset, specs.NewParseError(specs.ErrTruncatedBody, bodyStart,
				fmt.Sprintf("declared %d bytes, %d available", size, available))
		}
		parser.debugf("body truncated to %d of %d declared bytes", available, size)
		size = available
	}

	body, err := buf.Slice(bodyStart, bodyStart+int(size))
	if err != nil {
		return nil, offset, err
	}
	msg.Body = specs.CopyBuffer(body)
	return msg, bodyStart, nil
}

// ParseRequest frames a request message at offset.
func (parser *Parser) ParseRequest(buf specs.Buffer, offset int) (*Message, int, error) {
	return parser.Parse(buf, offset, true)
}

// ParseResponse frames a response message at offset.
func (parser *Parser) ParseResponse(buf specs.Buffer, offset int) (*Message, int, error) {
	return parser.Parse(buf, offset, false)
}

func validateStartLine(line specs.StartLine) error {
	switch line := line.(type) {
	case *specs.RequestLine:
		return line.Validate()
	case *specs.StatusLine:
		return line.Validate()
	}
	return nil
}

// ParseStartLine parses a start line with DefaultParser.
func ParseStartLine(buf specs.Buffer, offset int, isRequest bool) (specs.StartLine, int, error) {
	return DefaultParser.ParseStartLine(buf, offset, isRequest)
}

// ParseHeaders parses a header block with DefaultParser.
func ParseHeaders(buf specs.Buffer, offset int) (*specs.Header, int, error) {
	return DefaultParser.ParseHeaders(buf, offset)
}

// ParseMessage frames a message with DefaultParser and returns it with
// the offset of its body.
func ParseMessage(buf specs.Buffer, offset int, isRequest bool) (*Message, int, error) {
	return DefaultParser.Parse(buf, offset, isRequest)
}
