package framer

import (
	"fmt"
	"github.com/oesand/framer/internal"
	"github.com/oesand/framer/internal/parsing"
	"github.com/oesand/framer/specs"
	"golang.org/x/net/http/httpguts"
	"strconv"
)

// Message is a single HTTP/1.x request or response: a start line,
// its header block and a Content-Length delimited body.
//
// Serialization does not compute Content-Length from Body; use SetBody
// or set the header directly to keep them consistent.
type Message struct {
	StartLine specs.StartLine
	Header    *specs.Header
	Body      specs.Buffer
}

// NewRequest creates an HTTP/1.1 request message with an empty header.
func NewRequest(method specs.HttpMethod, target string) *Message {
	return &Message{
		StartLine: &specs.RequestLine{
			ProtoMajor: 1,
			ProtoMinor: 1,
			Method:     method,
			Target:     target,
		},
		Header: specs.NewHeader(),
	}
}

// NewResponse creates an HTTP/1.1 response message with the canonical reason phrase.
func NewResponse(code specs.StatusCode) *Message {
	return &Message{
		StartLine: &specs.StatusLine{
			ProtoMajor: 1,
			ProtoMinor: 1,
			Code:       code,
			Reason:     code.Detail(),
		},
		Header: specs.NewHeader(),
	}
}

// IsRequest reports whether the message starts with a request line.
func (m *Message) IsRequest() bool {
	_, ok := m.StartLine.(*specs.RequestLine)
	return ok
}

// RequestLine returns the request line if the message is a request.
func (m *Message) RequestLine() (*specs.RequestLine, bool) {
	line, ok := m.StartLine.(*specs.RequestLine)
	return line, ok
}

// StatusLine returns the status line if the message is a response.
func (m *Message) StatusLine() (*specs.StatusLine, bool) {
	line, ok := m.StartLine.(*specs.StatusLine)
	return line, ok
}

func (m *Message) header() *specs.Header {
	if m.Header == nil {
		m.Header = specs.NewHeader()
	}
	return m.Header
}

// ContentLength returns the declared body size, if any.
func (m *Message) ContentLength() (size int64, has bool, err error) {
	return parsing.ParseContentLength(m.header())
}

// BodyComplete reports whether the body holds every byte the Content-Length
// header declares. A parsed message with a short body was cut off by the end
// of its buffer and the caller has to read the rest from the transport.
func (m *Message) BodyComplete() bool {
	size, has, err := m.ContentLength()
	if err != nil || !has {
		return true
	}
	return int64(m.Body.Len()) >= size
}

// SetBody copies data into the body and sets Content-Length to match.
func (m *Message) SetBody(data []byte) {
	m.Body = specs.CopyBuffer(data)
	m.header().Set(specs.HeaderContentLength, strconv.Itoa(m.Body.Len()))
}

// ContentType returns the media type of the body without parameters.
func (m *Message) ContentType() string {
	return specs.MediaType(m.header())
}

// Host returns the Host header in its ASCII form.
func (m *Message) Host() string {
	return internal.IdnaHost(m.header().Get(specs.HeaderHost))
}

// Validate checks the start line and every header field against the HTTP grammar.
func (m *Message) Validate() error {
	switch line := m.StartLine.(type) {
	case *specs.RequestLine:
		if err := line.Validate(); err != nil {
			return err
		}
		if host, has := m.header().TryGet(specs.HeaderHost); has && !httpguts.ValidHostHeader(host) {
			return fmt.Errorf("%w: host %q", specs.ErrInvalidFormat, host)
		}
	case *specs.StatusLine:
		if err := line.Validate(); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: missing start line", specs.ErrInvalidFormat)
	}
	return m.header().Validate()
}

// Clone returns a deep copy of the message.
func (m *Message) Clone() *Message {
	clone := &Message{
		Header: m.header().Clone(),
		Body:   m.Body.Clone(),
	}
	switch line := m.StartLine.(type) {
	case *specs.RequestLine:
		copied := *line
		clone.StartLine = &copied
	case *specs.StatusLine:
		copied := *line
		clone.StartLine = &copied
	}
	return clone
}
