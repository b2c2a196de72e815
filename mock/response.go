package mock

import (
	"github.com/oesand/framer"
	"github.com/oesand/framer/specs"
	"strconv"
)

// DefaultResponse creates a new ResponseBuilder for "HTTP/1.1 200 OK".
func DefaultResponse() *ResponseBuilder {
	return Response(specs.StatusCodeOK)
}

// Response creates a ResponseBuilder with the given status code and its canonical reason.
func Response(code specs.StatusCode) *ResponseBuilder {
	return &ResponseBuilder{
		protoMajor: 1,
		protoMinor: 1,
		code:       code,
		reason:     code.Detail(),
		header:     specs.NewHeader(),
	}
}

// ResponseBuilder is used to build response messages with customizable fields.
type ResponseBuilder struct {
	protoMajor, protoMinor uint16

	code   specs.StatusCode
	reason string
	header *specs.Header
	body   []byte
}

func (b *ResponseBuilder) Proto(protoMajor, protoMinor uint16) *ResponseBuilder {
	b.protoMajor = protoMajor
	b.protoMinor = protoMinor
	return b
}

func (b *ResponseBuilder) Reason(reason string) *ResponseBuilder {
	b.reason = reason
	return b
}

func (b *ResponseBuilder) Header() *specs.Header {
	if b.header == nil {
		b.header = specs.NewHeader()
	}
	return b.header
}

func (b *ResponseBuilder) ConfHeader(conf func(*specs.Header)) *ResponseBuilder {
	conf(b.Header())
	return b
}

// Body sets the body and its Content-Length.
func (b *ResponseBuilder) Body(body []byte) *ResponseBuilder {
	b.body = body
	b.Header().Set(specs.HeaderContentLength, strconv.Itoa(len(body)))
	return b
}

// Build returns a response message based on the current state of the builder.
func (b *ResponseBuilder) Build() *framer.Message {
	return &framer.Message{
		StartLine: &specs.StatusLine{
			ProtoMajor: b.protoMajor,
			ProtoMinor: b.protoMinor,
			Code:       b.code,
			Reason:     b.reason,
		},
		Header: b.Header().Clone(),
		Body:   specs.CopyBuffer(b.body),
	}
}

// Wire returns the response serialized with the given line break.
func (b *ResponseBuilder) Wire(lineBreak specs.LineBreak) []byte {
	return framer.Serializer{LineBreak: lineBreak}.Serialize(b.Build())
}
