package mock

import (
	"github.com/oesand/framer"
	"github.com/oesand/framer/internal"
	"github.com/oesand/framer/specs"
	"strconv"
)

// DefaultRequest creates a new RequestBuilder for "GET / HTTP/1.1".
func DefaultRequest() *RequestBuilder {
	return &RequestBuilder{
		protoMajor: 1,
		protoMinor: 1,
		method:     specs.HttpMethodGet,
		target:     "/",
		header:     specs.NewHeader(),
	}
}

// RequestBuilder is used to build request messages with customizable fields.
type RequestBuilder struct {
	protoMajor, protoMinor uint16

	method specs.HttpMethod
	target string
	header *specs.Header
	body   []byte
}

// Proto sets the protocol version for the request.
func (b *RequestBuilder) Proto(protoMajor, protoMinor uint16) *RequestBuilder {
	b.protoMajor = protoMajor
	b.protoMinor = protoMinor
	return b
}

// Method sets the HTTP method for the request.
func (b *RequestBuilder) Method(method specs.HttpMethod) *RequestBuilder {
	b.method = method
	return b
}

// Target sets the request target.
func (b *RequestBuilder) Target(target string) *RequestBuilder {
	b.target = target
	return b
}

// Host sets the Host header, converting internationalized names to ASCII.
func (b *RequestBuilder) Host(host string) *RequestBuilder {
	b.Header().Set(specs.HeaderHost, internal.IdnaHost(host))
	return b
}

// Header returns the header for the request.
// If the header is nil, it initializes a new Header.
func (b *RequestBuilder) Header() *specs.Header {
	if b.header == nil {
		b.header = specs.NewHeader()
	}
	return b.header
}

// ConfHeader applies a configuration function to the request header.
func (b *RequestBuilder) ConfHeader(conf func(*specs.Header)) *RequestBuilder {
	conf(b.Header())
	return b
}

// Body sets the body and its Content-Length.
func (b *RequestBuilder) Body(body []byte) *RequestBuilder {
	b.body = body
	b.Header().Set(specs.HeaderContentLength, strconv.Itoa(len(body)))
	return b
}

// Build returns a request message based on the current state of the builder.
// Every call returns an independent copy.
func (b *RequestBuilder) Build() *framer.Message {
	return &framer.Message{
		StartLine: &specs.RequestLine{
			ProtoMajor: b.protoMajor,
			ProtoMinor: b.protoMinor,
			Method:     b.method,
			Target:     b.target,
		},
		Header: b.Header().Clone(),
		Body:   specs.CopyBuffer(b.body),
	}
}

// Wire returns the request serialized with the given line break.
func (b *RequestBuilder) Wire(lineBreak specs.LineBreak) []byte {
	return framer.Serializer{LineBreak: lineBreak}.Serialize(b.Build())
}
