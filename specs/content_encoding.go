package specs

// Content codings understood by Message.DecodeBody and Message.EncodeBody.
//
// Reference: https://www.iana.org/assignments/http-parameters/http-parameters.xhtml
const (
	ContentEncodingIdentity = "identity"
	ContentEncodingGzip     = "gzip"
	ContentEncodingDeflate  = "deflate"
	ContentEncodingBrotli   = "br"
)
