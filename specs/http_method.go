package specs

import "golang.org/x/net/http/httpguts"

type HttpMethod string

// HttpMethod constants represent the standard HTTP methods as defined in RFC 7231 and RFC 5789.
// A request line may carry any other token; these are provided for convenience.
const (
	HttpMethodGet     HttpMethod = "GET"
	HttpMethodHead    HttpMethod = "HEAD"
	HttpMethodPost    HttpMethod = "POST"
	HttpMethodPut     HttpMethod = "PUT"
	HttpMethodDelete  HttpMethod = "DELETE"
	HttpMethodTrace   HttpMethod = "TRACE"
	HttpMethodOptions HttpMethod = "OPTIONS"
	HttpMethodConnect HttpMethod = "CONNECT"
	HttpMethodPatch   HttpMethod = "PATCH"
)

// IsStandard checks if the HttpMethod is one of the standard HTTP methods.
func (method HttpMethod) IsStandard() bool {
	switch method {
	case HttpMethodGet, HttpMethodHead, HttpMethodPost, HttpMethodPut, HttpMethodDelete,
		HttpMethodTrace, HttpMethodOptions, HttpMethodConnect, HttpMethodPatch:
		return true
	}
	return false
}

// IsToken reports whether the method is a non-empty RFC 7230 token.
func (method HttpMethod) IsToken() bool {
	if method == "" {
		return false
	}
	for _, r := range method {
		if !httpguts.IsTokenRune(r) {
			return false
		}
	}
	return true
}
