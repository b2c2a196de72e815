package specs

import "strings"

const (
	ContentTypeRaw   = "application/octet-stream"
	ContentTypePlain = "text/plain"
	ContentTypeHTML  = "text/html"
	ContentTypeCSS   = "text/css"

	ContentTypeJson      = "application/json"
	ContentTypeXml       = "application/xml"
	ContentTypeForm      = "application/x-www-form-urlencoded"
	ContentTypeMultipart = "multipart/form-data"
)

// MediaType returns the lower-cased media type of the Content-Type header
// with its parameters removed, or an empty string if the header is absent.
func MediaType(header *Header) string {
	value := header.Get(HeaderContentType)
	if i := strings.IndexByte(value, ';'); i >= 0 {
		value = value[:i]
	}
	return strings.ToLower(strings.TrimSpace(value))
}

// IsContentType reports whether the Content-Type header names contentType,
// ignoring case and parameters.
func IsContentType(header *Header, contentType string) bool {
	return MediaType(header) == contentType
}
