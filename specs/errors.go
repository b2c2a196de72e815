package specs

import "fmt"

var (
	ErrInvalidFormat = NewOpError("validation", "invalid format")
	ErrTooLarge      = NewOpError("parsing", "too large content")
	ErrOutOfRange    = NewOpError("buffer", "index out of range")

	ErrMalformedStartLine      = NewOpError("parsing", "malformed start line")
	ErrMalformedHeaderLine     = NewOpError("parsing", "malformed header line")
	ErrUnterminatedHeaderBlock = NewOpError("parsing", "unterminated header block")
	ErrInvalidContentLength    = NewOpError("parsing", "invalid content-length")
	ErrTruncatedBody           = NewOpError("parsing", "truncated body")

	ErrUnknownContentEncoding = NewOpError("encoding", "unknown content encoding")
)

// ParseError describes a framing failure at a specific buffer offset.
// It unwraps to one of the parsing sentinels above, so callers
// can classify it with errors.Is.
type ParseError struct {
	Kind   error
	Offset int
	Reason string
}

// NewParseError creates a ParseError of the given kind.
func NewParseError(kind error, offset int, reason string) error {
	return &ParseError{
		Kind:   kind,
		Offset: offset,
		Reason: reason,
	}
}

func (e *ParseError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%s at offset %d", e.Kind, e.Offset)
	}
	return fmt.Sprintf("%s at offset %d: %s", e.Kind, e.Offset, e.Reason)
}

func (e *ParseError) Unwrap() error {
	return e.Kind
}
