package scan

// Predicate classifies a single byte.
type Predicate func(c byte) bool

// Not inverts a predicate.
func Not(pred Predicate) Predicate {
	return func(c byte) bool { return !pred(c) }
}

// IsLineBreakByte reports whether c is CR or LF.
func IsLineBreakByte(c byte) bool { return c == '\r' || c == '\n' }

// IsHorizontalSpace reports whether c is SP or HTAB.
func IsHorizontalSpace(c byte) bool { return c == ' ' || c == '\t' }

// IsWhitespace reports whether c is any ASCII whitespace, line breaks included.
func IsWhitespace(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\n', '\v', '\f':
		return true
	}
	return false
}

func IsDigit(c byte) bool { return '0' <= c && c <= '9' }
