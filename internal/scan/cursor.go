// Package scan holds cursor primitives over a byte range.
//
// Every function takes the range as a slice and a position within it; the
// end of the range is len(b). Positions at or past the end are never read.
// None of them fail: a scan that finds nothing returns len(b).
package scan

// IsLineBreak reports whether the byte at pos is CR or LF.
func IsLineBreak(b []byte, pos int) bool {
	return 0 <= pos && pos < len(b) && IsLineBreakByte(b[pos])
}

// IsCrLf reports whether pos starts a CR LF pair.
func IsCrLf(b []byte, pos int) bool {
	return 0 <= pos && pos+1 < len(b) && b[pos] == '\r' && b[pos+1] == '\n'
}

// SeekToPredicate returns the first position at or after pos where pred holds.
func SeekToPredicate(b []byte, pos int, pred Predicate) int {
	for pos = clamp(b, pos); pos < len(b); pos++ {
		if pred(b[pos]) {
			return pos
		}
	}
	return len(b)
}

// SeekToByte returns the first occurrence of c at or after pos.
func SeekToByte(b []byte, pos int, c byte) int {
	for pos = clamp(b, pos); pos < len(b); pos++ {
		if b[pos] == c {
			return pos
		}
	}
	return len(b)
}

// SeekToLineBreak returns the first CR or LF at or after pos.
func SeekToLineBreak(b []byte, pos int) int {
	return SeekToPredicate(b, pos, IsLineBreakByte)
}

// SkipLineBreak advances past one line break at pos: two bytes for CR LF,
// one for a bare CR or LF. Any other byte leaves pos unchanged.
func SkipLineBreak(b []byte, pos int) int {
	pos = clamp(b, pos)
	switch {
	case IsCrLf(b, pos):
		return pos + 2
	case IsLineBreak(b, pos):
		return pos + 1
	}
	return pos
}

// SeekToNextLine returns the first byte of the line following pos.
func SeekToNextLine(b []byte, pos int) int {
	return SkipLineBreak(b, SeekToLineBreak(b, pos))
}

// CaptureWhile consumes the maximal run starting at pos where pred holds
// and returns it with the position just after it.
func CaptureWhile(b []byte, pos int, pred Predicate) ([]byte, int) {
	start := clamp(b, pos)
	end := start
	for end < len(b) && pred(b[end]) {
		end++
	}
	return b[start:end], end
}

// SkipWhile returns the position after the maximal run where pred holds.
func SkipWhile(b []byte, pos int, pred Predicate) int {
	_, pos = CaptureWhile(b, pos, pred)
	return pos
}

func clamp(b []byte, pos int) int {
	if pos < 0 {
		return 0
	}
	if pos > len(b) {
		return len(b)
	}
	return pos
}
