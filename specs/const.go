package specs

// LineBreak selects the line terminator used when serializing messages.
// Parsing always accepts CR, LF and CRLF.
type LineBreak uint8

const (
	LineBreakLF LineBreak = iota
	LineBreakCRLF
)

var (
	rawLf   = []byte("\n")
	rawCrlf = []byte("\r\n")
)

// Bytes returns the wire form of the line break.
func (lb LineBreak) Bytes() []byte {
	if lb == LineBreakCRLF {
		return rawCrlf
	}
	return rawLf
}

func (lb LineBreak) String() string {
	if lb == LineBreakCRLF {
		return "CRLF"
	}
	return "LF"
}
