package framer

import (
	"github.com/oesand/framer/specs"
	"io"
)

// Serializer writes messages in wire form.
type Serializer struct {
	// LineBreak terminates the start line, every header line and the
	// blank line before the body. The zero value is a bare LF.
	LineBreak specs.LineBreak
}

// Serialize returns the start line, header block, blank line and body
// in one allocation sized to fit them exactly.
//
// A message without a start line is written from its header block on and
// does not parse back; Message.Validate reports that case.
func (s Serializer) Serialize(m *Message) []byte {
	lineBreak := s.LineBreak.Bytes()
	header := m.header()

	size := header.WireLen(lineBreak) + len(lineBreak) + m.Body.Len()
	if m.StartLine != nil {
		size += m.StartLine.WireLen(lineBreak)
	}

	buf := make([]byte, 0, size)
	if m.StartLine != nil {
		buf = m.StartLine.AppendWire(buf, lineBreak)
	}
	buf = header.AppendWire(buf, lineBreak)
	buf = append(buf, lineBreak...)
	return append(buf, m.Body.Bytes()...)
}

// SerializeMessage returns the wire form of m with LF line breaks.
func SerializeMessage(m *Message) []byte {
	return Serializer{}.Serialize(m)
}

// ToWire returns the wire form of the message with LF line breaks.
// See Serializer.Serialize for a message without a start line.
func (m *Message) ToWire() []byte {
	return SerializeMessage(m)
}

// WriteTo writes the wire form of the message to writer.
func (m *Message) WriteTo(writer io.Writer) (int64, error) {
	n, err := writer.Write(m.ToWire())
	if err != nil {
		return int64(n), &specs.OpError{
			Op:  "write",
			Err: err,
		}
	}
	return int64(n), nil
}
