package framer

import (
	"fmt"
	"github.com/oesand/framer/internal/encoding"
	"github.com/oesand/framer/specs"
	"strconv"
	"strings"
)

// DecodeBody returns the body with its Content-Encoding removed.
// A zero limit applies DefaultMaxDecodedBytes; a negative limit disables it.
func (m *Message) DecodeBody(limit int64) ([]byte, error) {
	codings, err := encoding.ParseCodings(m.header().Get(specs.HeaderContentEncoding))
	if err != nil {
		return nil, err
	}
	if len(codings) == 0 {
		return m.Body.Clone().Bytes(), nil
	}

	if limit == 0 {
		limit = DefaultMaxDecodedBytes
	} else if limit < 0 {
		limit = 0
	}
	return encoding.Decode(codings, m.Body.Bytes(), limit)
}

// EncodeBody compresses the body with the given codings, in order, and
// updates Content-Encoding and Content-Length to describe the new body.
func (m *Message) EncodeBody(codings ...string) error {
	if len(codings) == 0 {
		return nil
	}
	for _, coding := range codings {
		if !encoding.IsKnownEncoding(coding) {
			return fmt.Errorf("%w %q", specs.ErrUnknownContentEncoding, coding)
		}
	}

	encoded, err := encoding.Encode(codings, m.Body.Bytes())
	if err != nil {
		return err
	}

	header := m.header()
	header.Add(specs.HeaderContentEncoding, strings.Join(codings, ", "))
	m.Body = specs.WrapBuffer(encoded)
	header.Set(specs.HeaderContentLength, strconv.Itoa(m.Body.Len()))
	return nil
}
