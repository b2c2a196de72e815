package encoding

import (
	"bytes"
	"compress/gzip"
	"compress/zlib"
	"fmt"
	"io"

	"github.com/andybalholm/brotli"
	"github.com/oesand/framer/specs"
)

func NewWriter(contentEncoding string, writer io.Writer) (io.WriteCloser, error) {
	switch contentEncoding {
	case specs.ContentEncodingGzip:
		return gzip.NewWriter(writer), nil
	case specs.ContentEncodingDeflate:
		return zlib.NewWriter(writer), nil
	case specs.ContentEncodingBrotli:
		return brotli.NewWriter(writer), nil
	}
	return nil, fmt.Errorf("%w %q", specs.ErrUnknownContentEncoding, contentEncoding)
}

// Encode applies the codings to data in the listed order.
func Encode(codings []string, data []byte) ([]byte, error) {
	for _, coding := range codings {
		var buf bytes.Buffer
		writer, err := NewWriter(coding, &buf)
		if err != nil {
			return nil, err
		}
		if _, err = writer.Write(data); err != nil {
			writer.Close()
			return nil, &specs.OpError{
				Op:  "encoding",
				Err: fmt.Errorf("encode %s: %w", coding, err),
			}
		}
		if err = writer.Close(); err != nil {
			return nil, &specs.OpError{
				Op:  "encoding",
				Err: fmt.Errorf("encode %s: %w", coding, err),
			}
		}
		data = buf.Bytes()
	}
	return data, nil
}
