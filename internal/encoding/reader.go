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

func NewReader(contentEncoding string, reader io.Reader) (io.ReadCloser, error) {
	switch contentEncoding {
	case specs.ContentEncodingGzip:
		return gzip.NewReader(reader)
	case specs.ContentEncodingDeflate:
		return zlib.NewReader(reader)
	case specs.ContentEncodingBrotli:
		return io.NopCloser(brotli.NewReader(reader)), nil
	}
	return nil, fmt.Errorf("%w %q", specs.ErrUnknownContentEncoding, contentEncoding)
}

// Decode reverses the codings, applied to data in the listed order.
// A non-positive limit disables the size check on the decoded result.
func Decode(codings []string, data []byte, limit int64) ([]byte, error) {
	for i := len(codings) - 1; i >= 0; i-- {
		reader, err := NewReader(codings[i], bytes.NewReader(data))
		if err != nil {
			return nil, err
		}

		var src io.Reader = reader
		if limit > 0 {
			src = io.LimitReader(reader, limit+1)
		}
		data, err = io.ReadAll(src)
		reader.Close()
		if err != nil {
			return nil, &specs.OpError{
				Op:  "encoding",
				Err: fmt.Errorf("decode %s: %w", codings[i], err),
			}
		}
		if limit > 0 && int64(len(data)) > limit {
			return nil, specs.ErrTooLarge
		}
	}
	return data, nil
}
