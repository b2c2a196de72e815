package encoding

import (
	"fmt"
	"strings"

	"github.com/oesand/framer/specs"
)

func IsKnownEncoding(contentEncoding string) bool {
	switch contentEncoding {
	case specs.ContentEncodingGzip, specs.ContentEncodingDeflate, specs.ContentEncodingBrotli:
		return true
	}
	return false
}

// ParseCodings splits a Content-Encoding value into its codings,
// dropping "identity". Unknown codings are reported as errors.
func ParseCodings(value string) ([]string, error) {
	var codings []string
	for _, part := range strings.Split(value, ",") {
		coding := strings.ToLower(strings.TrimSpace(part))
		switch {
		case coding == "" || coding == specs.ContentEncodingIdentity:
			continue
		case coding == "x-gzip":
			coding = specs.ContentEncodingGzip
		case !IsKnownEncoding(coding):
			return nil, fmt.Errorf("%w %q", specs.ErrUnknownContentEncoding, coding)
		}
		codings = append(codings, coding)
	}
	return codings, nil
}
