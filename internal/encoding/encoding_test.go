package encoding

import (
	"bytes"
	"errors"
	"reflect"
	"testing"

	"github.com/oesand/framer/specs"
)

func TestParseCodings(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    []string
		wantErr bool
	}{
		{name: "Single", value: "gzip", want: []string{"gzip"}},
		{name: "List", value: "gzip, br", want: []string{"gzip", "br"}},
		{name: "Identity dropped", value: "identity", want: nil},
		{name: "Case and spaces", value: " GZIP ,Deflate", want: []string{"gzip", "deflate"}},
		{name: "Legacy alias", value: "x-gzip", want: []string{"gzip"}},
		{name: "Unknown", value: "compress", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCodings(tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseCodings() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, specs.ErrUnknownContentEncoding) {
					t.Errorf("ParseCodings() error = %v, want %v", err, specs.ErrUnknownContentEncoding)
				}
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseCodings() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEncodeDecode(t *testing.T) {
	payload := bytes.Repeat([]byte("framer payload "), 64)
	tests := []struct {
		name    string
		codings []string
	}{
		{name: "Gzip", codings: []string{specs.ContentEncodingGzip}},
		{name: "Deflate", codings: []string{specs.ContentEncodingDeflate}},
		{name: "Brotli", codings: []string{specs.ContentEncodingBrotli}},
		{name: "Stacked", codings: []string{specs.ContentEncodingGzip, specs.ContentEncodingBrotli}},
		{name: "None", codings: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded, err := Encode(tt.codings, payload)
			if err != nil {
				t.Fatal(err)
			}
			if len(tt.codings) > 0 && bytes.Equal(encoded, payload) {
				t.Fatal("Encode() returned payload unchanged")
			}
			decoded, err := Decode(tt.codings, encoded, 0)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(decoded, payload) {
				t.Errorf("Decode() = %q, want %q", decoded, payload)
			}
		})
	}
}

func TestDecodeLimit(t *testing.T) {
	payload := bytes.Repeat([]byte("a"), 1024)
	encoded, err := Encode([]string{specs.ContentEncodingGzip}, payload)
	if err != nil {
		t.Fatal(err)
	}
	if _, err = Decode([]string{specs.ContentEncodingGzip}, encoded, 100); !errors.Is(err, specs.ErrTooLarge) {
		t.Errorf("Decode() error = %v, want %v", err, specs.ErrTooLarge)
	}
	if _, err = Decode([]string{specs.ContentEncodingGzip}, encoded, 1024); err != nil {
		t.Errorf("Decode() unexpected error = %v", err)
	}
}

func TestDecodeCorrupted(t *testing.T) {
	if _, err := Decode([]string{specs.ContentEncodingGzip}, []byte("not gzip"), 0); err == nil {
		t.Error("Decode() expected error on corrupted input")
	}
}
