package specs

import (
	"errors"
	"testing"
)

func TestStartLineWire(t *testing.T) {
	tests := []struct {
		name     string
		line     StartLine
		expected string
	}{
		{
			name:     "Request",
			line:     &RequestLine{ProtoMajor: 1, ProtoMinor: 1, Method: HttpMethodGet, Target: "/index.html"},
			expected: "GET /index.html HTTP/1.1",
		},
		{
			name:     "Request absolute target",
			line:     &RequestLine{ProtoMajor: 1, ProtoMinor: 0, Method: HttpMethodConnect, Target: "example.com:443"},
			expected: "CONNECT example.com:443 HTTP/1.0",
		},
		{
			name:     "Status",
			line:     &StatusLine{ProtoMajor: 1, ProtoMinor: 1, Code: StatusCodeOK, Reason: "OK"},
			expected: "HTTP/1.1 200 OK",
		},
		{
			name:     "Status multi-digit version",
			line:     &StatusLine{ProtoMajor: 10, ProtoMinor: 12, Code: StatusCodeNotFound, Reason: "Not Found"},
			expected: "HTTP/10.12 404 Not Found",
		},
		{
			name:     "Status empty reason",
			line:     &StatusLine{ProtoMajor: 1, ProtoMinor: 1, Code: StatusCodeNoContent},
			expected: "HTTP/1.1 204 ",
		},
	}
	for _, tt := range tests {
		for _, lb := range []LineBreak{LineBreakLF, LineBreakCRLF} {
			t.Run(tt.name+"/"+lb.String(), func(t *testing.T) {
				expected := tt.expected + string(lb.Bytes())
				got := tt.line.AppendWire(nil, lb.Bytes())
				if string(got) != expected {
					t.Errorf("AppendWire() = %q, want %q", got, expected)
				}
				if size := tt.line.WireLen(lb.Bytes()); size != len(got) {
					t.Errorf("WireLen() = %d, want %d", size, len(got))
				}
			})
		}
	}
}

func TestRequestLineValidate(t *testing.T) {
	tests := []struct {
		name    string
		line    RequestLine
		wantErr bool
	}{
		{name: "Valid", line: RequestLine{Method: HttpMethodGet, Target: "/"}},
		{name: "Extension method", line: RequestLine{Method: "PURGE", Target: "/cache"}},
		{name: "Empty method", line: RequestLine{Target: "/"}, wantErr: true},
		{name: "Separator in method", line: RequestLine{Method: "GE(T", Target: "/"}, wantErr: true},
		{name: "Empty target", line: RequestLine{Method: HttpMethodGet}, wantErr: true},
		{name: "Control in target", line: RequestLine{Method: HttpMethodGet, Target: "/\x7f"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.line.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidFormat) {
				t.Errorf("Validate() error = %v, want %v", err, ErrInvalidFormat)
			}
		})
	}
}

func TestStatusLineValidate(t *testing.T) {
	if err := (&StatusLine{Code: 200, Reason: "All\tGood"}).Validate(); err != nil {
		t.Errorf("Validate() unexpected error = %v", err)
	}
	if err := (&StatusLine{Code: 200, Reason: "bad\x00"}).Validate(); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("Validate() error = %v, want %v", err, ErrInvalidFormat)
	}
}

func TestStatusCode(t *testing.T) {
	tests := []struct {
		code   StatusCode
		detail string
		text   string
		valid  bool
	}{
		{code: StatusCodeOK, detail: "OK", text: "200 OK", valid: true},
		{code: StatusCodeTeapot, detail: "I'm a teapot", text: "418 I'm a teapot", valid: true},
		{code: 299, detail: "", text: "299", valid: true},
		{code: 600, detail: "", text: "600", valid: false},
		{code: 99, detail: "", text: "99", valid: false},
	}
	for _, tt := range tests {
		if got := tt.code.Detail(); got != tt.detail {
			t.Errorf("Detail(%d) = %q, want %q", tt.code, got, tt.detail)
		}
		if got := tt.code.String(); got != tt.text {
			t.Errorf("String(%d) = %q, want %q", tt.code, got, tt.text)
		}
		if got := tt.code.IsValid(); got != tt.valid {
			t.Errorf("IsValid(%d) = %v, want %v", tt.code, got, tt.valid)
		}
	}
}

func TestHttpMethod(t *testing.T) {
	if !HttpMethodPatch.IsStandard() || HttpMethod("PURGE").IsStandard() {
		t.Error("IsStandard() mismatch")
	}
	if !HttpMethod("PURGE").IsToken() || HttpMethod("a b").IsToken() || HttpMethod("").IsToken() {
		t.Error("IsToken() mismatch")
	}
}
