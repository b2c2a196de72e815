package parsing

import "testing"

func TestParseHTTPVersion(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		wantMajor uint16
		wantMinor uint16
		wantOk    bool
	}{
		{name: "HTTP/1.1", value: "HTTP/1.1", wantMajor: 1, wantMinor: 1, wantOk: true},
		{name: "HTTP/1.0", value: "HTTP/1.0", wantMajor: 1, wantMinor: 0, wantOk: true},
		{name: "Multi digit", value: "HTTP/12.34", wantMajor: 12, wantMinor: 34, wantOk: true},
		{name: "Leading zeros", value: "HTTP/01.001", wantMajor: 1, wantMinor: 1, wantOk: true},
		{name: "Lowercase prefix", value: "http/1.1", wantOk: false},
		{name: "Missing dot", value: "HTTP/11", wantOk: false},
		{name: "Missing minor", value: "HTTP/1.", wantOk: false},
		{name: "Missing major", value: "HTTP/.1", wantOk: false},
		{name: "Signed", value: "HTTP/+1.1", wantOk: false},
		{name: "Letters", value: "HTTP/one.one", wantOk: false},
		{name: "Trailing garbage", value: "HTTP/1.1x", wantOk: false},
		{name: "Doubled prefix", value: "HTTP/HTTP/1.1", wantOk: false},
		{name: "Overflow", value: "HTTP/70000.1", wantOk: false},
		{name: "Empty", value: "", wantOk: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			major, minor, ok := parseHTTPVersion([]byte(tt.value))
			if ok != tt.wantOk {
				t.Fatalf("parseHTTPVersion() ok = %v, want %v", ok, tt.wantOk)
			}
			if major != tt.wantMajor || minor != tt.wantMinor {
				t.Errorf("parseHTTPVersion() = %d.%d, want %d.%d", major, minor, tt.wantMajor, tt.wantMinor)
			}
		})
	}
}
