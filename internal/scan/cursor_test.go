package scan

import (
	"reflect"
	"testing"
)

func TestIsLineBreak(t *testing.T) {
	tests := []struct {
		name string
		text string
		pos  int
		want bool
	}{
		{name: "CR", text: "a\rb", pos: 1, want: true},
		{name: "LF", text: "a\nb", pos: 1, want: true},
		{name: "Letter", text: "a\nb", pos: 0, want: false},
		{name: "At end", text: "a\n", pos: 2, want: false},
		{name: "Negative", text: "\n", pos: -1, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsLineBreak([]byte(tt.text), tt.pos); got != tt.want {
				t.Errorf("IsLineBreak() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsCrLf(t *testing.T) {
	tests := []struct {
		name string
		text string
		pos  int
		want bool
	}{
		{name: "CRLF", text: "\r\n", pos: 0, want: true},
		{name: "Bare CR", text: "\rx", pos: 0, want: false},
		{name: "CR at end", text: "x\r", pos: 1, want: false},
		{name: "LF CR", text: "\n\r", pos: 0, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsCrLf([]byte(tt.text), tt.pos); got != tt.want {
				t.Errorf("IsCrLf() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSeekToLineBreak(t *testing.T) {
	tests := []struct {
		name string
		text string
		pos  int
		want int
	}{
		{name: "CRLF", text: "Host: x\r\n", pos: 0, want: 7},
		{name: "LF", text: "Host: x\n", pos: 0, want: 7},
		{name: "CR", text: "Host: x\r", pos: 0, want: 7},
		{name: "None", text: "Host: x", pos: 0, want: 7},
		{name: "At break", text: "\n", pos: 0, want: 0},
		{name: "From middle", text: "a\nb\nc", pos: 2, want: 3},
		{name: "Past end", text: "abc", pos: 10, want: 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SeekToLineBreak([]byte(tt.text), tt.pos); got != tt.want {
				t.Errorf("SeekToLineBreak() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSeekToByte(t *testing.T) {
	b := []byte("name: value: x")
	if got := SeekToByte(b, 0, ':'); got != 4 {
		t.Errorf("SeekToByte() = %d, want 4", got)
	}
	if got := SeekToByte(b, 5, ':'); got != 11 {
		t.Errorf("SeekToByte() = %d, want 11", got)
	}
	if got := SeekToByte(b, 0, '#'); got != len(b) {
		t.Errorf("SeekToByte() = %d, want %d", got, len(b))
	}
}

func TestSeekToPredicate(t *testing.T) {
	b := []byte("abc123")
	if got := SeekToPredicate(b, 0, IsDigit); got != 3 {
		t.Errorf("SeekToPredicate() = %d, want 3", got)
	}
	if got := SeekToPredicate(b, 0, IsWhitespace); got != len(b) {
		t.Errorf("SeekToPredicate() = %d, want %d", got, len(b))
	}
}

func TestSkipLineBreak(t *testing.T) {
	tests := []struct {
		name string
		text string
		pos  int
		want int
	}{
		{name: "CRLF", text: "\r\nx", pos: 0, want: 2},
		{name: "Bare CR", text: "\rx", pos: 0, want: 1},
		{name: "Bare LF", text: "\nx", pos: 0, want: 1},
		{name: "LF then CR", text: "\n\r", pos: 0, want: 1},
		{name: "CR at end", text: "\r", pos: 0, want: 1},
		{name: "At end", text: "x", pos: 1, want: 1},
		{name: "Not a break", text: "xy", pos: 0, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SkipLineBreak([]byte(tt.text), tt.pos); got != tt.want {
				t.Errorf("SkipLineBreak() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSeekToNextLine(t *testing.T) {
	tests := []struct {
		name string
		text string
		pos  int
		want int
	}{
		{name: "CRLF", text: "GET / HTTP/1.1\r\nHost", pos: 0, want: 16},
		{name: "LF", text: "GET / HTTP/1.1\nHost", pos: 0, want: 15},
		{name: "No more lines", text: "GET / HTTP/1.1", pos: 0, want: 14},
		{name: "Break is last byte", text: "abc\n", pos: 0, want: 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SeekToNextLine([]byte(tt.text), tt.pos); got != tt.want {
				t.Errorf("SeekToNextLine() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCaptureWhile(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		pos      int
		pred     Predicate
		wantText []byte
		wantPos  int
	}{
		{name: "Digits", text: "404 Not Found", pos: 0, pred: IsDigit, wantText: []byte("404"), wantPos: 3},
		{name: "Token", text: "GET /", pos: 0, pred: Not(IsWhitespace), wantText: []byte("GET"), wantPos: 3},
		{name: "Until end", text: "abc", pos: 1, pred: Not(IsWhitespace), wantText: []byte("bc"), wantPos: 3},
		{name: "Empty run", text: " abc", pos: 0, pred: Not(IsWhitespace), wantText: []byte{}, wantPos: 0},
		{name: "Not whitespace", text: "/index.html HTTP", pos: 0, pred: Not(IsWhitespace), wantText: []byte("/index.html"), wantPos: 11},
		{name: "Past end", text: "abc", pos: 5, pred: Not(IsWhitespace), wantText: []byte{}, wantPos: 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotText, gotPos := CaptureWhile([]byte(tt.text), tt.pos, tt.pred)
			if !reflect.DeepEqual(gotText, tt.wantText) {
				t.Errorf("CaptureWhile() text = %q, want %q", gotText, tt.wantText)
			}
			if gotPos != tt.wantPos {
				t.Errorf("CaptureWhile() pos = %d, want %d", gotPos, tt.wantPos)
			}
		})
	}
}
