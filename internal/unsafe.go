package internal

import "unsafe"

// BufferToString returns a string view of b without copying.
// The result must not outlive any mutation of b.
func BufferToString(b []byte) string {
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// StringToBuffer returns a byte view of s without copying.
// The result must never be written to.
func StringToBuffer(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}
