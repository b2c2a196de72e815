package specs

// Buffer is an owned, fixed-length byte region holding wire bytes.
//
// Indexed access is bounds-checked and reports ErrOutOfRange instead of
// panicking. Assigning a Buffer shares its storage; use Clone for a deep
// copy and Move to transfer ownership.
type Buffer struct {
	data []byte
}

// NewBuffer allocates a zeroed buffer of the given length.
func NewBuffer(length int) Buffer {
	if length <= 0 {
		return Buffer{}
	}
	return Buffer{data: make([]byte, length)}
}

// CopyBuffer creates a buffer holding a deep copy of data.
func CopyBuffer(data []byte) Buffer {
	if len(data) == 0 {
		return Buffer{}
	}
	buf := make([]byte, len(data))
	copy(buf, data)
	return Buffer{data: buf}
}

// WrapBuffer takes ownership of data without copying.
// The caller must not modify data afterwards.
func WrapBuffer(data []byte) Buffer {
	return Buffer{data: data}
}

// Len returns the declared length of the buffer.
func (buf Buffer) Len() int {
	return len(buf.data)
}

// At returns the byte at position i.
func (buf Buffer) At(i int) (byte, error) {
	if i < 0 || i >= len(buf.data) {
		return 0, NewParseError(ErrOutOfRange, i, "")
	}
	return buf.data[i], nil
}

// SetAt overwrites the byte at position i.
func (buf Buffer) SetAt(i int, b byte) error {
	if i < 0 || i >= len(buf.data) {
		return NewParseError(ErrOutOfRange, i, "")
	}
	buf.data[i] = b
	return nil
}

// Slice returns a view of [from, to) sharing the buffer storage.
func (buf Buffer) Slice(from, to int) ([]byte, error) {
	if from < 0 || from > to {
		return nil, NewParseError(ErrOutOfRange, from, "")
	}
	if to > len(buf.data) {
		return nil, NewParseError(ErrOutOfRange, to, "")
	}
	return buf.data[from:to:to], nil
}

// Bytes returns the buffer contents without copying.
func (buf Buffer) Bytes() []byte {
	return buf.data
}

// String returns a copy of the buffer contents as a string.
func (buf Buffer) String() string {
	return string(buf.data)
}

// Clone returns a deep copy of the buffer.
func (buf Buffer) Clone() Buffer {
	return CopyBuffer(buf.data)
}

// Move transfers ownership of the contents to the returned buffer
// and leaves the source empty.
func (buf *Buffer) Move() Buffer {
	moved := Buffer{data: buf.data}
	buf.data = nil
	return moved
}
