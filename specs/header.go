package specs

import (
	"fmt"
	"iter"

	"github.com/oesand/framer/internal"
	"golang.org/x/net/http/httpguts"
)

var (
	rawColonSpace = []byte(": ")
	rawListComma  = ", "
)

// NewHeader creates an empty Header and applies the given configure functions.
func NewHeader(configure ...func(header *Header)) *Header {
	header := &Header{}
	for _, fn := range configure {
		fn(header)
	}
	return header
}

type headerEntry struct {
	name  string
	value string
}

// Header is an insertion-ordered set of header fields.
//
// Names keep the case they were stored with, while lookup and merging
// compare them case-insensitively. Each name is stored at most once.
type Header struct {
	index   map[string]int
	entries []headerEntry
}

func headerKey(name string) string {
	return internal.LowerASCII(name)
}

func (header *Header) lookup(name string) (int, bool) {
	if header.index == nil {
		return -1, false
	}
	i, has := header.index[headerKey(name)]
	return i, has
}

func (header *Header) insert(name, value string) {
	if header.index == nil {
		header.index = map[string]int{}
	}
	header.index[headerKey(name)] = len(header.entries)
	header.entries = append(header.entries, headerEntry{name: name, value: value})
}

// Get returns the value of the named header or an empty string.
func (header *Header) Get(name string) string {
	value, _ := header.TryGet(name)
	return value
}

// TryGet returns the value of the named header and whether it is present.
func (header *Header) TryGet(name string) (string, bool) {
	i, has := header.lookup(name)
	if !has {
		return "", false
	}
	return header.entries[i].value, true
}

// Has reports whether the named header is present, ignoring case.
func (header *Header) Has(name string) bool {
	_, has := header.lookup(name)
	return has
}

// Set stores a single value for the header, overwriting any previous value.
// An existing entry keeps its position and original name.
func (header *Header) Set(name, value string) {
	if i, has := header.lookup(name); has {
		header.entries[i].value = value
		return
	}
	header.insert(name, value)
}

// Add merges value into the named header using HTTP list semantics:
// a repeated header becomes "existing, value".
func (header *Header) Add(name, value string) {
	i, has := header.lookup(name)
	if !has {
		header.insert(name, value)
		return
	}
	if header.entries[i].value == "" {
		header.entries[i].value = value
	} else {
		header.entries[i].value += rawListComma + value
	}
}

// Del removes the named header.
func (header *Header) Del(name string) {
	i, has := header.lookup(name)
	if !has {
		return
	}
	delete(header.index, headerKey(name))
	header.entries = append(header.entries[:i], header.entries[i+1:]...)
	for j := i; j < len(header.entries); j++ {
		header.index[headerKey(header.entries[j].name)] = j
	}
}

// Len returns the number of stored headers.
func (header *Header) Len() int {
	return len(header.entries)
}

// All iterates over headers in insertion order.
func (header *Header) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, entry := range header.entries {
			if !yield(entry.name, entry.value) {
				break
			}
		}
	}
}

// Clone returns a deep copy of the header.
func (header *Header) Clone() *Header {
	clone := &Header{}
	if len(header.entries) == 0 {
		return clone
	}
	clone.entries = make([]headerEntry, len(header.entries))
	copy(clone.entries, header.entries)
	clone.index = make(map[string]int, len(header.index))
	for key, i := range header.index {
		clone.index[key] = i
	}
	return clone
}

// Canonicalize rewrites stored names to their title-cased form,
// e.g. "content-type" becomes "Content-Type".
func (header *Header) Canonicalize() {
	for i := range header.entries {
		header.entries[i].name = internal.TitleCase(header.entries[i].name)
	}
}

// Validate checks every stored name and value against the HTTP field grammar.
func (header *Header) Validate() error {
	for _, entry := range header.entries {
		if !httpguts.ValidHeaderFieldName(entry.name) {
			return fmt.Errorf("%w: header name %q", ErrInvalidFormat, entry.name)
		}
		if !httpguts.ValidHeaderFieldValue(entry.value) {
			return fmt.Errorf("%w: value of header %q", ErrInvalidFormat, entry.name)
		}
	}
	return nil
}

// WireLen returns the serialized size of the header block
// for the given line break, excluding the terminating blank line.
func (header *Header) WireLen(lineBreak []byte) int {
	var size int
	for _, entry := range header.entries {
		size += len(entry.name) + len(rawColonSpace) + len(entry.value) + len(lineBreak)
	}
	return size
}

// AppendWire appends every header as "name: value" followed by lineBreak.
// The blank line terminating the block is not written.
func (header *Header) AppendWire(dst []byte, lineBreak []byte) []byte {
	for _, entry := range header.entries {
		dst = append(dst, entry.name...)
		dst = append(dst, rawColonSpace...)
		dst = append(dst, entry.value...)
		dst = append(dst, lineBreak...)
	}
	return dst
}

// Bytes serializes the header block using LF line breaks.
func (header *Header) Bytes() []byte {
	lineBreak := LineBreakLF.Bytes()
	return header.AppendWire(make([]byte, 0, header.WireLen(lineBreak)), lineBreak)
}

// String implements fmt.Stringer.
func (header *Header) String() string {
	return string(header.Bytes())
}
