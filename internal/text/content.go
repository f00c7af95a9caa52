// internal/text/content.go
package text

import "bytes"

// Content is an immutable byte sequence. The zero value is empty content.
// Once constructed it is never mutated, so it may be shared freely
// between snapshots and history entries.
type Content struct {
	b []byte
}

// ContentFromBytes creates Content owning a copy of b.
func ContentFromBytes(b []byte) Content {
	if len(b) == 0 {
		return Content{}
	}
	owned := make([]byte, len(b))
	copy(owned, b)
	return Content{b: owned}
}

// Len returns the content length in bytes.
func (c Content) Len() int {
	return len(c.b)
}

// Slice returns the bytes in [start, end). The range is clamped to the
// content bounds rather than panicking on out-of-range input.
func (c Content) Slice(start, end int) []byte {
	if start < 0 {
		start = 0
	}
	if end > len(c.b) {
		end = len(c.b)
	}
	if start >= end {
		return nil
	}
	return c.b[start:end]
}

// Bytes returns the full content. Callers must not modify the result.
func (c Content) Bytes() []byte {
	return c.b
}

// Equal reports structural equality of two contents.
func (c Content) Equal(other Content) bool {
	return bytes.Equal(c.b, other.b)
}

// ForEach traverses bytes forward from start, invoking visit for each.
// Traversal stops early when visit returns false.
func (c Content) ForEach(start int, visit func(b byte) bool) {
	if start < 0 {
		start = 0
	}
	for i := start; i < len(c.b); i++ {
		if !visit(c.b[i]) {
			return
		}
	}
}
