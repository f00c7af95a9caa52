// internal/types/span.go
package types

// Span represents a [Start, End) byte range within document content.
// Cursors and selections are spans; a caret is a span with Start == End.
// Byte offsets are used throughout; rune/grapheme mapping is the
// concern of whoever renders the content.
type Span struct {
	Start int
	End   int
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// Empty reports whether the span covers no bytes.
func (s Span) Empty() bool {
	return s.Start >= s.End
}
