// internal/text/snapshot.go
package text

import (
	"bytes"

	"github.com/keeledit/keel/internal/types"
)

// Snapshot is one immutable version of a document: its content plus an
// ordered cursor set. A snapshot always carries at least one cursor.
// Snapshots are value types; deriving a new one never touches the old.
type Snapshot struct {
	content Content
	cursors []types.Span
}

// FromString creates a snapshot of s with a single caret at offset 0.
func FromString(s string) Snapshot {
	return FromBytes([]byte(s))
}

// FromBytes creates a snapshot of b with a single caret at offset 0.
// The bytes are copied; the caller keeps ownership of b.
func FromBytes(b []byte) Snapshot {
	return Snapshot{
		content: ContentFromBytes(b),
		cursors: []types.Span{{Start: 0, End: 0}},
	}
}

// WithCursors derives a snapshot sharing this content but carrying the
// given cursor set. Spans are copied and must be ordered by Start.
// An empty set falls back to a single caret at 0.
func (s Snapshot) WithCursors(cursors []types.Span) Snapshot {
	if len(cursors) == 0 {
		cursors = []types.Span{{Start: 0, End: 0}}
	}
	owned := make([]types.Span, len(cursors))
	copy(owned, cursors)
	return Snapshot{content: s.content, cursors: owned}
}

// Content returns the snapshot's content.
func (s Snapshot) Content() Content {
	return s.content
}

// Cursors returns the ordered cursor set. Callers must not modify it.
func (s Snapshot) Cursors() []types.Span {
	return s.cursors
}

// Equal reports full value equality: content and cursor set.
func (s Snapshot) Equal(other Snapshot) bool {
	if !s.content.Equal(other.content) {
		return false
	}
	if len(s.cursors) != len(other.cursors) {
		return false
	}
	for i, c := range s.cursors {
		if c != other.cursors[i] {
			return false
		}
	}
	return true
}

// Paste produces a new snapshot with b inserted at every cursor, in
// order. Each cursor's span is replaced by the pasted bytes and the
// cursor collapses to a caret immediately after them. Cursor spans are
// assumed ordered and non-overlapping.
func (s Snapshot) Paste(b []byte) Snapshot {
	var out bytes.Buffer
	out.Grow(s.content.Len() + len(b)*len(s.cursors))

	newCursors := make([]types.Span, 0, len(s.cursors))
	prev := 0
	for _, cur := range s.cursors {
		start, end := cur.Start, cur.End
		if start < prev {
			start = prev
		}
		if end < start {
			end = start
		}
		out.Write(s.content.Slice(prev, start))
		out.Write(b)
		caret := out.Len()
		newCursors = append(newCursors, types.Span{Start: caret, End: caret})
		prev = end
	}
	out.Write(s.content.Slice(prev, s.content.Len()))

	return Snapshot{
		content: ContentFromBytes(out.Bytes()),
		cursors: newCursors,
	}
}
