// internal/core/history/history.go
package history

import (
	"fmt"

	"github.com/keeledit/keel/internal/text"
)

// History is an append-only, insertion-ordered sequence of snapshots.
// Entries are never removed, reordered, or replaced, so an index into a
// History stays valid for the lifetime of the arena and keeps naming
// the same snapshot forever. Positions such as "current", "on disk" and
// "last copied" can therefore be plain integer bookmarks.
//
// History is a value type: Append returns an extended handle and the
// receiver is left observing its old length. Handles derived from one
// another share backing storage; appends from two diverged handles must
// be serialized by the caller (single-writer discipline).
type History struct {
	entries []text.Snapshot
}

// New creates a history seeded with one initial snapshot.
func New(initial text.Snapshot) History {
	return History{entries: []text.Snapshot{initial}}
}

// Append returns a history extended with s. The receiver is unchanged.
func (h History) Append(s text.Snapshot) History {
	return History{entries: append(h.entries, s)}
}

// At returns the snapshot at index i. Panics on an out-of-range index,
// which always indicates a bookkeeping bug in the caller.
func (h History) At(i int) text.Snapshot {
	if i < 0 || i >= len(h.entries) {
		panic(fmt.Sprintf("history: index %d out of range (len %d)", i, len(h.entries)))
	}
	return h.entries[i]
}

// Len returns the number of entries.
func (h History) Len() int {
	return len(h.entries)
}
