// internal/core/editor.go
package core

import (
	"github.com/keeledit/keel/internal/core/history"
	"github.com/keeledit/keel/internal/logger"
	"github.com/keeledit/keel/internal/text"
)

// Editor is the editing-state core of a document: an append-only
// snapshot history plus three integer bookmarks into it (current
// position, on-disk baseline, clipboard-copy baseline) and an optional
// file binding. Editor is a value type: every operation returns a new
// Editor derived from the receiver, and history entries are never
// mutated once appended, so old Editor values stay valid and cheap to
// keep around.
//
// An Editor exclusively owns the growing end of its history. Two Editor
// values derived from one another may freely share entries for reading,
// but only the latest value may append; callers sharing editors across
// goroutines must serialize writes themselves.
type Editor struct {
	history history.History
	pos     int // current edit point
	diskPos int // last index believed to match the backing file
	copyPos int // last index marked as the clipboard-copy baseline
	file    *FileBinding
}

// FromString creates an editor over the given content with no file
// binding. History has exactly one entry and all bookmarks point at it.
func FromString(s string) Editor {
	return Editor{history: history.New(text.FromString(s))}
}

// Current returns the snapshot at the current edit point.
func (e Editor) Current() text.Snapshot {
	return e.history.At(e.pos)
}

// AddUndo records s as the new current snapshot. If s equals the
// current snapshot by full value equality (content and cursors) the
// editor is returned unchanged, so no-op edits never grow history.
//
// AddUndo always lands the edit point on the new last index. Callers
// are expected to call it only when the edit point is already at the
// end of history; a caller that drifted is silently moved to the end
// rather than rejected, since history is append-only either way.
func (e Editor) AddUndo(s text.Snapshot) Editor {
	if s.Equal(e.Current()) {
		return e
	}
	e.history = e.history.Append(s)
	e.pos = e.history.Len() - 1
	return e
}

// Undo linearizes an undo step into the append-only history: it walks
// backward from the current position to the nearest entry whose content
// differs from the current content (or to index 0), then re-appends
// that snapshot as a new entry and moves the edit point there. The
// pointer never rewinds, so a later Undo naturally continues the walk
// further back, and saved/copied baselines are never invalidated.
//
// At the start of history there is nothing to recover; Undo still
// appends a content-duplicate of entry 0. Content-wise idempotent,
// history still grows by one per call.
func (e Editor) Undo() Editor {
	curr := e.Current()
	i := e.pos
	for i > 0 && e.history.At(i).Content().Equal(curr.Content()) {
		i--
	}
	prev := e.history.At(i)
	logger.Debugf("core: undo from index %d landing on content of index %d", e.pos, i)

	e.history = e.history.Append(prev)
	e.pos = e.history.Len() - 1
	return e
}

// Dirty reports whether the current content differs from the on-disk
// baseline's content. Cursor state is irrelevant here.
func (e Editor) Dirty() bool {
	return !e.history.At(e.diskPos).Content().Equal(e.history.At(e.pos).Content())
}

// MarkCopied moves the clipboard-copy baseline to the current position.
// This is the only operation that moves it.
func (e Editor) MarkCopied() Editor {
	e.copyPos = e.pos
	return e
}

// NeedsCopy reports whether the current content differs from the
// clipboard-copy baseline's content.
func (e Editor) NeedsCopy() bool {
	return !e.history.At(e.copyPos).Content().Equal(e.history.At(e.pos).Content())
}

// HistoryLen returns the number of history entries.
func (e Editor) HistoryLen() int {
	return e.history.Len()
}

// At returns the history entry at index i.
func (e Editor) At(i int) text.Snapshot {
	return e.history.At(i)
}

// Pos returns the current edit point index.
func (e Editor) Pos() int { return e.pos }

// DiskPos returns the on-disk baseline index.
func (e Editor) DiskPos() int { return e.diskPos }

// CopyPos returns the clipboard-copy baseline index.
func (e Editor) CopyPos() int { return e.copyPos }
