package core

import (
	"testing"

	"github.com/keeledit/keel/internal/text"
	"github.com/keeledit/keel/internal/types"
)

func content(e Editor) string {
	return string(e.Current().Content().Bytes())
}

func TestFromStringInitialState(t *testing.T) {
	e := FromString("hello")
	if content(e) != "hello" {
		t.Errorf("content = %q", content(e))
	}
	if e.HistoryLen() != 1 {
		t.Errorf("HistoryLen = %d, want 1", e.HistoryLen())
	}
	if e.Pos() != 0 || e.DiskPos() != 0 || e.CopyPos() != 0 {
		t.Errorf("indices = %d/%d/%d, want 0/0/0", e.Pos(), e.DiskPos(), e.CopyPos())
	}
	if e.Dirty() {
		t.Error("fresh editor should not be dirty")
	}
	if e.File() != nil {
		t.Error("FromString should have no file binding")
	}
}

func TestAddUndoAppends(t *testing.T) {
	e := FromString("a")
	e = e.AddUndo(text.FromString("ab"))
	if e.HistoryLen() != 2 || e.Pos() != 1 {
		t.Errorf("len/pos = %d/%d, want 2/1", e.HistoryLen(), e.Pos())
	}
	if content(e) != "ab" {
		t.Errorf("content = %q, want %q", content(e), "ab")
	}
}

func TestAddUndoSuppressesNoOp(t *testing.T) {
	e := FromString("a")
	e = e.AddUndo(text.FromString("a"))
	if e.HistoryLen() != 1 || e.Pos() != 0 {
		t.Errorf("no-op edit grew history: len/pos = %d/%d", e.HistoryLen(), e.Pos())
	}

	// A cursor-only change is not a no-op: full value equality.
	moved := e.Current().WithCursors([]types.Span{{Start: 1, End: 1}})
	e = e.AddUndo(moved)
	if e.HistoryLen() != 2 {
		t.Errorf("cursor-only change should append: len = %d", e.HistoryLen())
	}
}

func TestUndoMonotonicLanding(t *testing.T) {
	e := FromString("C0")
	e = e.AddUndo(text.FromString("C1"))
	e = e.AddUndo(text.FromString("C2"))

	e = e.Undo()
	if content(e) != "C1" {
		t.Fatalf("first undo landed on %q, want C1", content(e))
	}
	e = e.Undo()
	if content(e) != "C0" {
		t.Fatalf("second undo landed on %q, want C0", content(e))
	}

	// Boundary: content stays C0 but history still grows.
	lenBefore := e.HistoryLen()
	e = e.Undo()
	if content(e) != "C0" {
		t.Errorf("boundary undo landed on %q, want C0", content(e))
	}
	if e.HistoryLen() != lenBefore+1 {
		t.Errorf("boundary undo should still append: len %d -> %d", lenBefore, e.HistoryLen())
	}
}

func TestUndoAppendsRatherThanRewinds(t *testing.T) {
	e := FromString("C0")
	e = e.AddUndo(text.FromString("C1"))
	e = e.Undo()
	if e.HistoryLen() != 3 {
		t.Errorf("HistoryLen = %d, want 3 (undo appends)", e.HistoryLen())
	}
	if e.Pos() != 2 {
		t.Errorf("Pos = %d, want 2", e.Pos())
	}
	// Earlier entries unchanged.
	if got := string(e.At(1).Content().Bytes()); got != "C1" {
		t.Errorf("At(1) = %q, want C1", got)
	}
}

func TestUndoIgnoresCursorDifferences(t *testing.T) {
	// Entries 1 and 2 share content but differ in cursors; undo's
	// backward walk must skip both and land on C0.
	e := FromString("C0")
	e = e.AddUndo(text.FromString("C1"))
	e = e.AddUndo(text.FromString("C1").WithCursors([]types.Span{{Start: 1, End: 1}}))

	e = e.Undo()
	if content(e) != "C0" {
		t.Errorf("undo landed on %q, want C0", content(e))
	}
}

func TestDirtyTracksContentOnly(t *testing.T) {
	e := FromString("a")
	if e.Dirty() {
		t.Fatal("fresh editor dirty")
	}
	e = e.AddUndo(e.Current().WithCursors([]types.Span{{Start: 1, End: 1}}))
	if e.Dirty() {
		t.Error("cursor movement should not dirty the editor")
	}
	e = e.AddUndo(text.FromString("ab"))
	if !e.Dirty() {
		t.Error("content change should dirty the editor")
	}
}

func TestMarkCopiedAndNeedsCopy(t *testing.T) {
	e := FromString("a")
	if e.NeedsCopy() {
		t.Error("fresh editor should not need copy")
	}
	e = e.AddUndo(text.FromString("ab"))
	if !e.NeedsCopy() {
		t.Error("changed content should need copy")
	}
	e = e.MarkCopied()
	if e.NeedsCopy() {
		t.Error("MarkCopied should clear NeedsCopy")
	}
	if e.CopyPos() != e.Pos() {
		t.Errorf("CopyPos = %d, want %d", e.CopyPos(), e.Pos())
	}
}

func TestOldEditorValuesStayValid(t *testing.T) {
	e1 := FromString("a")
	e2 := e1.AddUndo(text.FromString("ab"))

	if content(e1) != "a" || e1.HistoryLen() != 1 {
		t.Errorf("old editor value changed: %q len %d", content(e1), e1.HistoryLen())
	}
	if content(e2) != "ab" {
		t.Errorf("new editor value = %q", content(e2))
	}
}
