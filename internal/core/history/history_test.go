package history

import (
	"testing"

	"github.com/keeledit/keel/internal/text"
)

func TestNewSeedsOneEntry(t *testing.T) {
	h := New(text.FromString("a"))
	if h.Len() != 1 {
		t.Fatalf("Len = %d, want 1", h.Len())
	}
	if got := string(h.At(0).Content().Bytes()); got != "a" {
		t.Errorf("At(0) = %q, want %q", got, "a")
	}
}

func TestAppendLeavesReceiverUnchanged(t *testing.T) {
	h1 := New(text.FromString("a"))
	h2 := h1.Append(text.FromString("b"))

	if h1.Len() != 1 {
		t.Errorf("old handle Len = %d, want 1", h1.Len())
	}
	if h2.Len() != 2 {
		t.Errorf("new handle Len = %d, want 2", h2.Len())
	}
	if got := string(h2.At(1).Content().Bytes()); got != "b" {
		t.Errorf("At(1) = %q, want %q", got, "b")
	}
}

func TestEntriesStableAcrossAppends(t *testing.T) {
	h := New(text.FromString("v0"))
	for i := 0; i < 20; i++ {
		h = h.Append(text.FromString("later"))
	}
	if got := string(h.At(0).Content().Bytes()); got != "v0" {
		t.Errorf("At(0) changed after appends: %q", got)
	}
}

func TestAtPanicsOutOfRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on out-of-range index")
		}
	}()
	New(text.FromString("a")).At(5)
}
