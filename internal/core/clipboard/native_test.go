package clipboard

import (
	"io"
	"testing"
)

// The native bridge needs a reachable platform clipboard, which most CI
// hosts lack; the round trip skips itself when the platform says no.
func TestNativeBridgeRoundTrip(t *testing.T) {
	b, err := NewNativeBridge()
	if err != nil {
		t.Skipf("platform clipboard unavailable: %v", err)
	}

	cp, err := b.Copy()
	if err != nil {
		t.Fatalf("Copy: %v", err)
	}
	if _, err := cp.Stdin().Write([]byte("keel native test")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := cp.Stdin().Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := cp.Wait(); err != nil {
		t.Skipf("clipboard write failed (headless host?): %v", err)
	}

	pp, err := b.Paste()
	if err != nil {
		t.Fatalf("Paste: %v", err)
	}
	out, err := io.ReadAll(pp.Stdout())
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if err := pp.Wait(); err != nil {
		t.Errorf("Wait: %v", err)
	}
	if string(out) != "keel native test" {
		t.Errorf("round trip = %q", out)
	}
}

func TestNativeCopyKillAborts(t *testing.T) {
	proc := &nativeCopyProc{}
	_, _ = proc.Stdin().Write([]byte("doomed"))
	proc.Kill()
	if err := proc.Wait(); err == nil {
		t.Error("killed copy should not commit")
	}
}
