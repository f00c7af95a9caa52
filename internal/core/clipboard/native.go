// internal/core/clipboard/native.go
package clipboard

import (
	"bytes"
	"fmt"
	"io"

	"github.com/atotto/clipboard"
)

// NativeBridge talks to the platform clipboard through the atotto
// library instead of spawning a real helper. It still presents the
// Proc contract: the copy "process" buffers stdin and commits the
// buffer on Wait; the paste "process" serves the clipboard bytes on
// its stdout.
type NativeBridge struct{}

// NewNativeBridge returns a bridge backed by the platform clipboard,
// or ErrNoBackend when no clipboard is reachable (e.g. headless hosts).
func NewNativeBridge() (*NativeBridge, error) {
	if clipboard.Unsupported {
		return nil, ErrNoBackend
	}
	return &NativeBridge{}, nil
}

// Copy returns a Proc that stores everything written to it on Wait.
func (b *NativeBridge) Copy() (Proc, error) {
	return &nativeCopyProc{}, nil
}

// Paste returns a Proc serving the current clipboard contents.
func (b *NativeBridge) Paste() (Proc, error) {
	s, err := clipboard.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("clipboard: read: %w", err)
	}
	return &nativePasteProc{r: bytes.NewReader([]byte(s))}, nil
}

type nativeCopyProc struct {
	buf    bytes.Buffer
	closed bool
	killed bool
}

func (p *nativeCopyProc) Stdin() io.WriteCloser { return (*nativeCopySink)(p) }
func (p *nativeCopyProc) Stdout() io.Reader     { return nil }

func (p *nativeCopyProc) Wait() error {
	if p.killed {
		return fmt.Errorf("clipboard: copy aborted")
	}
	return clipboard.WriteAll(p.buf.String())
}

func (p *nativeCopyProc) Kill() { p.killed = true }

// nativeCopySink gives the copy proc's buffer an io.WriteCloser face.
type nativeCopySink nativeCopyProc

func (s *nativeCopySink) Write(b []byte) (int, error) {
	if s.closed {
		return 0, io.ErrClosedPipe
	}
	return s.buf.Write(b)
}

func (s *nativeCopySink) Close() error {
	s.closed = true
	return nil
}

type nativePasteProc struct {
	r *bytes.Reader
}

func (p *nativePasteProc) Stdin() io.WriteCloser { return nil }
func (p *nativePasteProc) Stdout() io.Reader     { return p.r }
func (p *nativePasteProc) Wait() error           { return nil }
func (p *nativePasteProc) Kill()                 {}

var _ Bridge = (*NativeBridge)(nil)
