// internal/core/clipboard.go
package core

import (
	"bufio"
	"fmt"
	"io"

	"github.com/keeledit/keel/internal/config"
	"github.com/keeledit/keel/internal/core/clipboard"
	"github.com/keeledit/keel/internal/logger"
)

// maxPasteBytes caps how much a paste helper may produce. Variable so
// tests can lower it; everything else treats it as a constant.
var maxPasteBytes = config.MaxPasteBytes

// CopyClipboard streams the current snapshot's cursor selections to a
// copy helper spawned from the bridge. Selections are written in cursor
// order, joined by single newline separators (no trailing separator),
// then the helper's stdin is closed and the helper awaited.
//
// The helper's exit status is deliberately not checked: a clipboard
// tool that fails to store the selection is a best-effort loss, not an
// editor error. Note the protocol is write-all-then-close on the
// caller's goroutine; a helper that refuses to drain its stdin until
// close could stall very large selections.
func (e Editor) CopyClipboard(b clipboard.Bridge) error {
	proc, err := b.Copy()
	if err != nil {
		return fmt.Errorf("spawn copy helper: %w", err)
	}

	snap := e.Current()
	w := bufio.NewWriter(proc.Stdin())
	for i, cur := range snap.Cursors() {
		if i > 0 {
			if err := w.WriteByte('\n'); err != nil {
				proc.Kill()
				return fmt.Errorf("write to copy helper: %w", err)
			}
		}
		if _, err := w.Write(snap.Content().Slice(cur.Start, cur.End)); err != nil {
			proc.Kill()
			return fmt.Errorf("write to copy helper: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		proc.Kill()
		return fmt.Errorf("flush to copy helper: %w", err)
	}
	if err := proc.Stdin().Close(); err != nil {
		proc.Kill()
		return fmt.Errorf("close copy helper input: %w", err)
	}

	// Best effort from here on.
	if err := proc.Wait(); err != nil {
		logger.Warnf("core: copy helper exited abnormally: %v", err)
	}
	return nil
}

// PasteClipboard spawns a paste helper, slurps its entire output up to
// config.MaxPasteBytes, and on a clean exit records the pasted content
// as a new history entry via AddUndo. On any failure — oversized
// output, read error, non-zero or signaled exit — the editor is
// returned unchanged.
func (e Editor) PasteClipboard(b clipboard.Bridge) (Editor, error) {
	proc, err := b.Paste()
	if err != nil {
		return e, fmt.Errorf("spawn paste helper: %w", err)
	}

	data, err := io.ReadAll(io.LimitReader(proc.Stdout(), maxPasteBytes+1))
	if err != nil {
		proc.Kill()
		_ = proc.Wait()
		return e, fmt.Errorf("read from paste helper: %w", err)
	}
	if int64(len(data)) > maxPasteBytes {
		proc.Kill()
		_ = proc.Wait()
		return e, ErrPasteTooLarge
	}

	if err := proc.Wait(); err != nil {
		return e, fmt.Errorf("%w: %v", ErrCopyFailed, err)
	}

	logger.Debugf("core: pasting %d bytes", len(data))
	return e.AddUndo(e.Current().Paste(data)), nil
}
