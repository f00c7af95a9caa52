// internal/core/errors.go
package core

import "errors"

var (
	// ErrNoFile is returned by Save when the editor has no bound path.
	// Recoverable: bind a path and retry.
	ErrNoFile = errors.New("no file bound to editor")

	// ErrCopyFailed is returned by PasteClipboard when the paste helper
	// exits non-zero or is killed by a signal. The editor is unchanged.
	ErrCopyFailed = errors.New("clipboard helper failed")

	// ErrPasteTooLarge is returned by PasteClipboard when the helper
	// produces more than config.MaxPasteBytes. The editor is unchanged.
	ErrPasteTooLarge = errors.New("clipboard contents exceed paste limit")
)
