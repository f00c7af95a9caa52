// internal/core/clipboard/select.go
package clipboard

import (
	"fmt"

	"github.com/keeledit/keel/internal/config"
)

// FromConfig builds a Bridge from the clipboard configuration.
//
// "exec" uses the configured helper commands, falling back to PATH
// detection when none are configured. "native" uses the platform
// clipboard library. "auto" prefers exec helpers and falls back to the
// native library.
func FromConfig(cfg config.ClipboardConfig) (Bridge, error) {
	switch cfg.Backend {
	case "exec":
		if len(cfg.CopyCommand) > 0 && len(cfg.PasteCommand) > 0 {
			return &ExecBridge{CopyCommand: cfg.CopyCommand, PasteCommand: cfg.PasteCommand}, nil
		}
		return DetectExecBridge()
	case "native":
		return NewNativeBridge()
	case "auto", "":
		if len(cfg.CopyCommand) > 0 && len(cfg.PasteCommand) > 0 {
			return &ExecBridge{CopyCommand: cfg.CopyCommand, PasteCommand: cfg.PasteCommand}, nil
		}
		if b, err := DetectExecBridge(); err == nil {
			return b, nil
		}
		return NewNativeBridge()
	default:
		return nil, fmt.Errorf("clipboard: unknown backend %q", cfg.Backend)
	}
}
