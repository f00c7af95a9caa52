// internal/core/clipboard/bridge.go
package clipboard

import "io"

// Proc is one spawned clipboard helper. A copy helper consumes bytes on
// Stdin and produces nothing; a paste helper produces bytes on Stdout
// and consumes nothing. Wait blocks until the helper finishes and
// returns nil only for a clean zero exit.
type Proc interface {
	// Stdin returns the helper's input sink. Nil for paste helpers.
	Stdin() io.WriteCloser
	// Stdout returns the helper's output source. Nil for copy helpers.
	Stdout() io.Reader
	// Wait blocks until the helper exits. A non-zero or signal-caused
	// exit is reported as a non-nil error.
	Wait() error
	// Kill terminates the helper. Best-effort cleanup for callers that
	// fail partway through the protocol.
	Kill()
}

// Bridge spawns clipboard helpers. The editor core only ever sees this
// byte-stream contract; whether a bridge shells out to an external tool
// or talks to the platform clipboard directly is its own business.
type Bridge interface {
	// Copy spawns a helper that stores everything written to its stdin.
	Copy() (Proc, error)
	// Paste spawns a helper that emits the clipboard on its stdout.
	Paste() (Proc, error)
}
