// internal/core/clipboard/exec.go
package clipboard

import (
	"errors"
	"fmt"
	"io"
	"os/exec"

	"github.com/keeledit/keel/internal/logger"
)

// ErrNoBackend indicates no clipboard helper command could be found.
var ErrNoBackend = errors.New("clipboard: no helper command available")

// ExecBridge shells out to external clipboard utilities. CopyCommand
// receives the selection on stdin; PasteCommand emits the clipboard on
// stdout. Both are argv slices, command name first.
type ExecBridge struct {
	CopyCommand  []string
	PasteCommand []string
}

// candidate helper pairs, in preference order.
var execCandidates = []struct {
	copyCmd  []string
	pasteCmd []string
}{
	{[]string{"wl-copy"}, []string{"wl-paste", "--no-newline"}},
	{[]string{"xclip", "-selection", "clipboard", "-in"}, []string{"xclip", "-selection", "clipboard", "-out"}},
	{[]string{"xsel", "--clipboard", "--input"}, []string{"xsel", "--clipboard", "--output"}},
	{[]string{"pbcopy"}, []string{"pbpaste"}},
}

// DetectExecBridge probes PATH for a known clipboard utility pair and
// returns a bridge using the first one found.
func DetectExecBridge() (*ExecBridge, error) {
	for _, c := range execCandidates {
		if _, err := exec.LookPath(c.copyCmd[0]); err != nil {
			continue
		}
		if _, err := exec.LookPath(c.pasteCmd[0]); err != nil {
			continue
		}
		logger.Debugf("clipboard: using exec backend %q / %q", c.copyCmd[0], c.pasteCmd[0])
		return &ExecBridge{CopyCommand: c.copyCmd, PasteCommand: c.pasteCmd}, nil
	}
	return nil, ErrNoBackend
}

// Copy spawns the copy helper with its stdin piped.
func (b *ExecBridge) Copy() (Proc, error) {
	if len(b.CopyCommand) == 0 {
		return nil, ErrNoBackend
	}
	cmd := exec.Command(b.CopyCommand[0], b.CopyCommand[1:]...)
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("clipboard: pipe stdin for %q: %w", b.CopyCommand[0], err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("clipboard: start %q: %w", b.CopyCommand[0], err)
	}
	return &execProc{cmd: cmd, stdin: stdin}, nil
}

// Paste spawns the paste helper with its stdout piped.
func (b *ExecBridge) Paste() (Proc, error) {
	if len(b.PasteCommand) == 0 {
		return nil, ErrNoBackend
	}
	cmd := exec.Command(b.PasteCommand[0], b.PasteCommand[1:]...)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("clipboard: pipe stdout for %q: %w", b.PasteCommand[0], err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("clipboard: start %q: %w", b.PasteCommand[0], err)
	}
	return &execProc{cmd: cmd, stdout: stdout}, nil
}

// execProc wraps a started exec.Cmd as a Proc.
type execProc struct {
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	stdout io.Reader
}

func (p *execProc) Stdin() io.WriteCloser { return p.stdin }
func (p *execProc) Stdout() io.Reader     { return p.stdout }

func (p *execProc) Wait() error {
	return p.cmd.Wait()
}

func (p *execProc) Kill() {
	if p.cmd.Process != nil {
		_ = p.cmd.Process.Kill()
	}
}

var _ Bridge = (*ExecBridge)(nil)
