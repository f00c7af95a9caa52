// internal/core/file.go
package core

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/keeledit/keel/internal/core/history"
	"github.com/keeledit/keel/internal/logger"
	"github.com/keeledit/keel/internal/text"
)

// DiskStat is the file metadata captured when a file was last read or
// written. The core itself never compares it again; it is exposed for
// an external change detector ("has the file changed under us?").
type DiskStat struct {
	Size    int64
	ModTime time.Time
}

// FileBinding associates an editor with a backing path. A nil Stat
// means the path did not exist when the editor was created: a normal
// "new file" state, not an error.
type FileBinding struct {
	Path string
	Stat *DiskStat
}

func captureStat(fi os.FileInfo) *DiskStat {
	return &DiskStat{Size: fi.Size(), ModTime: fi.ModTime()}
}

// FromFile creates an editor over the contents of path.
//
// A missing file yields an editor with empty content bound to the path
// with no captured metadata. An existing zero-size file also yields
// empty content but records metadata; the mapping step is skipped since
// mapping a zero-length region is unsupported on some platforms.
// Otherwise the file is mapped read-only, its bytes copied into the
// owned snapshot, and the mapping released before returning. Any I/O
// error other than "not found" is fatal to the load.
func FromFile(path string) (Editor, error) {
	fi, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Debugf("core: %s does not exist, starting empty", path)
			e := FromString("")
			e.file = &FileBinding{Path: path}
			return e, nil
		}
		return Editor{}, fmt.Errorf("stat %q: %w", path, err)
	}

	var snap text.Snapshot
	if fi.Size() == 0 {
		snap = text.FromString("")
	} else {
		b, err := readMapped(path, fi.Size())
		if err != nil {
			return Editor{}, fmt.Errorf("read %q: %w", path, err)
		}
		snap = text.FromBytes(b)
		releaseMapped(b)
	}

	logger.Debugf("core: loaded %s (%d bytes)", path, fi.Size())
	return Editor{
		history: history.New(snap),
		file:    &FileBinding{Path: path, Stat: captureStat(fi)},
	}, nil
}

// File returns a copy of the editor's file binding, or nil when the
// editor has no backing path.
func (e Editor) File() *FileBinding {
	if e.file == nil {
		return nil
	}
	b := *e.file
	if e.file.Stat != nil {
		st := *e.file.Stat
		b.Stat = &st
	}
	return &b
}

// Save writes the current snapshot's content to the bound path and
// advances the on-disk baseline to the current position.
//
// A clean editor is returned unchanged without touching the file. An
// editor with no binding fails with ErrNoFile. The file is truncated
// to the new length (O_TRUNC) so shorter content never leaves stale
// trailing bytes behind. On success the captured metadata is refreshed
// to describe the bytes just written.
func (e Editor) Save() (Editor, error) {
	if !e.Dirty() {
		logger.Debugf("core: save skipped, not dirty")
		return e, nil
	}
	if e.file == nil {
		return e, ErrNoFile
	}

	f, err := os.OpenFile(e.file.Path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return e, fmt.Errorf("open %q for write: %w", e.file.Path, err)
	}

	w := bufio.NewWriter(f)
	if _, err := w.Write(e.Current().Content().Bytes()); err != nil {
		f.Close()
		return e, fmt.Errorf("write %q: %w", e.file.Path, err)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return e, fmt.Errorf("flush %q: %w", e.file.Path, err)
	}
	if err := f.Close(); err != nil {
		return e, fmt.Errorf("close %q: %w", e.file.Path, err)
	}

	binding := FileBinding{Path: e.file.Path}
	if fi, err := os.Stat(e.file.Path); err == nil {
		binding.Stat = captureStat(fi)
	}
	e.file = &binding
	e.diskPos = e.pos
	logger.Debugf("core: saved %s (%d bytes)", binding.Path, e.Current().Content().Len())
	return e, nil
}
