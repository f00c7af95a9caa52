//go:build unix

// internal/core/mmap_unix.go
package core

import (
	"os"

	"golang.org/x/sys/unix"
)

// readMapped maps path read-only and returns the mapped bytes. The
// caller copies what it needs and releases the mapping via
// releaseMapped; nothing long-lived may alias the returned slice.
// size must be non-zero (mapping a zero-length region is undefined on
// some platforms; callers special-case empty files).
func readMapped(path string, size int64) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	b, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_PRIVATE)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// releaseMapped unmaps a slice returned by readMapped.
func releaseMapped(b []byte) {
	_ = unix.Munmap(b)
}
