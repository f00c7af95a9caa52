//go:build !unix

// internal/core/mmap_other.go
package core

import "os"

// readMapped falls back to a plain read on platforms without the unix
// mmap surface. The contract matches the unix version: callers copy the
// bytes and call releaseMapped when done.
func readMapped(path string, size int64) ([]byte, error) {
	return os.ReadFile(path)
}

func releaseMapped(b []byte) {}
