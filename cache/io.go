package cache

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/shardkeeper/filekv/internal/codec"
	"github.com/shardkeeper/filekv/internal/guard"
)

// Backend is the injectable I/O primitive set a worker performs jobs
// through. The default is fsBackend, the real filesystem. Tests
// substitute a backend that panics on a configured trigger to exercise
// worker-death handling without needing to kill a real OS thread.
type Backend interface {
	// Read returns the decoded value at path. A missing file, a
	// corrupt file, and an expired file all report found=false with a
	// nil error — they are indistinguishable misses.
	Read(path string, now time.Time) (value []byte, found bool, err error)

	// Write encodes value with ttl (relative to now) and atomically
	// replaces the file at path, creating dir first if absent.
	Write(dir, path string, value []byte, ttl time.Duration, now time.Time) error

	// Remove deletes path if present; a missing file is not an error.
	Remove(path string) error

	// ScanShard lists the absolute paths of every file directly inside
	// dir. A missing dir reports an empty slice, not an error.
	ScanShard(dir string) ([]string, error)

	// Clear removes every entry under root except the process guard's
	// lock file, and recreates root if it is missing.
	Clear(root string) error
}

// fsBackend is the default Backend: the real filesystem, using
// temp-file-then-rename for atomic replace.
type fsBackend struct{}

// NewFSBackend returns the default filesystem-backed Backend.
func NewFSBackend() Backend { return fsBackend{} }

func (fsBackend) Read(path string, now time.Time) ([]byte, bool, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("keeper: read %s: %w", path, err)
	}
	value, status := codec.Decode(buf, now)
	if status != codec.OK {
		return nil, false, nil
	}
	return value, true, nil
}

func (fsBackend) Write(dir, path string, value []byte, ttl time.Duration, now time.Time) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("keeper: mkdir %s: %w", dir, err)
	}
	tmp := filepath.Join(dir, ".tmp-"+uuid.NewString())
	encoded := codec.Encode(value, ttl, now)
	if err := os.WriteFile(tmp, encoded, 0o644); err != nil {
		return fmt.Errorf("keeper: write temp %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("keeper: rename %s -> %s: %w", tmp, path, err)
	}
	return nil
}

func (fsBackend) Remove(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("keeper: remove %s: %w", path, err)
	}
	return nil
}

func (fsBackend) ScanShard(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("keeper: readdir %s: %w", dir, err)
	}
	paths := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	return paths, nil
}

func (fsBackend) Clear(root string) error {
	entries, err := os.ReadDir(root)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("keeper: clear %s: %w", root, err)
	}
	for _, e := range entries {
		if e.Name() == guard.FileName {
			continue
		}
		if err := os.RemoveAll(filepath.Join(root, e.Name())); err != nil {
			return fmt.Errorf("keeper: clear %s: %w", root, err)
		}
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return fmt.Errorf("keeper: recreate %s: %w", root, err)
	}
	return nil
}
