package cache

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFSBackend_WriteReadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "entry")
	backend := NewFSBackend()
	now := time.Now()

	if err := backend.Write(dir, path, []byte("value"), time.Minute, now); err != nil {
		t.Fatalf("Write: %v", err)
	}
	value, found, err := backend.Read(path, now)
	if err != nil || !found {
		t.Fatalf("Read: err=%v found=%v", err, found)
	}
	if string(value) != "value" {
		t.Fatalf("value = %q, want %q", value, "value")
	}
}

func TestFSBackend_ReadMissingIsMiss(t *testing.T) {
	dir := t.TempDir()
	backend := NewFSBackend()
	_, found, err := backend.Read(filepath.Join(dir, "nope"), time.Now())
	if err != nil || found {
		t.Fatalf("Read missing: err=%v found=%v", err, found)
	}
}

func TestFSBackend_WriteLeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "entry")
	backend := NewFSBackend()
	if err := backend.Write(dir, path, []byte("v"), 0, time.Now()); err != nil {
		t.Fatalf("Write: %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "entry" {
		t.Fatalf("directory contents = %v, want only the final file", entries)
	}
}

func TestFSBackend_RemoveMissingIsNotError(t *testing.T) {
	dir := t.TempDir()
	backend := NewFSBackend()
	if err := backend.Remove(filepath.Join(dir, "nope")); err != nil {
		t.Fatalf("Remove missing: %v", err)
	}
}

func TestFSBackend_ClearRecreatesRootEmpty(t *testing.T) {
	dir := t.TempDir()
	backend := NewFSBackend()
	sub := filepath.Join(dir, "000")
	if err := backend.Write(sub, filepath.Join(sub, "entry"), []byte("v"), 0, time.Now()); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := backend.Clear(dir); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("root not empty after Clear: %v", entries)
	}
}

func TestFSBackend_ScanShardOnMissingDir(t *testing.T) {
	dir := t.TempDir()
	backend := NewFSBackend()
	paths, err := backend.ScanShard(filepath.Join(dir, "absent"))
	if err != nil {
		t.Fatalf("ScanShard on missing dir: %v", err)
	}
	if len(paths) != 0 {
		t.Fatalf("paths = %v, want empty", paths)
	}
}
