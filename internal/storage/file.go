package storage

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// FileBackend stores each record as a pretty-printed <key>.json file under a
// data directory. The directory is created if absent.
type FileBackend struct {
	dir string
}

// NewFileBackend creates a file backend rooted at dir.
func NewFileBackend(dir string) (*FileBackend, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	log.Printf("[FileBackend] Initialized with directory: %s", dir)
	return &FileBackend{dir: dir}, nil
}

func (f *FileBackend) path(key string) string {
	return filepath.Join(f.dir, key+".json")
}

// Read loads <key>.json from the data directory.
func (f *FileBackend) Read(ctx context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(f.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return data, nil
}

// Write replaces <key>.json. The document is written to a temp file first and
// renamed into place so a crash never leaves a half-written record.
func (f *FileBackend) Write(ctx context.Context, key string, value []byte) error {
	tmp := f.path(key) + ".tmp"
	if err := os.WriteFile(tmp, value, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	if err := os.Rename(tmp, f.path(key)); err != nil {
		return fmt.Errorf("failed to replace %s: %w", key, err)
	}
	return nil
}

// Name returns the tier name.
func (f *FileBackend) Name() string { return "file" }

// Close is a no-op for the file tier.
func (f *FileBackend) Close() error { return nil }

var _ Backend = (*FileBackend)(nil)
