package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// FileBackend keeps one JSON document per collection key in a directory.
// It is the default backend: no external services, survives restarts on
// the same machine.
type FileBackend struct {
	dir string
}

// NewFileBackend creates the directory if needed.
func NewFileBackend(dir string) (*FileBackend, error) {
	if err := os.MkdirAll(dir, 0775); err != nil {
		return nil, fmt.Errorf("failed to create store directory %s: %w", dir, err)
	}
	return &FileBackend{dir: dir}, nil
}

func (fb *FileBackend) path(key string) string {
	return filepath.Join(fb.dir, key+".json")
}

func (fb *FileBackend) Get(_ context.Context, key string) ([]byte, error) {
	doc, err := os.ReadFile(fb.path(key))
	if os.IsNotExist(err) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// Put writes through a temp file and renames, so a crash mid-write never
// leaves a truncated document behind.
func (fb *FileBackend) Put(_ context.Context, key string, doc []byte) error {
	tmp, err := os.CreateTemp(fb.dir, key+".*.tmp")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(doc); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), fb.path(key))
}
