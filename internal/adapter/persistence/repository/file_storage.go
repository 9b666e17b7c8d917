package repository

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"salesdesk/internal/usecase/interfaces"
)

const defaultStorageDir = "./data"

// FileStorage is the default storage adapter: one JSON file per key under a
// data directory. Writes go through a temp file plus rename so a crash never
// leaves a half-written collection behind.
type FileStorage struct {
	dir string
}

var _ interfaces.IStorageAdapter = (*FileStorage)(nil)

func NewFileStorage() (*FileStorage, error) {
	dir := getenvDefault("STORAGE_DIR", defaultStorageDir)
	return NewFileStorageAt(dir)
}

func NewFileStorageAt(dir string) (*FileStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}
	return &FileStorage{dir: dir}, nil
}

func (f *FileStorage) Get(_ context.Context, key string) ([]byte, error) {
	b, err := os.ReadFile(f.path(key))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (f *FileStorage) Set(_ context.Context, key string, value []byte) error {
	path := f.path(key)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, value, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

func (f *FileStorage) path(key string) string {
	return filepath.Join(f.dir, key+".json")
}
