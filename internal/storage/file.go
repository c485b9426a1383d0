package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// FileStorage keeps the snapshot in a single JSON file, the direct analogue
// of the original data.json. Writes go through a temp file plus rename so a
// crash mid-write cannot corrupt the previous snapshot.
type FileStorage struct {
	path string
}

func NewFileStorage(path string) (*FileStorage, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create snapshot directory: %w", err)
		}
	}
	return &FileStorage{path: path}, nil
}

func (s *FileStorage) ReadSnapshot(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, ErrNoSnapshot
	}
	if err != nil {
		return nil, fmt.Errorf("read snapshot file: %w", err)
	}
	if len(data) == 0 {
		return nil, ErrNoSnapshot
	}
	return data, nil
}

func (s *FileStorage) WriteSnapshot(_ context.Context, data []byte) error {
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("write snapshot file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace snapshot file: %w", err)
	}
	return nil
}

func (s *FileStorage) Close() error { return nil }

var _ SnapshotStorage = (*FileStorage)(nil)
