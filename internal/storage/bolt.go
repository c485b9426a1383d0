package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	bolt "go.etcd.io/bbolt"
)

const boltBucket = "snapshots"

// BoltStorage keeps the snapshot in an embedded bbolt database under a fixed
// bucket and key. bbolt gives us the complete-or-fail write contract for
// free through its transactions.
type BoltStorage struct {
	db *bolt.DB
}

func NewBoltStorage(dbPath string) (*BoltStorage, error) {
	if dir := filepath.Dir(dbPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := bolt.Open(dbPath, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("open bolt database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(boltBucket))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create bucket %s: %w", boltBucket, err)
	}

	return &BoltStorage{db: db}, nil
}

func (s *BoltStorage) ReadSnapshot(_ context.Context) ([]byte, error) {
	var out []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(boltBucket))
		if b == nil {
			return fmt.Errorf("bucket %s not found", boltBucket)
		}
		data := b.Get([]byte(SnapshotKey))
		if data == nil {
			return ErrNoSnapshot
		}
		out = make([]byte, len(data))
		copy(out, data)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *BoltStorage) WriteSnapshot(_ context.Context, data []byte) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(boltBucket))
		if b == nil {
			return fmt.Errorf("bucket %s not found", boltBucket)
		}
		return b.Put([]byte(SnapshotKey), data)
	})
}

func (s *BoltStorage) Close() error {
	return s.db.Close()
}

var _ SnapshotStorage = (*BoltStorage)(nil)
