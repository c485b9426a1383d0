package storage

import (
	"context"
	"errors"
)

// SnapshotKey is the fixed key the whole ledger blob lives under, whatever
// the backend.
const SnapshotKey = "ledger"

// ErrNoSnapshot is returned by ReadSnapshot when nothing has been persisted
// yet. Callers treat it as "start from an empty ledger".
var ErrNoSnapshot = errors.New("no snapshot stored")

// SnapshotStorage persists the ledger as one opaque blob under SnapshotKey.
// Implementations must make WriteSnapshot complete-or-fail: a failed write
// may not leave a previous snapshot half overwritten.
type SnapshotStorage interface {
	ReadSnapshot(ctx context.Context) ([]byte, error)
	WriteSnapshot(ctx context.Context, data []byte) error
	Close() error
}
