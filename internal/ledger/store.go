// Package ledger implements the data-management core: the single owner of
// the movement list and its derived balances, backed by a SnapshotStorage
// that holds the whole dataset as one blob.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"movimenti/internal/core"
	applog "movimenti/internal/log"
	"movimenti/internal/snapshot"
	"movimenti/internal/storage"
)

// Ledger is the aggregate the store hands out: movements in insertion order
// plus the current balances snapshot. Returned values are copies; all
// mutation goes through the store.
type Ledger struct {
	Movements []core.Movement
	Balances  core.Balances
}

// Store is the sole authority over movement records and derived balances,
// and the sole writer of persisted state.
type Store struct {
	mu      sync.Mutex
	storage storage.SnapshotStorage
	logger  *applog.Logger

	movements []core.Movement
	balances  core.Balances

	// overridable in tests
	now   func() core.Date
	newID func() string
}

func NewStore(st storage.SnapshotStorage, logger *applog.Logger) *Store {
	if logger == nil {
		logger = applog.New(applog.DefaultConfig())
	}
	return &Store{
		storage: st,
		logger:  logger.WithComponent(applog.ComponentLedger),
		now:     core.Today,
		newID:   uuid.NewString,
	}
}

// Load reads the persisted blob into the store. A missing or unparsable
// snapshot degrades to the empty ledger; Load never surfaces an error to the
// caller. Balances are recomputed from the loaded movement list.
func (s *Store) Load(ctx context.Context) Ledger {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.storage.ReadSnapshot(ctx)
	if err != nil {
		if !errors.Is(err, storage.ErrNoSnapshot) {
			s.logger.WarnContext(ctx, "Snapshot unreadable, starting empty", applog.FieldError, err.Error())
		}
		s.movements = nil
		s.balances = core.ComputeBalances(nil)
		return s.currentLocked()
	}

	snap, err := snapshot.Decode(data)
	if err != nil {
		s.logger.WarnContext(ctx, "Snapshot corrupt, starting empty", applog.FieldError, err.Error())
		s.movements = nil
		s.balances = core.ComputeBalances(nil)
		return s.currentLocked()
	}

	s.movements = snap.Movements
	s.balances = core.ComputeBalances(s.movements)
	s.logger.InfoContext(ctx, "Ledger loaded", applog.FieldCount, len(s.movements))
	return s.currentLocked()
}

// Current returns a copy of the in-memory ledger without touching storage.
func (s *Store) Current() Ledger {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentLocked()
}

// Save persists the current ledger, then recomputes balances from the
// movement list, so the in-memory balances are always consistent with the
// just-persisted movements.
func (s *Store) Save(ctx context.Context) (Ledger, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.persistLocked(ctx, s.movements); err != nil {
		return s.currentLocked(), err
	}
	return s.currentLocked(), nil
}

// Add assigns a fresh id and a default date to the draft, appends it,
// persists and returns the updated ledger.
func (s *Store) Add(ctx context.Context, draft core.Draft) (Ledger, error) {
	if err := draft.Validate(); err != nil {
		return s.Current(), err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	m := draft.Movement(s.newID(), s.now())
	next := append(s.copyMovementsLocked(), m)
	if err := s.persistLocked(ctx, next); err != nil {
		return s.currentLocked(), err
	}

	s.logger.InfoContext(ctx, "Movement added",
		applog.FieldMovementID, m.ID,
		applog.FieldSubject, m.Subject,
		applog.FieldKind, string(m.Kind),
		applog.FieldAmount, m.Amount.String(),
		applog.FieldDate, string(m.Date))
	return s.currentLocked(), nil
}

// Remove drops the movement with the given id. An unknown id is a silent
// no-op, not an error; the snapshot is persisted either way.
func (s *Store) Remove(ctx context.Context, id string) (Ledger, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]core.Movement, 0, len(s.movements))
	removed := false
	for _, m := range s.movements {
		if m.ID == id {
			removed = true
			continue
		}
		next = append(next, m)
	}

	if err := s.persistLocked(ctx, next); err != nil {
		return s.currentLocked(), err
	}
	if removed {
		s.logger.InfoContext(ctx, "Movement removed", applog.FieldMovementID, id)
	} else {
		s.logger.DebugContext(ctx, "Remove of unknown movement ignored", applog.FieldMovementID, id)
	}
	return s.currentLocked(), nil
}

// Update replaces every field of the movement with the given id from the
// draft, preserving the id itself. An unknown id returns the ledger
// unchanged with no error; callers that care must re-read and compare.
func (s *Store) Update(ctx context.Context, id string, draft core.Draft) (Ledger, error) {
	if err := draft.Validate(); err != nil {
		return s.Current(), err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, m := range s.movements {
		if m.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.logger.DebugContext(ctx, "Update of unknown movement ignored", applog.FieldMovementID, id)
		return s.currentLocked(), nil
	}

	next := s.copyMovementsLocked()
	next[idx] = draft.Movement(id, s.now())
	if err := s.persistLocked(ctx, next); err != nil {
		return s.currentLocked(), err
	}

	s.logger.InfoContext(ctx, "Movement updated", applog.FieldMovementID, id)
	return s.currentLocked(), nil
}

// Export serializes the whole ledger for download, pretty-printed, together
// with the dated file name to offer the user.
func (s *Store) Export(enc snapshot.Encoder) ([]byte, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := enc.Encode(snapshot.Snapshot{Movements: s.copyMovementsLocked(), Balances: s.balances})
	if err != nil {
		return nil, "", fmt.Errorf("encode export: %w", err)
	}
	return data, snapshot.ExportFileName(enc, time.Now()), nil
}

// Import replaces the entire ledger with the parsed snapshot and persists
// it. This is all-or-nothing: a parse failure (or a failed write) leaves the
// existing state untouched and returns the error.
func (s *Store) Import(ctx context.Context, data []byte) (Ledger, error) {
	snap, err := snapshot.Decode(data)
	if err != nil {
		return s.Current(), err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.persistLocked(ctx, snap.Movements); err != nil {
		return s.currentLocked(), err
	}
	s.logger.InfoContext(ctx, "Ledger replaced by import", applog.FieldCount, len(snap.Movements))
	return s.currentLocked(), nil
}

// persistLocked writes the snapshot for the given movement list and commits
// it on success. The blob carries the balances as they were before this
// mutation; balances are recomputed right after the write, which keeps the
// in-memory view consistent with the just-persisted movements.
func (s *Store) persistLocked(ctx context.Context, movements []core.Movement) error {
	data, err := snapshot.JSONEncoder{}.Encode(snapshot.Snapshot{Movements: movements, Balances: s.balances})
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := s.storage.WriteSnapshot(ctx, data); err != nil {
		return fmt.Errorf("persist snapshot: %w", err)
	}
	s.movements = movements
	s.balances = core.ComputeBalances(movements)
	return nil
}

func (s *Store) copyMovementsLocked() []core.Movement {
	out := make([]core.Movement, len(s.movements))
	copy(out, s.movements)
	return out
}

func (s *Store) currentLocked() Ledger {
	return Ledger{Movements: s.copyMovementsLocked(), Balances: s.balances}
}
