package backend

import (
	"fmt"

	applog "movimenti/internal/log"
	"movimenti/internal/storage"
)

// Factory creates snapshot storages based on configuration.
type Factory struct {
	logger *applog.Logger
}

func NewFactory(logger *applog.Logger) *Factory {
	if logger == nil {
		logger = applog.New(applog.DefaultConfig())
	}
	return &Factory{logger: logger.WithComponent(applog.ComponentBackend)}
}

// CreateStorage builds the SnapshotStorage for the configured backend. The
// caller owns the returned storage and must Close it.
func (f *Factory) CreateStorage(cfg Config) (storage.SnapshotStorage, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	switch cfg.Type {
	case FileBackend:
		st, err := storage.NewFileStorage(cfg.SnapshotFilePath)
		if err != nil {
			return nil, fmt.Errorf("initialize file storage: %w", err)
		}
		f.logger.Info("Initialized file storage", "path", cfg.SnapshotFilePath)
		return st, nil

	case BoltBackend:
		st, err := storage.NewBoltStorage(cfg.BoltDBPath)
		if err != nil {
			return nil, fmt.Errorf("initialize bolt storage: %w", err)
		}
		f.logger.Info("Initialized bolt storage", "path", cfg.BoltDBPath)
		return st, nil

	case SQLiteBackend:
		st, err := storage.NewSQLiteStorage(cfg.SQLiteDBPath)
		if err != nil {
			return nil, fmt.Errorf("initialize sqlite storage: %w", err)
		}
		f.logger.Info("Initialized sqlite storage", "path", cfg.SQLiteDBPath)
		return st, nil

	case MemoryBackend:
		f.logger.Info("Initialized memory storage")
		return storage.NewMemoryStorage(), nil

	default:
		return nil, fmt.Errorf("unsupported backend type: %s", cfg.Type)
	}
}
