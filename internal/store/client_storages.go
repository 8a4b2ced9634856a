package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/beichen-observer/internal/config"
	"github.com/MKhiriev/beichen-observer/internal/logger"
)

// ClientStorages groups the client-side storage. The token store is the only
// state the client keeps between runs.
type ClientStorages struct {
	TokenStore TokenStore

	db *DB
}

// NewClientStorages opens the SQLite file named by cfg.TokenDSN and prepares
// the token store. The special DSN ":memory:" selects an in-memory store.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Debug().Msg("creating client storages...")

	if cfg.TokenDSN == ":memory:" {
		return &ClientStorages{TokenStore: NewMemoryTokenStore()}, nil
	}

	db, err := NewConnectSQLite(ctx, cfg.TokenDSN, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	tokens, err := NewSQLiteTokenStore(ctx, db)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("token store initialization failed: %w", err)
	}

	return &ClientStorages{TokenStore: tokens, db: db}, nil
}

// Close releases the SQLite connection, if any.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
