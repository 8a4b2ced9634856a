// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/beichen-observer/internal/logger"
)

// TokenKey is the key under which the bearer token is persisted.
const TokenKey = "beichen_auth_token"

const (
	createKVTable = `CREATE TABLE IF NOT EXISTS kv (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);`
	selectKV = `SELECT value FROM kv WHERE key = ?;`
	upsertKV = `INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value;`
	deleteKV = `DELETE FROM kv WHERE key = ?;`
)

// sqliteTokenStore persists the token in a SQLite key/value table.
type sqliteTokenStore struct {
	db *DB
}

// NewSQLiteTokenStore prepares the key/value table on db.
func NewSQLiteTokenStore(ctx context.Context, db *DB) (TokenStore, error) {
	if _, err := db.ExecContext(ctx, createKVTable); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return &sqliteTokenStore{db: db}, nil
}

func (s *sqliteTokenStore) Get(ctx context.Context) (string, bool, error) {
	var token string
	err := s.db.QueryRowContext(ctx, selectKV, TokenKey).Scan(&token)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*sqliteTokenStore.Get").Msg("error reading token")
		return "", false, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return token, token != "", nil
}

func (s *sqliteTokenStore) Set(ctx context.Context, token string) error {
	if _, err := s.db.ExecContext(ctx, upsertKV, TokenKey, token); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*sqliteTokenStore.Set").Msg("error saving token")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (s *sqliteTokenStore) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, deleteKV, TokenKey); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*sqliteTokenStore.Clear").Msg("error clearing token")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (s *sqliteTokenStore) IsPresent(ctx context.Context) bool {
	_, ok, err := s.Get(ctx)
	return err == nil && ok
}

// memoryTokenStore keeps the token for the lifetime of the process.
type memoryTokenStore struct {
	mu    sync.RWMutex
	token string
}

// NewMemoryTokenStore returns an empty in-memory [TokenStore].
func NewMemoryTokenStore() TokenStore {
	return &memoryTokenStore{}
}

func (s *memoryTokenStore) Get(ctx context.Context) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, s.token != "", nil
}

func (s *memoryTokenStore) Set(ctx context.Context, token string) error {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
	return nil
}

func (s *memoryTokenStore) Clear(ctx context.Context) error {
	return s.Set(ctx, "")
}

func (s *memoryTokenStore) IsPresent(ctx context.Context) bool {
	_, ok, _ := s.Get(ctx)
	return ok
}
