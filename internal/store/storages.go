package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/beichen-observer/internal/config"
	"github.com/MKhiriev/beichen-observer/internal/logger"
	"github.com/MKhiriev/beichen-observer/internal/utils"
)

// Storages groups the server-side repositories around one connection pool.
type Storages struct {
	Observations ObservationRepository
	DutyReports  DutyReportRepository
	References   ReferenceRepository
	Users        UserRepository

	db *DB
}

// NewStorages connects to PostgreSQL, applies migrations and builds every
// repository.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return NewStoragesFromDB(db, utils.NewUUIDGenerator(), logger), nil
}

// NewStoragesFromDB builds every repository on an open connection.
func NewStoragesFromDB(db *DB, ids IDGenerator, logger *logger.Logger) *Storages {
	return &Storages{
		Observations: NewObservationRepository(db, logger),
		DutyReports:  NewDutyReportRepository(db, logger),
		References:   NewReferenceRepository(db, ids, logger),
		Users:        NewUserRepository(db, ids, logger),
		db:           db,
	}
}

// Ping checks the database connection.
func (s *Storages) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close releases the connection pool.
func (s *Storages) Close() error {
	return s.db.Close()
}
