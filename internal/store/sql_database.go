package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/beichen-observer/internal/logger"
	"github.com/MKhiriev/beichen-observer/migrations"
)

// retryDelays are the pauses between attempts of a read query that failed
// with a transient error.
var retryDelays = []time.Duration{50 * time.Millisecond, 200 * time.Millisecond}

type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// wrap attaches sentinel to err, or [ErrInvalidRecord] when the database
// rejected the values themselves.
func (db *DB) wrap(sentinel, err error) error {
	if db.errorClassificator != nil && db.errorClassificator.Classify(err) == InvalidData {
		return fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}
	return fmt.Errorf("%w: %w", sentinel, err)
}

// withRetry runs a read operation, repeating it while it fails with an error
// classified as [Retryable].
func (db *DB) withRetry(ctx context.Context, op func() error) error {
	err := op()
	for _, delay := range retryDelays {
		if err == nil || db.errorClassificator == nil || db.errorClassificator.Classify(err) != Retryable {
			return err
		}

		logger.FromContext(ctx).Warn().Err(err).Dur("delay", delay).Msg("retrying query after transient error")
		select {
		case <-ctx.Done():
			return errors.Join(err, ctx.Err())
		case <-time.After(delay):
		}
		err = op()
	}
	return err
}
