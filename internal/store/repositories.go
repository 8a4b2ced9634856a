package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/beichen-observer/internal/logger"
	"github.com/MKhiriev/beichen-observer/models"
)

// recordRepository is the PostgreSQL-backed implementation of
// [RecordRepository] for every record kind. The kind-specific part is the
// [recordSchema].
type recordRepository[T any] struct {
	db     *DB
	schema recordSchema[T]
	logger *logger.Logger
}

// NewObservationRepository returns the daily-observation repository.
func NewObservationRepository(db *DB, logger *logger.Logger) ObservationRepository {
	return newRecordRepository(db, observationSchema, logger)
}

// NewDutyReportRepository returns the duty-report repository.
func NewDutyReportRepository(db *DB, logger *logger.Logger) DutyReportRepository {
	return newRecordRepository(db, dutyReportSchema, logger)
}

func newRecordRepository[T any](db *DB, schema recordSchema[T], logger *logger.Logger) *recordRepository[T] {
	logger.Debug().Str("table", schema.table).Msg("creating record repository")
	return &recordRepository[T]{db: db, schema: schema, logger: logger}
}

func (r *recordRepository[T]) Create(ctx context.Context, record T) (models.ID, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertRecordQuery(ctx, r.schema, record)
	if err != nil {
		log.Err(err).Str("func", "*recordRepository.Create").Str("table", r.schema.table).Msg("error building insert query")
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var id models.ID
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(idTarget{&id}); err != nil {
		log.Err(err).Str("func", "*recordRepository.Create").Str("table", r.schema.table).Msg("error inserting record")
		return "", r.db.wrap(ErrExecutingStatement, err)
	}

	log.Debug().Str("func", "*recordRepository.Create").Str("kind", r.schema.name).Str("id", id.String()).Msg("record created")
	return id, nil
}

func (r *recordRepository[T]) List(ctx context.Context) ([]T, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectRecordsQuery(ctx, r.schema)
	if err != nil {
		log.Err(err).Str("func", "*recordRepository.List").Msg("error building select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var records []T
	err = r.db.withRetry(ctx, func() error {
		rows, err := r.db.QueryContext(ctx, query, args...)
		if err != nil {
			return r.db.wrap(ErrExecutingQuery, err)
		}
		defer rows.Close()

		records = make([]T, 0)
		for rows.Next() {
			record, err := r.scan(ctx, rows)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrScanningRows, err)
			}
			records = append(records, record)
		}

		if err := rows.Err(); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*recordRepository.List").Str("table", r.schema.table).Msg("error listing records")
		return nil, err
	}

	return records, nil
}

func (r *recordRepository[T]) Get(ctx context.Context, id models.ID) (T, error) {
	log := logger.FromContext(ctx)
	var zero T

	key, err := parseRecordID(id)
	if err != nil {
		return zero, err
	}

	query, args, err := buildSelectRecordQuery(ctx, r.schema, key)
	if err != nil {
		log.Err(err).Str("func", "*recordRepository.Get").Msg("error building select query")
		return zero, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var record T
	err = r.db.withRetry(ctx, func() error {
		var scanErr error
		record, scanErr = r.scan(ctx, r.db.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	if errors.Is(err, sql.ErrNoRows) {
		return zero, ErrRecordNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*recordRepository.Get").Str("table", r.schema.table).Msg("error getting record")
		return zero, r.db.wrap(ErrScanningRow, err)
	}

	return record, nil
}

func (r *recordRepository[T]) Update(ctx context.Context, id models.ID, record T) (models.ID, error) {
	log := logger.FromContext(ctx)

	key, err := parseRecordID(id)
	if err != nil {
		return "", err
	}

	query, args, err := buildUpdateRecordQuery(ctx, r.schema, key, record)
	if err != nil {
		log.Err(err).Str("func", "*recordRepository.Update").Msg("error building update query")
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var updated models.ID
	err = r.db.QueryRowContext(ctx, query, args...).Scan(idTarget{&updated})
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrRecordNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*recordRepository.Update").Str("table", r.schema.table).Msg("error updating record")
		return "", r.db.wrap(ErrExecutingStatement, err)
	}

	return updated, nil
}

func (r *recordRepository[T]) Delete(ctx context.Context, id models.ID) error {
	log := logger.FromContext(ctx)

	key, err := parseRecordID(id)
	if err != nil {
		return err
	}

	query, args, err := buildDeleteRecordQuery(ctx, r.schema, key)
	if err != nil {
		log.Err(err).Str("func", "*recordRepository.Delete").Msg("error building delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*recordRepository.Delete").Str("table", r.schema.table).Msg("error deleting record")
		return r.db.wrap(ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrRecordNotFound
	}

	return nil
}

func (r *recordRepository[T]) DeleteAll(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteAllRecordsQuery(ctx, r.schema)
	if err != nil {
		log.Err(err).Str("func", "*recordRepository.DeleteAll").Msg("error building delete query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*recordRepository.DeleteAll").Str("table", r.schema.table).Msg("error deleting records")
		return 0, r.db.wrap(ErrExecutingStatement, err)
	}

	count, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	log.Info().Str("func", "*recordRepository.DeleteAll").Str("table", r.schema.table).Int64("count", count).Msg("records deleted")
	return count, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scan reads one row. A timeline that cannot be decoded is logged and kept
// verbatim so one bad row never breaks a listing.
func (r *recordRepository[T]) scan(ctx context.Context, row rowScanner) (T, error) {
	var record T
	var rawTimeline []byte

	if err := row.Scan(r.schema.targets(&record, &rawTimeline)...); err != nil {
		return record, err
	}

	timeline, err := models.ParseTimeline(rawTimeline)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "*recordRepository.scan").
			Str("table", r.schema.table).
			Msg("timeline is not a list of events, returning it unparsed")
	}
	r.schema.setTimeline(&record, timeline)

	return record, nil
}
