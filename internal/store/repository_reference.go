package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/beichen-observer/internal/logger"
	"github.com/MKhiriev/beichen-observer/models"
	"github.com/jackc/pgerrcode"
)

// referenceRepository stores campuses and classes in PostgreSQL.
type referenceRepository struct {
	db     *DB
	ids    IDGenerator
	logger *logger.Logger
}

// NewReferenceRepository constructs a [ReferenceRepository].
func NewReferenceRepository(db *DB, ids IDGenerator, logger *logger.Logger) ReferenceRepository {
	logger.Debug().Msg("creating reference repository")
	return &referenceRepository{db: db, ids: ids, logger: logger}
}

func (r *referenceRepository) CreateCampus(ctx context.Context, campus models.ReferenceEntity) (models.ReferenceEntity, error) {
	if campus.ID.IsZero() {
		campus.ID = models.ID(r.ids.Generate())
	}

	query, args, err := buildInsertCampusQuery(ctx, campus)
	if err != nil {
		return models.ReferenceEntity{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var created models.ReferenceEntity
	err = r.db.QueryRowContext(ctx, query, args...).Scan(idTarget{&created.ID}, &created.Name, &created.CreatedAt)
	if err != nil {
		return models.ReferenceEntity{}, r.insertError(ctx, "*referenceRepository.CreateCampus", err)
	}

	return created, nil
}

func (r *referenceRepository) ListCampuses(ctx context.Context) ([]models.ReferenceEntity, error) {
	query, args, err := buildListCampusesQuery(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.list(ctx, "*referenceRepository.ListCampuses", query, args, func(row rowScanner, e *models.ReferenceEntity) error {
		return row.Scan(idTarget{&e.ID}, &e.Name, &e.CreatedAt)
	})
}

func (r *referenceRepository) CreateClass(ctx context.Context, class models.ReferenceEntity) (models.ReferenceEntity, error) {
	if class.ID.IsZero() {
		class.ID = models.ID(r.ids.Generate())
	}

	query, args, err := buildInsertClassQuery(ctx, class)
	if err != nil {
		return models.ReferenceEntity{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var created models.ReferenceEntity
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(idTarget{&created.ID}, &created.Name, textTarget{&created.CampusID}, &created.CreatedAt)
	if err != nil {
		return models.ReferenceEntity{}, r.insertError(ctx, "*referenceRepository.CreateClass", err)
	}

	return created, nil
}

func (r *referenceRepository) ListClasses(ctx context.Context, campusID string) ([]models.ReferenceEntity, error) {
	query, args, err := buildListClassesQuery(ctx, campusID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.list(ctx, "*referenceRepository.ListClasses", query, args, func(row rowScanner, e *models.ReferenceEntity) error {
		return row.Scan(idTarget{&e.ID}, &e.Name, textTarget{&e.CampusID}, &e.CreatedAt)
	})
}

func (r *referenceRepository) insertError(ctx context.Context, fn string, err error) error {
	logger.FromContext(ctx).Err(err).Str("func", fn).Msg("error inserting reference entity")
	if postgresError(err) == pgerrcode.UniqueViolation {
		return ErrReferenceAlreadyExists
	}
	return r.db.wrap(ErrExecutingStatement, err)
}

func (r *referenceRepository) list(ctx context.Context, fn, query string, args []any, scan func(rowScanner, *models.ReferenceEntity) error) ([]models.ReferenceEntity, error) {
	log := logger.FromContext(ctx)

	var entities []models.ReferenceEntity
	err := r.db.withRetry(ctx, func() error {
		rows, err := r.db.QueryContext(ctx, query, args...)
		if err != nil {
			return r.db.wrap(ErrExecutingQuery, err)
		}
		defer rows.Close()

		entities = make([]models.ReferenceEntity, 0)
		for rows.Next() {
			var e models.ReferenceEntity
			if err := scan(rows, &e); err != nil {
				return fmt.Errorf("%w: %w", ErrScanningRows, err)
			}
			entities = append(entities, e)
		}
		if err := rows.Err(); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", fn).Msg("error listing reference entities")
		return nil, err
	}

	return entities, nil
}
