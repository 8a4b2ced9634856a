package store

import (
	"context"

	"github.com/MKhiriev/beichen-observer/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// RecordRepository persists one kind of record. Record ids are the integer
// keys of the table; an id that is not an integer is reported as
// [ErrRecordNotFound].
type RecordRepository[T any] interface {
	Create(ctx context.Context, record T) (models.ID, error)
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id models.ID) (T, error)
	Update(ctx context.Context, id models.ID, record T) (models.ID, error)
	Delete(ctx context.Context, id models.ID) error
	DeleteAll(ctx context.Context) (int64, error)
}

// ObservationRepository stores daily observations.
type ObservationRepository = RecordRepository[models.Observation]

// DutyReportRepository stores duty reports.
type DutyReportRepository = RecordRepository[models.DutyReport]

// UserRepository stores staff accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	UpsertUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	ListUsers(ctx context.Context, filter models.UserFilter) ([]models.User, int, error)
}

// ReferenceRepository stores campuses and classes.
type ReferenceRepository interface {
	CreateCampus(ctx context.Context, campus models.ReferenceEntity) (models.ReferenceEntity, error)
	ListCampuses(ctx context.Context) ([]models.ReferenceEntity, error)
	CreateClass(ctx context.Context, class models.ReferenceEntity) (models.ReferenceEntity, error)
	ListClasses(ctx context.Context, campusID string) ([]models.ReferenceEntity, error)
}

// ErrorClassificator decides how a failed database operation is handled.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// IDGenerator issues identifiers for reference entities.
type IDGenerator interface {
	Generate() string
}
