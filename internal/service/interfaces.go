package service

import (
	"context"

	"github.com/MKhiriev/beichen-observer/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// RecordService manages one kind of record. Ids that do not name an
// existing record yield store.ErrRecordNotFound.
type RecordService[T any] interface {
	Create(ctx context.Context, record T) (models.ID, error)
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id models.ID) (T, error)
	Update(ctx context.Context, id models.ID, record T) (models.ID, error)
	Delete(ctx context.Context, id models.ID) error
	DeleteAll(ctx context.Context) (int64, error)
}

type ObservationService = RecordService[models.Observation]

type DutyReportService = RecordService[models.DutyReport]

type AuthService interface {
	// Enabled reports whether bearer tokens are required.
	Enabled() bool
	Login(ctx context.Context, credentials models.Credentials) (models.LoginResponse, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	// EnsureAdmin upserts the configured administrator account, if any.
	EnsureAdmin(ctx context.Context) error
}

// ReferenceService serves the campuses, classes and staff accounts that
// records refer to.
type ReferenceService interface {
	ListCampuses(ctx context.Context) ([]models.ReferenceEntity, error)
	CreateCampus(ctx context.Context, request models.CreateCampusRequest) (models.ReferenceEntity, error)
	ListClasses(ctx context.Context, campusID string) ([]models.ReferenceEntity, error)
	CreateClass(ctx context.Context, request models.CreateClassRequest) (models.ReferenceEntity, error)
	ListUsers(ctx context.Context, filter models.UserFilter) (models.Page[models.User], error)
	CreateUser(ctx context.Context, request models.CreateUserRequest) (models.User, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
