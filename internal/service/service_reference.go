package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/beichen-observer/internal/logger"
	"github.com/MKhiriev/beichen-observer/internal/store"
	"github.com/MKhiriev/beichen-observer/internal/utils"
	"github.com/MKhiriev/beichen-observer/internal/validators"
	"github.com/MKhiriev/beichen-observer/models"
)

const (
	defaultPageSize = 20
	maxPageSize     = 1000
)

type referenceService struct {
	references store.ReferenceRepository
	users      store.UserRepository
	validator  validators.Validator

	logger *logger.Logger
}

func NewReferenceService(references store.ReferenceRepository, users store.UserRepository, validator validators.Validator, logger *logger.Logger) ReferenceService {
	return &referenceService{
		references: references,
		users:      users,
		validator:  validator,
		logger:     logger,
	}
}

func (s *referenceService) ListCampuses(ctx context.Context) ([]models.ReferenceEntity, error) {
	return s.references.ListCampuses(ctx)
}

func (s *referenceService) CreateCampus(ctx context.Context, request models.CreateCampusRequest) (models.ReferenceEntity, error) {
	if err := s.validate(ctx, request); err != nil {
		return models.ReferenceEntity{}, err
	}
	return s.references.CreateCampus(ctx, models.ReferenceEntity{Name: request.Name})
}

func (s *referenceService) ListClasses(ctx context.Context, campusID string) ([]models.ReferenceEntity, error) {
	return s.references.ListClasses(ctx, campusID)
}

func (s *referenceService) CreateClass(ctx context.Context, request models.CreateClassRequest) (models.ReferenceEntity, error) {
	if err := s.validate(ctx, request); err != nil {
		return models.ReferenceEntity{}, err
	}
	return s.references.CreateClass(ctx, models.ReferenceEntity{Name: request.Name, CampusID: request.CampusID})
}

// ListUsers returns one page of accounts. Page defaults to 1; page size
// defaults to 20 and is capped at 1000.
func (s *referenceService) ListUsers(ctx context.Context, filter models.UserFilter) (models.Page[models.User], error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	switch {
	case filter.PageSize < 1:
		filter.PageSize = defaultPageSize
	case filter.PageSize > maxPageSize:
		filter.PageSize = maxPageSize
	}

	users, total, err := s.users.ListUsers(ctx, filter)
	if err != nil {
		return models.Page[models.User]{}, err
	}

	return models.Page[models.User]{
		Data:     users,
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}, nil
}

// CreateUser registers a staff account. The password is optional; accounts
// without one can be referenced by records but cannot log in.
func (s *referenceService) CreateUser(ctx context.Context, request models.CreateUserRequest) (models.User, error) {
	if err := s.validate(ctx, request); err != nil {
		return models.User{}, err
	}

	user := models.User{Name: request.Name, Email: request.Email, Role: request.Role}
	if request.Password != "" {
		hash, err := utils.HashPassword(request.Password)
		if err != nil {
			return models.User{}, fmt.Errorf("error hashing password: %w", err)
		}
		user.PasswordHash = hash
	}

	return s.users.CreateUser(ctx, user)
}

func (s *referenceService) validate(ctx context.Context, request any) error {
	if err := s.validator.Validate(ctx, request); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Msg("reference payload rejected by validation")
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return nil
}
