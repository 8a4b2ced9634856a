package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/beichen-observer/internal/logger"
	"github.com/MKhiriev/beichen-observer/internal/validators"
	"github.com/MKhiriev/beichen-observer/models"
)

// RecordServiceWrapper defines middleware composition for RecordService.
// Implementations wrap an existing RecordService to add behavior such as
// validation.
type RecordServiceWrapper[T any] interface {
	Wrap(RecordService[T]) RecordService[T] // returns a decorated RecordService applying additional behavior
}

// RecordValidationService checks record payloads before they are written.
// Reads pass through unchanged.
type RecordValidationService[T any] struct {
	inner     RecordService[T]
	validator validators.Validator
}

func NewRecordValidationService[T any](validator validators.Validator) RecordServiceWrapper[T] {
	return &RecordValidationService[T]{
		validator: validator,
	}
}

func (v *RecordValidationService[T]) Create(ctx context.Context, record T) (models.ID, error) {
	if err := v.validate(ctx, record); err != nil {
		return "", err
	}
	return v.inner.Create(ctx, record)
}

func (v *RecordValidationService[T]) List(ctx context.Context) ([]T, error) {
	return v.inner.List(ctx)
}

func (v *RecordValidationService[T]) Get(ctx context.Context, id models.ID) (T, error) {
	return v.inner.Get(ctx, id)
}

func (v *RecordValidationService[T]) Update(ctx context.Context, id models.ID, record T) (models.ID, error) {
	if err := v.validate(ctx, record); err != nil {
		return "", err
	}
	return v.inner.Update(ctx, id, record)
}

func (v *RecordValidationService[T]) Delete(ctx context.Context, id models.ID) error {
	return v.inner.Delete(ctx, id)
}

func (v *RecordValidationService[T]) DeleteAll(ctx context.Context) (int64, error) {
	return v.inner.DeleteAll(ctx)
}

func (v *RecordValidationService[T]) Wrap(inner RecordService[T]) RecordService[T] {
	v.inner = inner
	return v
}

func (v *RecordValidationService[T]) validate(ctx context.Context, record T) error {
	if err := v.validator.Validate(ctx, record); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Msg("record rejected by validation")
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return nil
}
