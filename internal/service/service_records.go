package service

import (
	"context"

	"github.com/MKhiriev/beichen-observer/internal/logger"
	"github.com/MKhiriev/beichen-observer/internal/store"
	"github.com/MKhiriev/beichen-observer/models"
)

type recordService[T any] struct {
	repository store.RecordRepository[T]

	logger *logger.Logger
}

func NewRecordService[T any](repository store.RecordRepository[T], logger *logger.Logger) RecordService[T] {
	return &recordService[T]{
		repository: repository,
		logger:     logger,
	}
}

func (s *recordService[T]) Create(ctx context.Context, record T) (models.ID, error) {
	return s.repository.Create(ctx, record)
}

func (s *recordService[T]) List(ctx context.Context) ([]T, error) {
	return s.repository.List(ctx)
}

func (s *recordService[T]) Get(ctx context.Context, id models.ID) (T, error) {
	return s.repository.Get(ctx, id)
}

func (s *recordService[T]) Update(ctx context.Context, id models.ID, record T) (models.ID, error) {
	return s.repository.Update(ctx, id, record)
}

func (s *recordService[T]) Delete(ctx context.Context, id models.ID) error {
	return s.repository.Delete(ctx, id)
}

func (s *recordService[T]) DeleteAll(ctx context.Context) (int64, error) {
	return s.repository.DeleteAll(ctx)
}
