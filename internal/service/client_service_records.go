package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/beichen-observer/internal/adapter"
	"github.com/MKhiriev/beichen-observer/internal/logger"
	"github.com/MKhiriev/beichen-observer/models"
)

// clientRecordService translates between the display format D and the
// storage format S around a [adapter.RecordAPI].
type clientRecordService[D, S any] struct {
	api        adapter.RecordAPI[S]
	references ClientReferenceService
	toStorage  func(D) (S, error)
	toDisplay  func(S) D

	logger *logger.Logger
}

func NewClientRecordService[D, S any](
	api adapter.RecordAPI[S],
	references ClientReferenceService,
	toStorage func(D) (S, error),
	toDisplay func(S) D,
	logger *logger.Logger,
) ClientRecordService[D] {
	return &clientRecordService[D, S]{
		api:        api,
		references: references,
		toStorage:  toStorage,
		toDisplay:  toDisplay,
		logger:     logger,
	}
}

func (s *clientRecordService[D, S]) List(ctx context.Context) ([]D, error) {
	if _, err := s.references.Load(ctx); err != nil {
		return nil, err
	}

	records, err := s.api.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing records: %w", err)
	}

	displayed := make([]D, 0, len(records))
	for _, record := range records {
		displayed = append(displayed, s.toDisplay(record))
	}
	return displayed, nil
}

func (s *clientRecordService[D, S]) Get(ctx context.Context, id models.ID) (D, error) {
	var zero D

	if _, err := s.references.Load(ctx); err != nil {
		return zero, err
	}

	record, err := s.api.Get(ctx, id)
	if err != nil {
		return zero, fmt.Errorf("error getting record %s: %w", id, err)
	}
	return s.toDisplay(record), nil
}

func (s *clientRecordService[D, S]) Create(ctx context.Context, record D) (models.ID, error) {
	stored, err := s.translate(ctx, record)
	if err != nil {
		return "", err
	}

	id, err := s.api.Create(ctx, stored)
	if err != nil {
		return "", fmt.Errorf("error creating record: %w", err)
	}

	logger.FromContext(ctx).Debug().Str("id", id.String()).Msg("record created")
	return id, nil
}

func (s *clientRecordService[D, S]) Update(ctx context.Context, id models.ID, record D) (models.ID, error) {
	stored, err := s.translate(ctx, record)
	if err != nil {
		return "", err
	}

	updated, err := s.api.Update(ctx, id, stored)
	if err != nil {
		return "", fmt.Errorf("error updating record %s: %w", id, err)
	}
	return updated, nil
}

func (s *clientRecordService[D, S]) Delete(ctx context.Context, id models.ID) error {
	if err := s.api.Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting record %s: %w", id, err)
	}
	return nil
}

func (s *clientRecordService[D, S]) translate(ctx context.Context, record D) (S, error) {
	var zero S

	if _, err := s.references.Load(ctx); err != nil {
		return zero, err
	}

	stored, err := s.toStorage(record)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Msg("record cannot be translated to storage format")
		return zero, err
	}
	return stored, nil
}
