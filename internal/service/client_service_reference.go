package service

import (
	"context"

	"github.com/MKhiriev/beichen-observer/internal/reference"
)

type clientReferenceService struct {
	loader reference.Loader
	cache  *reference.Cache
}

func NewClientReferenceService(loader reference.Loader, cache *reference.Cache) ClientReferenceService {
	return &clientReferenceService{loader: loader, cache: cache}
}

func (s *clientReferenceService) Load(ctx context.Context) (reference.Snapshot, error) {
	return s.cache.LoadAll(ctx, s.loader)
}
