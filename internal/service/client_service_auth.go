package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/beichen-observer/internal/adapter"
	"github.com/MKhiriev/beichen-observer/internal/logger"
)

type clientAuthService struct {
	adapter adapter.ServerAdapter

	logger *logger.Logger
}

func NewClientAuthService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{adapter: serverAdapter, logger: logger}
}

func (a *clientAuthService) Login(ctx context.Context) error {
	if err := a.adapter.Logout(ctx); err != nil {
		a.logger.Warn().Err(err).Msg("error clearing previous token")
	}

	if _, err := a.adapter.Login(ctx); err != nil {
		return fmt.Errorf("login failed: %w", err)
	}
	return nil
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	if err := a.adapter.Logout(ctx); err != nil {
		return fmt.Errorf("logout failed: %w", err)
	}
	return nil
}
