package http

import (
	"github.com/MKhiriev/beichen-observer/internal/logger"
	"github.com/MKhiriev/beichen-observer/internal/service"
)

type Handler struct {
	services *service.Services
	metrics  *metrics

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		metrics:  newMetrics(),
		logger:   logger,
	}
}
