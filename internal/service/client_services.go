package service

import (
	"github.com/MKhiriev/beichen-observer/internal/adapter"
	"github.com/MKhiriev/beichen-observer/internal/config"
	"github.com/MKhiriev/beichen-observer/internal/logger"
	"github.com/MKhiriev/beichen-observer/internal/reference"
	"github.com/MKhiriev/beichen-observer/internal/translator"
	"github.com/MKhiriev/beichen-observer/models"
)

type ClientServices struct {
	ObservationService ClientRecordService[models.DisplayObservation]
	DutyReportService  ClientRecordService[models.DisplayDutyReport]
	ReferenceService   ClientReferenceService
	AuthService        ClientAuthService
}

// NewClientServices wires the client services around one server adapter,
// one reference cache and one translator.
func NewClientServices(serverAdapter adapter.ServerAdapter, endpoints config.Endpoints, logger *logger.Logger) *ClientServices {
	cache := reference.NewCache(logger)
	references := NewClientReferenceService(serverAdapter, cache)
	tr := translator.New(cache, logger)

	return &ClientServices{
		ObservationService: NewClientRecordService(
			adapter.NewRecordAPI[models.Observation](serverAdapter, endpoints.DailyObservation),
			references, tr.ToStorageFormat, tr.ToDisplayFormat, logger,
		),
		DutyReportService: NewClientRecordService(
			adapter.NewRecordAPI[models.DutyReport](serverAdapter, endpoints.DutyReport),
			references, tr.ToStorageDutyReport, tr.ToDisplayDutyReport, logger,
		),
		ReferenceService: references,
		AuthService:      NewClientAuthService(serverAdapter, logger),
	}
}
