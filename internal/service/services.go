package service

import (
	"github.com/MKhiriev/beichen-observer/internal/config"
	"github.com/MKhiriev/beichen-observer/internal/logger"
	"github.com/MKhiriev/beichen-observer/internal/store"
	"github.com/MKhiriev/beichen-observer/internal/validators"
	"github.com/MKhiriev/beichen-observer/models"
)

type Services struct {
	ObservationService ObservationService
	DutyReportService  DutyReportService
	ReferenceService   ReferenceService
	AuthService        AuthService
	AppInfoService     AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	validator := validators.NewPayloadValidator()

	appInfo, err := NewAppInfoService(buildInfo, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		ObservationService: NewRecordValidationService[models.Observation](validator).
			Wrap(NewRecordService(storages.Observations, logger)),
		DutyReportService: NewRecordValidationService[models.DutyReport](validator).
			Wrap(NewRecordService(storages.DutyReports, logger)),
		ReferenceService: NewReferenceService(storages.References, storages.Users, validator, logger),
		AuthService:      NewAuthService(storages.Users, cfg.App, logger),
		AppInfoService:   appInfo,
	}, nil
}
