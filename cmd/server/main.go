package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/beichen-observer/internal/config"
	"github.com/MKhiriev/beichen-observer/internal/handler"
	"github.com/MKhiriev/beichen-observer/internal/logger"
	"github.com/MKhiriev/beichen-observer/internal/server"
	"github.com/MKhiriev/beichen-observer/internal/service"
	"github.com/MKhiriev/beichen-observer/internal/store"
	"github.com/MKhiriev/beichen-observer/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := printBuildInfo()

	log := logger.NewLogger("beichen-server")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = log.SetLevel(cfg.Log.Level); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	log.Debug().Str("address", cfg.Server.HTTPAddress).Msg("received configs")

	ctx := context.Background()
	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	services, err := service.NewServices(storages, *cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	if err = services.AuthService.EnsureAdmin(ctx); err != nil {
		log.Fatal().Err(err).Msg("error creating administrator account")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() models.AppBuildInfo {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Printf("Build: %s\n", info)
	return info
}
