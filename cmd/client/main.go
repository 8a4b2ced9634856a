package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/beichen-observer/internal/adapter"
	"github.com/MKhiriev/beichen-observer/internal/client"
	"github.com/MKhiriev/beichen-observer/internal/config"
	"github.com/MKhiriev/beichen-observer/internal/logger"
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
	log := logger.NewClientLogger("beichen-client")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	var storages *store.ClientStorages
	connect := func(ctx context.Context, configPath string) (*service.ClientServices, error) {
		cfg, err := config.GetClientConfig(configPath)
		if err != nil {
			return nil, fmt.Errorf("error getting configs: %w", err)
		}
		if err = log.SetLevel(cfg.Log.Level); err != nil {
			return nil, err
		}

		storages, err = store.NewClientStorages(ctx, cfg.Storage, log)
		if err != nil {
			return nil, fmt.Errorf("create local storage: %w", err)
		}

		serverAdapter, err := adapter.NewClient(cfg.Adapter, cfg.Credentials, cfg.Endpoints, storages.TokenStore, log)
		if err != nil {
			return nil, fmt.Errorf("create server adapter: %w", err)
		}

		return service.NewClientServices(serverAdapter, cfg.Endpoints, log), nil
	}

	app := client.NewApp(connect, os.Stdin, os.Stdout, log)
	app.SetVersion(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit).String())

	err := app.Run(ctx, os.Args)
	if storages != nil {
		if closeErr := storages.Close(); closeErr != nil {
			log.Err(closeErr).Msg("error closing local storage")
		}
	}
	if err != nil {
		log.Err(err).Msg("client run error")
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
