package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/dashcam-catalog/internal/adapter"
	"github.com/MKhiriev/dashcam-catalog/internal/config"
	"github.com/MKhiriev/dashcam-catalog/internal/crypto"
	"github.com/MKhiriev/dashcam-catalog/internal/handler"
	"github.com/MKhiriev/dashcam-catalog/internal/logger"
	"github.com/MKhiriev/dashcam-catalog/internal/metrics"
	"github.com/MKhiriev/dashcam-catalog/internal/server"
	"github.com/MKhiriev/dashcam-catalog/internal/service"
	"github.com/MKhiriev/dashcam-catalog/internal/store"
	"github.com/MKhiriev/dashcam-catalog/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("dashcam-catalog-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Str("level", cfg.App.LogLevel).Msg("invalid log level")
	}

	log.Debug().
		Str("driver", cfg.Storage.DB.Driver).
		Str("address", cfg.Server.HTTPAddress).
		Strs("allowed_video_hosts", cfg.Adapter.AllowedVideoHosts).
		Msg("received configs")

	db, err := store.NewConnect(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	appMetrics := metrics.NewMetrics()

	services, err := service.NewServices(service.Dependencies{
		Storages:   store.NewStorages(db, log),
		DB:         db,
		URLChecker: appMetrics.WrapURLChecker(adapter.NewURLChecker(cfg.Adapter, log)),
		Hasher:     crypto.NewPBKDF2Hasher(cfg.App.KeyHashIterations),
		BuildInfo:  buildInfo,
	}, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, appMetrics, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
