// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/coffeetalk/internal/adapter"
	"github.com/MKhiriev/coffeetalk/internal/config"
	"github.com/MKhiriev/coffeetalk/internal/handler"
	"github.com/MKhiriev/coffeetalk/internal/logger"
	"github.com/MKhiriev/coffeetalk/internal/server"
	"github.com/MKhiriev/coffeetalk/internal/service"
	"github.com/MKhiriev/coffeetalk/internal/store"
	"github.com/MKhiriev/coffeetalk/internal/workers"
	"github.com/MKhiriev/coffeetalk/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := printBuildInfo()

	log := logger.NewLogger("coffeetalk-server")
	if err := run(buildInfo, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}

// run wires the application and serves until shutdown. Deferred cleanup runs
// before main decides on the exit code.
func run(buildInfo models.AppBuildInfo, log *logger.Logger) error {
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	// secrets stay out of the log
	log.Debug().
		Str("env", cfg.App.Env).
		Str("version", cfg.App.Version).
		Str("address", cfg.ListenAddress()).
		Bool("tls", cfg.TLSEnabled()).
		Str("room", cfg.Room.Name).
		Bool("cache", cfg.Cache.RedisAddress != "").
		Msg("received configs")

	providerAdapter, err := adapter.NewProviderAdapter(cfg.Provider, log)
	if err != nil {
		return fmt.Errorf("error creating provider adapter: %w", err)
	}

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Cache, log)
	if err != nil {
		return fmt.Errorf("error creating storages: %w", err)
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	services := service.NewServices(providerAdapter, storages, *cfg, log)

	workers.NewWorkers(services, *cfg, log).Run(ctx)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, *cfg, log)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	return srv.RunServer()
}

func printBuildInfo() models.AppBuildInfo {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)

	return models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
}
