// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/staff-portal/internal/adapter"
	"github.com/MKhiriev/staff-portal/internal/config"
	"github.com/MKhiriev/staff-portal/internal/handler"
	"github.com/MKhiriev/staff-portal/internal/logger"
	"github.com/MKhiriev/staff-portal/internal/server"
	"github.com/MKhiriev/staff-portal/internal/service"
	"github.com/MKhiriev/staff-portal/internal/session"
	"github.com/MKhiriev/staff-portal/internal/store"
	"github.com/MKhiriev/staff-portal/internal/workers"
	"github.com/MKhiriev/staff-portal/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo)

	log := logger.NewLogger("portal-server")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Warn().Err(err).Str("level", cfg.App.LogLevel).Msg("unknown log level, keeping debug")
	}
	if buildInfo.Released() && cfg.App.Version == "dev" {
		cfg.App.Version = buildInfo.Version
	}

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	identity, err := adapter.NewIdentityProvider(cfg.Backend, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating identity provider")
	}

	services, err := service.NewServices(storages, identity, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	sessionStore, err := session.NewStore(ctx, cfg.Session)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating session store")
	}
	defer func() {
		if err := sessionStore.Close(); err != nil {
			log.Err(err).Msg("error closing session store")
		}
	}()
	sessions := session.NewManager(sessionStore, cfg.Session, cfg.App.SecretKey, log)

	handlers, err := handler.NewHandlers(services, sessions, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	backgroundWorkers := workers.NewWorkers(cfg.Workers, sessionStore, log)
	backgroundWorkers.Start(ctx)
	defer backgroundWorkers.Stop()

	if err = srv.RunServer(ctx); err != nil {
		log.Err(err).Msg("server stopped with error")
	}
}
