// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/zivi-portal/internal/cache"
	"github.com/MKhiriev/zivi-portal/internal/config"
	"github.com/MKhiriev/zivi-portal/internal/handler"
	"github.com/MKhiriev/zivi-portal/internal/logger"
	"github.com/MKhiriev/zivi-portal/internal/server"
	"github.com/MKhiriev/zivi-portal/internal/service"
	"github.com/MKhiriev/zivi-portal/internal/store"
	"github.com/MKhiriev/zivi-portal/internal/validators"
	"github.com/MKhiriev/zivi-portal/internal/workers"
	"github.com/MKhiriev/zivi-portal/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("zivi-portal-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if buildVersion != "" {
		cfg.App.Version = buildVersion
	}

	ctx := context.Background()

	// a nil *cache.Client must not reach the store as a non-nil interface
	var sessionCache store.SessionCache
	if cfg.Storage.Cache.RedisAddress != "" {
		redisCache := cache.New(cfg.Storage.Cache.RedisAddress, log)
		if err = redisCache.Ping(ctx); err != nil {
			log.Warn().Err(err).Msg("session cache unreachable, falling back to the database")
		}
		defer redisCache.Close()
		sessionCache = redisCache
	}

	storages, err := store.NewStorages(ctx, cfg.Storage, sessionCache, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services, err := service.NewServices(storages, cfg, validators.NewStructValidator(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	if err = services.AuthService.SeedAdmin(ctx); err != nil {
		log.Fatal().Err(err).Msg("error seeding admin account")
	}

	maintenance, err := workers.NewMaintenanceWorker(cfg.Workers.ReminderSchedule,
		services.ReminderService, services.AuthService, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating background workers")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, workers.NewWorkers(maintenance), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.Version)
	fmt.Printf("Build date: %s\n", info.Date)
	fmt.Printf("Build commit: %s\n", info.Commit)
}
