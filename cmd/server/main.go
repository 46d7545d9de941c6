// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-auth-keeper/internal/config"
	"github.com/MKhiriev/go-auth-keeper/internal/crypto"
	"github.com/MKhiriev/go-auth-keeper/internal/handler"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/server"
	"github.com/MKhiriev/go-auth-keeper/internal/service"
	"github.com/MKhiriev/go-auth-keeper/internal/store"
	"github.com/MKhiriev/go-auth-keeper/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "auth server: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	log := logger.NewEnvironmentLogger("auth-server", cfg.App.IsProduction())
	log.Debug().
		Str("environment", cfg.App.Environment).
		Str("address", cfg.Server.HTTPAddress).
		Dur("session_expires_in", cfg.App.SessionExpiresIn).
		Bool("redis_sessions", cfg.Storage.Redis.Address != "").
		Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("error creating storages: %w", err)
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	hasher := crypto.NewArgon2idHasher(crypto.Argon2Params{
		Memory:      cfg.App.ArgonMemory,
		Iterations:  cfg.App.ArgonIterations,
		Parallelism: cfg.App.ArgonParallelism,
	}, cfg.App.HashConcurrency)

	services := service.NewServices(storages, hasher, *cfg, log)

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		return fmt.Errorf("error creating handlers: %w", err)
	}

	// sessions without expiry never need sweeping
	backgroundWorkers := workers.NewWorkers()
	if cfg.App.SessionExpiresIn > 0 {
		backgroundWorkers = workers.NewWorkers(
			workers.NewSessionSweeper(storages.SessionStore, cfg.Workers.SessionSweepInterval, log),
		)
	}

	srv, err := server.NewServer(handlers, backgroundWorkers, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	return srv.RunServer(ctx)
}

func printBuildInfo() {
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
}
