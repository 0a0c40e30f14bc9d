// Cageography - Nicolas Cage Filmography Analytics
// Copyright 2026 Felix Amado (felixamado)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/felixamado/cageography

// Package main is the entry point for the Cageography server.
//
// Cageography ingests an IMDb-style CSV export, derives Nicolas Cage's
// filmography from it, and serves a JSON analytics API plus an embedded
// dashboard page.
//
// # Application Architecture
//
// The server initializes components in the following order:
//
//  1. Configuration: Koanf v2 layered sources (env > config file > defaults)
//  2. Database: in-memory (or file-backed) DuckDB analytics store
//  3. Dataset ingest: CSV filter, normalize, dedupe, load
//  4. WebSocket hub: reload notifications to open dashboards
//  5. HTTP server: chi-routed REST API with Prometheus metrics
//
// Long-lived services run under a suture supervisor tree so a crash in one
// layer restarts only that layer.
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest
// priority wins): environment variables, an optional config.yaml, built-in
// defaults. The only required setting is the dataset location:
//
//	export DATASET_PATH=/data/movies.csv
//	./cageography
//
// See config.example.yaml for the full surface.
//
// # Signal Handling
//
// The server shuts down gracefully on SIGINT and SIGTERM: it stops accepting
// connections, waits up to 10s for in-flight requests, closes the WebSocket
// hub, and then the database.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/felixamado/cageography/internal/api"
	"github.com/felixamado/cageography/internal/config"
	"github.com/felixamado/cageography/internal/database"
	"github.com/felixamado/cageography/internal/dataset"
	"github.com/felixamado/cageography/internal/logging"
	"github.com/felixamado/cageography/internal/supervisor"
	"github.com/felixamado/cageography/internal/supervisor/services"
	ws "github.com/felixamado/cageography/internal/websocket"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Config is not available yet, use the default logger.
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("version", api.Version).
		Str("actor", cfg.Dataset.Actor).
		Str("dataset", cfg.Dataset.Path).
		Str("db_path", cfg.Database.Path).
		Msg("Starting Cageography")

	db, err := database.New(&cfg.Database)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing database")
		}
	}()

	// Initial ingest. The server refuses to start without a usable dataset;
	// afterwards POST /api/v1/reload re-ingests without a restart.
	loader := dataset.NewService(cfg, db)
	count, err := loader.Load(context.Background())
	if err != nil {
		if closeErr := db.Close(); closeErr != nil {
			logging.Error().Err(closeErr).Msg("Error closing database")
		}
		logging.Fatal().Err(err).Msg("Failed to load dataset")
	}
	logging.Info().Int("movies", count).Msg("Dataset loaded")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Bridge zerolog into slog for sutureslog.
	tree, err := supervisor.NewTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	wsHub := ws.NewHub()

	handler := api.NewHandler(db, cfg, loader, wsHub)
	router := api.NewRouter(handler, cfg)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.SetupChi(),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  60 * time.Second,
	}

	tree.AddMessagingService(services.NewWebSocketHubService(wsHub))
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Msg("Starting supervisor tree")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	// Drain until the supervisor has fully stopped.
	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service did not stop within timeout")
	}

	logging.Info().Msg("Cageography stopped")
}
