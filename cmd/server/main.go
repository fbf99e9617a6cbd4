// Cinematch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

// Package main is the entry point for the Cinematch server.
//
// Cinematch recommends the five movies most similar to a chosen title from a
// precomputed similarity matrix, decorated with TMDB posters, release year
// and rating.
//
// # Startup
//
//  1. Configuration: defaults, optional config.yaml, environment (Koanf v2)
//  2. Logging: zerolog with the configured level and format
//  3. Catalog: JSON bundle or Parquet directory; a missing or invalid
//     artifact is fatal
//  4. Recommender, poster pipeline (TMDB client, circuit breaker, URL store)
//     and presenter
//  5. Router and HTTP server
//  6. Supervisor tree: cache sweeper (maintenance layer), HTTP server (api layer)
//
// # Example Usage
//
//	export CATALOG_PATH=./models/catalog.json
//	export TMDB_API_KEY=your-tmdb-key
//	./cinematch
//
// With a shared poster cache:
//
//	export POSTER_CACHE_BACKEND=redis
//	export REDIS_ADDR=localhost:6379
//	./cinematch
//
// SIGINT and SIGTERM trigger a graceful shutdown.
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

	"github.com/tomtom215/cinematch/internal/api"
	"github.com/tomtom215/cinematch/internal/cache"
	"github.com/tomtom215/cinematch/internal/config"
	"github.com/tomtom215/cinematch/internal/logging"
	"github.com/tomtom215/cinematch/internal/metrics"
	"github.com/tomtom215/cinematch/internal/supervisor"
	"github.com/tomtom215/cinematch/internal/supervisor/services"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})
	metrics.SetAppInfo(version)

	logging.Info().
		Str("version", version).
		Str("catalog_path", cfg.Catalog.Path).
		Str("environment", cfg.Server.Environment).
		Bool("posters_enabled", cfg.Poster.Enabled()).
		Msg("Starting Cinematch")
	if cfg.ShouldWarnAboutCORS() {
		logging.Warn().Msg("CORS allows any origin in production; set CORS_ORIGINS")
	}

	cat := initCatalog(cfg)

	posters, err := initPosters(cfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize poster pipeline")
	}
	defer posters.Close()

	rec, err := initRecommend(cfg, cat, posters.Service)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize recommender")
	}

	handler, err := api.NewHandler(api.HandlerConfig{
		Catalog:       cat,
		Presenter:     rec.Presenter,
		PosterBreaker: posters.BreakerState(),
		Version:       version,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create API handler")
	}
	router := api.NewRouter(handler, api.NewChiMiddleware(&api.ChiMiddlewareConfig{
		CORSAllowedOrigins: cfg.Security.CORSOrigins,
		CORSAllowedMethods: []string{"GET", "OPTIONS"},
		CORSAllowedHeaders: []string{"Content-Type", "X-Request-ID"},
		CORSMaxAge:         86400,
		RateLimitRequests:  cfg.Security.RateLimitReqs,
		RateLimitWindow:    cfg.Security.RateLimitWindow,
		RateLimitDisabled:  cfg.Security.RateLimitDisabled,
	}))

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	tree, err := supervisor.NewSupervisorTree(
		logging.NewSlogLogger("supervisor"),
		supervisor.DefaultTreeConfig(),
	)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	tree.AddMaintenanceService(services.NewCacheSweeperService(
		map[string]cache.Sweeper{
			"recommend": rec.Engine.Cache(),
			"poster":    posters.Sweeper,
		},
		cfg.Maintenance.CacheSweepInterval,
		logging.Logger(),
	))
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second, logging.Logger()))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	if err := <-tree.ServeBackground(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor tree error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("Cinematch stopped")
}
