// GameRec - Content-Based Game Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamerec

package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"runtime"
	"syscall"

	_ "github.com/tomtom215/gamerec/docs"
	"github.com/tomtom215/gamerec/internal/api"
	"github.com/tomtom215/gamerec/internal/config"
	"github.com/tomtom215/gamerec/internal/igdb"
	"github.com/tomtom215/gamerec/internal/logging"
	"github.com/tomtom215/gamerec/internal/metrics"
	"github.com/tomtom215/gamerec/internal/recommend"
	"github.com/tomtom215/gamerec/internal/supervisor"
	"github.com/tomtom215/gamerec/internal/supervisor/services"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		if errors.Is(err, config.ErrMissingCredentials) {
			logging.Fatal().Err(err).Msg("Set TWITCH_CLIENT_ID and TWITCH_CLIENT_SECRET")
		}
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:   cfg.Logging.Level,
		Format:  cfg.Logging.Format,
		Caller:  cfg.Logging.Caller,
		Version: version,
	})
	metrics.SetAppInfo(version, runtime.Version())

	logging.Info().
		Str("version", version).
		Str("igdb_url", cfg.IGDB.APIURL).
		Float64("igdb_rps", cfg.IGDB.RequestsPerSecond).
		Int("max_ratings", cfg.Recommend.MaxRatings).
		Msg("Starting GameRec")

	if cfg.HasWildcardCORS() {
		logging.Warn().Msg("CORS allows any origin")
	}

	tokens := igdb.NewTwitchTokenProvider(&cfg.IGDB)
	client := igdb.NewClient(&cfg.IGDB, igdb.WithTokenProvider(tokens))

	engine, err := recommend.NewEngine(&recommend.Config{
		MaxResults: cfg.Recommend.MaxResults,
		MaxRatings: cfg.Recommend.MaxRatings,
	}, client, logging.WithComponent("recommend"))
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create recommendation engine")
	}

	handler := api.NewHandler(engine, client, client, cfg, version)
	router := api.NewRouter(handler, api.NewChiMiddleware(api.ChiMiddlewareConfigFrom(&cfg.Security)))

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router.SetupChi(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger("supervisor"), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	tree.AddCatalogService(services.NewTokenRefresherService(tokens))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor tree error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
	}

	logging.Info().Msg("GameRec stopped")
}
