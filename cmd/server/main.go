// CineMatch - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/cinematch/internal/api"
	"github.com/tomtom215/cinematch/internal/config"
	"github.com/tomtom215/cinematch/internal/console"
	"github.com/tomtom215/cinematch/internal/dataset"
	"github.com/tomtom215/cinematch/internal/logging"
	"github.com/tomtom215/cinematch/internal/recommend"
	"github.com/tomtom215/cinematch/internal/supervisor"
	"github.com/tomtom215/cinematch/internal/supervisor/services"
)

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.LoadWithKoanf()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
		Output:    os.Stderr,
	})

	logging.Info().
		Str("movies_path", cfg.Dataset.MoviesPath).
		Str("ratings_path", cfg.Dataset.RatingsPath).
		Str("addr", cfg.Server.Addr()).
		Bool("console", cfg.Console.Enabled).
		Msg("Starting CineMatch")

	if cfg.HasWildcardCORS() {
		logging.Warn().Msg("CORS allows any origin (CORS_ORIGINS=*)")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	data, err := dataset.Load(ctx, dataset.Paths{
		Movies:  cfg.Dataset.MoviesPath,
		Ratings: cfg.Dataset.RatingsPath,
	}, logging.WithComponent("dataset"))
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load dataset")
	}

	engine := recommend.NewEngine(data.Catalog, data.Ratings, data.Genres, cfg.Recommend.Engine(), logging.WithComponent("recommend"))

	// sutureslog needs an slog.Logger; the adapter forwards to zerolog.
	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	router := api.NewRouter(api.NewHandler(data, engine), newMiddlewareConfig(cfg))
	server := newHTTPServer(cfg, router.SetupChi())
	tree.AddAPIService(services.NewHTTPServerService(server, server.Addr, cfg.Server.ShutdownTimeout))

	if cfg.Console.Enabled {
		session := console.New(data, engine, os.Stdin, os.Stdout, cfg.Console.TestUserID, logging.Logger())
		tree.AddConsoleService(services.NewConsoleService(session))
		logging.Info().Msg("Console session added to supervisor tree")
	}

	logging.Info().Msg("Starting supervisor tree...")
	// The tree stops on a signal or when the console session ends.
	if err := <-tree.ServeBackground(ctx); err != nil && !isCleanStop(err) {
		logging.Error().Err(err).Msg("Supervisor tree error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
	}

	logging.Info().Msg("Application stopped gracefully")
}

// isCleanStop reports whether the tree ended from a signal or a console exit.
func isCleanStop(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, suture.ErrTerminateSupervisorTree)
}
