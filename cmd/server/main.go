// EV Recharge Bunk - Charging Station Discovery
// Copyright 2026 The EV Recharge Bunk Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/thecode94/Electric-Vehicle-Recharge-Bunk

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

	"github.com/thecode94/Electric-Vehicle-Recharge-Bunk-sub001/internal/aggregate"
	"github.com/thecode94/Electric-Vehicle-Recharge-Bunk-sub001/internal/api"
	"github.com/thecode94/Electric-Vehicle-Recharge-Bunk-sub001/internal/config"
	"github.com/thecode94/Electric-Vehicle-Recharge-Bunk-sub001/internal/discovery"
	"github.com/thecode94/Electric-Vehicle-Recharge-Bunk-sub001/internal/docstore"
	"github.com/thecode94/Electric-Vehicle-Recharge-Bunk-sub001/internal/gazetteer"
	"github.com/thecode94/Electric-Vehicle-Recharge-Bunk-sub001/internal/logging"
	"github.com/thecode94/Electric-Vehicle-Recharge-Bunk-sub001/internal/supervisor"
	"github.com/thecode94/Electric-Vehicle-Recharge-Bunk-sub001/internal/supervisor/services"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("version", version).
		Str("environment", cfg.Server.Environment).
		Str("db_path", cfg.Database.Path).
		Bool("in_memory", cfg.Database.InMemory).
		Int("sources", len(cfg.Discovery.Sources)).
		Bool("strict_aggregation", cfg.Discovery.StrictAggregation).
		Msg("Configuration loaded")

	if err := run(cfg); err != nil {
		logging.Fatal().Err(err).Msg("Server stopped with error")
	}
	logging.Info().Msg("Application stopped gracefully")
}

func run(cfg *config.Config) error {
	store, err := docstore.OpenBadger(cfg.Database.Path, cfg.Database.InMemory)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing document store")
		}
	}()

	if cfg.Database.SeedFile != "" {
		if err := docstore.SeedFile(context.Background(), store, cfg.Database.SeedFile); err != nil {
			return err
		}
	}

	gaz, err := gazetteer.Load(cfg.Discovery.GazetteerPath)
	if err != nil {
		return err
	}
	logging.Info().
		Int("places", gaz.Len()).
		Str("overlay", cfg.Discovery.GazetteerPath).
		Msg("Gazetteer loaded")

	sources := aggregate.DescriptorsFromConfig(&cfg.Discovery)
	agg := aggregate.New(store, sources, cfg.Breaker, cfg.Discovery.MaxConcurrency)
	engine := discovery.New(agg, gaz, discovery.OptionsFromConfig(&cfg.Discovery))

	for _, s := range sources {
		logging.Info().
			Str("source", s.Name).
			Str("collection", s.Ref.String()).
			Str("tag", string(s.Tag())).
			Msg("Station source registered")
	}

	handler := api.NewHandler(engine, store, version)
	router := api.NewRouter(handler, api.NewChiMiddlewareFromConfig(&cfg.Security))

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		return fmt.Errorf("create supervisor tree: %w", err)
	}

	tree.AddDataService(services.NewStoreMaintenanceService(store, services.StoreMaintenanceConfig{}))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	var serveErr error
	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			serveErr = err
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport() //nolint:errcheck // best-effort shutdown report
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
	}
	return serveErr
}
