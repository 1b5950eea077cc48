// EV Recharge Bunk - Charging Station Discovery
// Copyright 2026 The EV Recharge Bunk Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/thecode94/Electric-Vehicle-Recharge-Bunk

package services

import (
	"context"
	"fmt"
	"time"

	"github.com/thecode94/Electric-Vehicle-Recharge-Bunk-sub001/internal/logging"
)

// StoreMaintainer is satisfied by *docstore.BadgerStore.
type StoreMaintainer interface {
	Ping(ctx context.Context) error
	RunGC(discardRatio float64) (int, error)
}

// StoreMaintenanceConfig controls the maintenance loop.
type StoreMaintenanceConfig struct {
	Interval     time.Duration // default 10m
	DiscardRatio float64       // default 0.5
	// MaxPingFailures consecutive ping failures make Serve return an error,
	// so suture restarts and backs off the data layer. Default 3.
	MaxPingFailures int
}

// StoreMaintenanceService periodically pings the document store and runs
// BadgerDB value log GC.
type StoreMaintenanceService struct {
	store  StoreMaintainer
	config StoreMaintenanceConfig
	name   string
}

// NewStoreMaintenanceService creates the maintenance service.
func NewStoreMaintenanceService(store StoreMaintainer, cfg StoreMaintenanceConfig) *StoreMaintenanceService {
	if cfg.Interval <= 0 {
		cfg.Interval = 10 * time.Minute
	}
	if cfg.DiscardRatio <= 0 || cfg.DiscardRatio >= 1 {
		cfg.DiscardRatio = 0.5
	}
	if cfg.MaxPingFailures <= 0 {
		cfg.MaxPingFailures = 3
	}
	return &StoreMaintenanceService{
		store:  store,
		config: cfg,
		name:   "store-maintenance",
	}
}

// Serve implements suture.Service.
func (s *StoreMaintenanceService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.config.Interval)
	defer ticker.Stop()

	failures := 0
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

		if err := s.store.Ping(ctx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			failures++
			logging.Warn().Err(err).Int("consecutive_failures", failures).Msg("Document store ping failed")
			if failures >= s.config.MaxPingFailures {
				return fmt.Errorf("document store unreachable after %d pings: %w", failures, err)
			}
			continue
		}
		failures = 0

		start := time.Now()
		n, err := s.store.RunGC(s.config.DiscardRatio)
		if err != nil {
			logging.Warn().Err(err).Msg("Value log GC failed")
			continue
		}
		if n > 0 {
			logging.Info().Int("rewrites", n).Dur("duration", time.Since(start)).Msg("Value log GC completed")
		}
	}
}

// String implements fmt.Stringer; suture uses it in log messages.
func (s *StoreMaintenanceService) String() string {
	return s.name
}
