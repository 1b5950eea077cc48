// EV Recharge Bunk - Charging Station Discovery
// Copyright 2026 The EV Recharge Bunk Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/thecode94/Electric-Vehicle-Recharge-Bunk

package api

import (
	"context"
	"time"

	"github.com/thecode94/Electric-Vehicle-Recharge-Bunk-sub001/internal/discovery"
)

// Pinger reports whether the backing document store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler contains dependencies for API handlers
//
// Handler methods are split across files:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_helpers.go: envelope, error mapping, parameter parsing
//   - handlers_health.go: liveness and readiness probes
//   - handlers_stations.go: nearby, search, near-place
//   - handlers_places.go: place lookup and the admin geo-debug report
type Handler struct {
	engine    *discovery.Engine
	store     Pinger
	version   string
	startTime time.Time
}

// NewHandler creates a new API handler.
//
// Example:
//
//	handler := api.NewHandler(engine, store, "1.0.0")
//	router := api.NewRouter(handler, api.NewChiMiddlewareFromConfig(&cfg.Security))
//	http.ListenAndServe(":8080", router.SetupChi())
func NewHandler(engine *discovery.Engine, store Pinger, version string) *Handler {
	return &Handler{
		engine:    engine,
		store:     store,
		version:   version,
		startTime: time.Now(),
	}
}
