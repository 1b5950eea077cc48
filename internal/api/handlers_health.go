// EV Recharge Bunk - Charging Station Discovery
// Copyright 2026 The EV Recharge Bunk Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/thecode94/Electric-Vehicle-Recharge-Bunk

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/thecode94/Electric-Vehicle-Recharge-Bunk-sub001/internal/models"
)

const readinessTimeout = 2 * time.Second

// HealthLive handles liveness probe requests (Kubernetes-style)
// Returns 200 OK if the process is alive, regardless of dependencies
func (h *Handler) HealthLive(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: map[string]interface{}{
			"alive":   true,
			"version": h.version,
			"uptime":  time.Since(h.startTime).Seconds(),
		},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}

// HealthReady handles readiness probe requests (Kubernetes-style)
// Returns 200 OK only if the document store answers a ping
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
	defer cancel()

	if h.store == nil {
		respondError(w, http.StatusServiceUnavailable, ErrCodeServiceUnavailable, "Document store not configured", nil)
		return
	}
	if err := h.store.Ping(ctx); err != nil {
		respondErrorDetails(w, http.StatusServiceUnavailable, ErrCodeServiceUnavailable, "Document store not reachable",
			map[string]interface{}{"store": err.Error()}, nil)
		return
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: map[string]interface{}{
			"ready":           true,
			"store_connected": true,
			"sources":         len(h.engine.Sources()),
			"places":          h.engine.Gazetteer().Len(),
		},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}
