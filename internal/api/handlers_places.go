// EV Recharge Bunk - Charging Station Discovery
// Copyright 2026 The EV Recharge Bunk Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/thecode94/Electric-Vehicle-Recharge-Bunk

package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/thecode94/Electric-Vehicle-Recharge-Bunk-sub001/internal/models"
)

// PlacesLocate handles GET /api/v1/places/locate?q=.
func (h *Handler) PlacesLocate(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	req := LocateRequest{Query: strings.TrimSpace(r.URL.Query().Get("q"))}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondErrorDetails(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details, nil)
		return
	}

	loc, err := h.engine.LocatePlace(r.Context(), req.Query)
	if err != nil {
		respondDiscoveryError(w, r, err)
		return
	}
	respondSuccess(w, start, loc, models.Metadata{})
}

// GeoDebug handles GET /api/v1/admin/geo-debug with optional lat and lng.
// The report is read-only and never fails on source errors.
func (h *Handler) GeoDebug(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	req, err := parseGeoDebug(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrCodeValidation, err.Error(), nil)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondErrorDetails(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details, nil)
		return
	}

	report, err := h.engine.Diagnose(r.Context(), point(req.Lat, req.Lng))
	if err != nil {
		respondDiscoveryError(w, r, err)
		return
	}

	var failed []string
	for i := range report.Sources {
		if report.Sources[i].Error != "" {
			failed = append(failed, report.Sources[i].Name)
		}
	}
	respondSuccess(w, start, report, models.Metadata{
		Degraded:      len(failed) > 0,
		SourcesFailed: failed,
	})
}
