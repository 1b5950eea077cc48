// EV Recharge Bunk - Charging Station Discovery
// Copyright 2026 The EV Recharge Bunk Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/thecode94/Electric-Vehicle-Recharge-Bunk

package api

import (
	"net/http"
	"time"

	"github.com/thecode94/Electric-Vehicle-Recharge-Bunk-sub001/internal/discovery"
	"github.com/thecode94/Electric-Vehicle-Recharge-Bunk-sub001/internal/geo"
	"github.com/thecode94/Electric-Vehicle-Recharge-Bunk-sub001/internal/models"
)

// StationsNearby handles GET /api/v1/stations/nearby.
//
// Query parameters: lat, lng (required), radius, unit (km|m), q, limit,
// active_only. A radius above 1000 without a unit is read as meters.
func (h *Handler) StationsNearby(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	req, err := parseNearby(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrCodeValidation, err.Error(), nil)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondErrorDetails(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details, nil)
		return
	}

	unit, _ := geo.ParseUnit(req.Unit)
	res, err := h.engine.Nearby(r.Context(), discovery.NearbyRequest{
		Lat:    *req.Lat,
		Lng:    *req.Lng,
		Radius: req.Radius,
		Unit:   unit,
		Filters: discovery.Filters{
			Query:      req.Query,
			Limit:      req.Limit,
			ActiveOnly: req.ActiveOnly,
		},
	})
	if err != nil {
		respondDiscoveryError(w, r, err)
		return
	}
	respondStations(w, start, res)
}

// StationsSearch handles GET /api/v1/stations/search.
//
// Query parameters: q (required, at least 2 characters), lat and lng
// (optional, together), radius, unit, limit, active_only.
func (h *Handler) StationsSearch(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	req, err := parseSearch(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrCodeValidation, err.Error(), nil)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondErrorDetails(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details, nil)
		return
	}

	unit, _ := geo.ParseUnit(req.Unit)
	res, err := h.engine.TextSearch(r.Context(), discovery.TextSearchRequest{
		Query:      req.Query,
		Center:     point(req.Lat, req.Lng),
		Radius:     req.Radius,
		Unit:       unit,
		Limit:      req.Limit,
		ActiveOnly: req.ActiveOnly,
	})
	if err != nil {
		respondDiscoveryError(w, r, err)
		return
	}
	respondStations(w, start, res)
}

// StationsNearPlace handles GET /api/v1/stations/near-place.
//
// The place in q is resolved first; an unknown place answers 404 with
// suggestions in error.details.
func (h *Handler) StationsNearPlace(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	req, err := parseNearPlace(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrCodeValidation, err.Error(), nil)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondErrorDetails(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details, nil)
		return
	}

	unit, _ := geo.ParseUnit(req.Unit)
	res, err := h.engine.NearPlace(r.Context(), discovery.NearPlaceRequest{
		Query:      req.Query,
		Radius:     req.Radius,
		Unit:       unit,
		Limit:      req.Limit,
		ActiveOnly: req.ActiveOnly,
	})
	if err != nil {
		respondDiscoveryError(w, r, err)
		return
	}
	respondStations(w, start, res)
}

func respondStations(w http.ResponseWriter, start time.Time, res *discovery.StationResult) {
	respondSuccess(w, start, res, models.Metadata{
		Degraded:      res.Degraded,
		SourcesFailed: res.SourcesFailed,
	})
}
