// EV Recharge Bunk - Charging Station Discovery
// Copyright 2026 The EV Recharge Bunk Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/thecode94/Electric-Vehicle-Recharge-Bunk

package api

import (
	"net/http"
	"strings"

	"github.com/thecode94/Electric-Vehicle-Recharge-Bunk-sub001/internal/models"
)

// Request structs carry the parsed query parameters of each endpoint and are
// checked with go-playground/validator before the engine sees them. The
// `query` tag names the parameter so validation messages refer to it.

// NearbyRequest is the validated query of /stations/nearby.
type NearbyRequest struct {
	Lat        *float64 `query:"lat" validate:"required,finite,latitude"`
	Lng        *float64 `query:"lng" validate:"required,finite,longitude"`
	Radius     float64  `query:"radius" validate:"finite,gte=0"`
	Unit       string   `query:"unit" validate:"omitempty,radius_unit"`
	Query      string   `query:"q" validate:"max=200"`
	Limit      int      `query:"limit" validate:"omitempty,min=1,max=200"`
	ActiveOnly bool     `query:"active_only"`
}

// SearchRequest is the validated query of /stations/search.
type SearchRequest struct {
	Query      string   `query:"q" validate:"required,min=2,max=200"`
	Lat        *float64 `query:"lat" validate:"omitempty,finite,latitude"`
	Lng        *float64 `query:"lng" validate:"omitempty,finite,longitude"`
	Radius     float64  `query:"radius" validate:"finite,gte=0"`
	Unit       string   `query:"unit" validate:"omitempty,radius_unit"`
	Limit      int      `query:"limit" validate:"omitempty,min=1,max=200"`
	ActiveOnly bool     `query:"active_only"`
}

// NearPlaceRequest is the validated query of /stations/near-place.
type NearPlaceRequest struct {
	Query      string  `query:"q" validate:"required,max=200"`
	Radius     float64 `query:"radius" validate:"finite,gte=0"`
	Unit       string  `query:"unit" validate:"omitempty,radius_unit"`
	Limit      int     `query:"limit" validate:"omitempty,min=1,max=200"`
	ActiveOnly bool    `query:"active_only"`
}

// LocateRequest is the validated query of /places/locate.
type LocateRequest struct {
	Query string `query:"q" validate:"required,max=200"`
}

// GeoDebugRequest is the validated query of /admin/geo-debug.
type GeoDebugRequest struct {
	Lat *float64 `query:"lat" validate:"omitempty,finite,latitude"`
	Lng *float64 `query:"lng" validate:"omitempty,finite,longitude"`
}

// queryParams collects the first parse failure across several parameters.
type queryParams struct {
	r   *http.Request
	err error
}

func (p *queryParams) number(key string) *float64 {
	v, err := getFloatParam(p.r, key)
	if err != nil && p.err == nil {
		p.err = err
	}
	return v
}

func (p *queryParams) numberOrZero(key string) float64 {
	if v := p.number(key); v != nil {
		return *v
	}
	return 0
}

func (p *queryParams) integer(key string) int {
	v, err := getIntParam(p.r, key)
	if err != nil && p.err == nil {
		p.err = err
	}
	return v
}

func (p *queryParams) flag(key string) bool {
	v, err := getBoolParam(p.r, key)
	if err != nil && p.err == nil {
		p.err = err
	}
	return v
}

func (p *queryParams) text(key string) string {
	return strings.TrimSpace(p.r.URL.Query().Get(key))
}

func parseNearby(r *http.Request) (NearbyRequest, error) {
	p := queryParams{r: r}
	req := NearbyRequest{
		Lat:        p.number("lat"),
		Lng:        p.number("lng"),
		Radius:     p.numberOrZero("radius"),
		Unit:       p.text("unit"),
		Query:      p.text("q"),
		Limit:      p.integer("limit"),
		ActiveOnly: p.flag("active_only"),
	}
	return req, p.err
}

func parseSearch(r *http.Request) (SearchRequest, error) {
	p := queryParams{r: r}
	req := SearchRequest{
		Query:      p.text("q"),
		Lat:        p.number("lat"),
		Lng:        p.number("lng"),
		Radius:     p.numberOrZero("radius"),
		Unit:       p.text("unit"),
		Limit:      p.integer("limit"),
		ActiveOnly: p.flag("active_only"),
	}
	if p.err == nil {
		p.err = pairedPoint(req.Lat, req.Lng)
	}
	return req, p.err
}

func parseNearPlace(r *http.Request) (NearPlaceRequest, error) {
	p := queryParams{r: r}
	req := NearPlaceRequest{
		Query:      p.text("q"),
		Radius:     p.numberOrZero("radius"),
		Unit:       p.text("unit"),
		Limit:      p.integer("limit"),
		ActiveOnly: p.flag("active_only"),
	}
	return req, p.err
}

func parseGeoDebug(r *http.Request) (GeoDebugRequest, error) {
	p := queryParams{r: r}
	req := GeoDebugRequest{Lat: p.number("lat"), Lng: p.number("lng")}
	if p.err == nil {
		p.err = pairedPoint(req.Lat, req.Lng)
	}
	return req, p.err
}

// pairedPoint rejects a lat without a lng and vice versa.
func pairedPoint(lat, lng *float64) error {
	if (lat == nil) != (lng == nil) {
		return &paramError{name: "lat and lng", kind: "given together"}
	}
	return nil
}

func point(lat, lng *float64) *models.Coordinates {
	if lat == nil || lng == nil {
		return nil
	}
	return &models.Coordinates{Lat: *lat, Lng: *lng}
}
