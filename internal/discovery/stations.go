// EV Recharge Bunk - Charging Station Discovery
// Copyright 2026 The EV Recharge Bunk Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/thecode94/Electric-Vehicle-Recharge-Bunk

package discovery

import (
	"context"
	"time"

	"github.com/thecode94/Electric-Vehicle-Recharge-Bunk-sub001/internal/geo"
	"github.com/thecode94/Electric-Vehicle-Recharge-Bunk-sub001/internal/models"
	"github.com/thecode94/Electric-Vehicle-Recharge-Bunk-sub001/internal/search"
)

// NearbyRequest asks for stations around a point.
type NearbyRequest struct {
	Lat    float64
	Lng    float64
	Radius float64  // 0 means the default radius
	Unit   geo.Unit // UnitAuto applies the >1000 means meters rule
	Filters
}

// Nearby returns stations within the radius of (lat, lng), nearest first.
// An optional text query pre-filters by substring before the radius filter.
func (e *Engine) Nearby(ctx context.Context, req NearbyRequest) (*StationResult, error) {
	start := time.Now()

	res, p, err := e.nearby(ctx, req)
	if err != nil {
		return nil, err
	}
	e.observe(ctx, opNearby, start, p, res.Count)
	return res, nil
}

// nearby runs the radius query without recording it, so callers that wrap
// it observe one operation per request.
func (e *Engine) nearby(ctx context.Context, req NearbyRequest) (*StationResult, *pass, error) {
	center, err := validatePoint(req.Lat, req.Lng)
	if err != nil {
		return nil, nil, err
	}
	radius, err := e.radiusKm(req.Radius, req.Unit)
	if err != nil {
		return nil, nil, err
	}

	p, err := e.run(ctx)
	if err != nil {
		return nil, nil, err
	}

	records := search.FilterStations(req.Query, p.records)
	records = geo.FilterAndRank(records, &center, radius)

	res := e.finish(p, records, req.Filters)
	res.Center = &center
	res.RadiusKm = floatPtr(radius)
	return res, p, nil
}

// TextSearchRequest asks for stations matching a text query.
type TextSearchRequest struct {
	Query      string
	Center     *models.Coordinates // optional explicit reference point
	Radius     float64             // only applied with an explicit center
	Unit       geo.Unit
	Limit      int
	ActiveOnly bool
}

// TextSearch returns stations whose name, address, city or area contain the
// query. With an explicit center, results are annotated with distance and
// sorted; a radius then also excludes far records. Without one, if the query
// resolves to a known place, results are annotated and sorted by distance
// from it but nothing is excluded.
func (e *Engine) TextSearch(ctx context.Context, req TextSearchRequest) (*StationResult, error) {
	start := time.Now()

	q, err := validateQuery(req.Query)
	if err != nil {
		return nil, err
	}

	var center *models.Coordinates
	radius := 0.0
	if req.Center != nil {
		c, err := validatePoint(req.Center.Lat, req.Center.Lng)
		if err != nil {
			return nil, err
		}
		center = &c
		if req.Radius != 0 {
			if radius, err = e.radiusKm(req.Radius, req.Unit); err != nil {
				return nil, err
			}
		}
	}

	p, err := e.run(ctx)
	if err != nil {
		return nil, err
	}

	records := search.FilterStations(q, p.records)

	var place *models.LocationResult
	switch {
	case center != nil && radius > 0:
		records = geo.FilterAndRank(records, center, radius)
	case center != nil:
		records = geo.Annotate(records, *center)
	default:
		if res, ok := e.gaz.Resolve(q, 0); ok && res.Entry.HasCoordinates() {
			loc := locationFrom(&res, nil)
			place = &loc
			records = geo.Annotate(records, *res.Entry.Coordinates)
		}
	}

	res := e.finish(p, records, Filters{Limit: req.Limit, ActiveOnly: req.ActiveOnly})
	res.Center = center
	if radius > 0 {
		res.RadiusKm = floatPtr(radius)
	}
	res.Place = place

	e.observe(ctx, opTextSearch, start, p, res.Count)
	return res, nil
}

// NearPlaceRequest resolves a place and searches around it.
type NearPlaceRequest struct {
	Query      string
	Radius     float64
	Unit       geo.Unit
	Limit      int
	ActiveOnly bool
}

// NearPlace resolves Query with LocatePlace rules, then runs Nearby around
// the resolved point. An unresolved place returns *NotFoundError.
func (e *Engine) NearPlace(ctx context.Context, req NearPlaceRequest) (*StationResult, error) {
	start := time.Now()

	loc, err := e.locate(req.Query)
	if err != nil {
		return nil, err
	}

	res, p, err := e.nearby(ctx, NearbyRequest{
		Lat:     loc.Lat,
		Lng:     loc.Lng,
		Radius:  req.Radius,
		Unit:    req.Unit,
		Filters: Filters{Limit: req.Limit, ActiveOnly: req.ActiveOnly},
	})
	if err != nil {
		return nil, err
	}
	res.Place = &loc

	e.observe(ctx, opNearPlace, start, p, res.Count)
	return res, nil
}
