// EV Recharge Bunk - Charging Station Discovery
// Copyright 2026 The EV Recharge Bunk Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/thecode94/Electric-Vehicle-Recharge-Bunk

package discovery

import (
	"context"
	"strings"
	"time"

	"github.com/thecode94/Electric-Vehicle-Recharge-Bunk-sub001/internal/gazetteer"
	"github.com/thecode94/Electric-Vehicle-Recharge-Bunk-sub001/internal/logging"
	"github.com/thecode94/Electric-Vehicle-Recharge-Bunk-sub001/internal/metrics"
	"github.com/thecode94/Electric-Vehicle-Recharge-Bunk-sub001/internal/models"
)

// LocatePlace resolves a free-text place name to a location. It tries the
// gazetteer first and the city anchors second; when both fail it returns a
// *NotFoundError carrying suggestions.
func (e *Engine) LocatePlace(ctx context.Context, query string) (models.LocationResult, error) {
	start := time.Now()

	loc, err := e.locate(query)

	metrics.RecordDiscoveryOperation(opLocatePlace, time.Since(start))
	logging.Ctx(ctx).Debug().
		Str("query", query).
		Str("match_kind", string(loc.MatchKind)).
		Bool("found", err == nil).
		Msg("Place lookup")
	return loc, err
}

func (e *Engine) locate(query string) (models.LocationResult, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return models.LocationResult{}, invalidf("place query must not be empty")
	}

	res, ok := e.gaz.Resolve(q, e.opts.SuggestionLimit)
	if !ok || !res.Entry.HasCoordinates() {
		metrics.RecordPlaceResolution(string(models.MatchNone))
		return models.LocationResult{}, &NotFoundError{
			Query:       q,
			Suggestions: e.gaz.Suggest(q, e.opts.SuggestionLimit),
			Hint:        e.gaz.Hint(q),
		}
	}

	metrics.RecordPlaceResolution(string(res.Kind))
	loc := locationFrom(&res, res.Alternatives)
	loc.Hint = e.gaz.Hint(q)
	return loc, nil
}

func locationFrom(res *gazetteer.Resolution, alternatives []models.PlaceEntry) models.LocationResult {
	loc := models.LocationResult{
		Name:      res.Entry.DisplayName,
		Address:   res.Entry.Address,
		Lat:       res.Entry.Coordinates.Lat,
		Lng:       res.Entry.Coordinates.Lng,
		Key:       res.Entry.Key,
		MatchKind: res.Kind,
		Score:     res.Score,
	}
	if loc.Address == "" {
		loc.Address = res.Entry.DisplayName
	}
	for i := range alternatives {
		loc.Suggestions = append(loc.Suggestions, alternatives[i].DisplayName)
	}
	return loc
}
