// EV Recharge Bunk - Charging Station Discovery
// Copyright 2026 The EV Recharge Bunk Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/thecode94/Electric-Vehicle-Recharge-Bunk

package discovery

import (
	"context"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/thecode94/Electric-Vehicle-Recharge-Bunk-sub001/internal/aggregate"
	"github.com/thecode94/Electric-Vehicle-Recharge-Bunk-sub001/internal/config"
	"github.com/thecode94/Electric-Vehicle-Recharge-Bunk-sub001/internal/dedupe"
	"github.com/thecode94/Electric-Vehicle-Recharge-Bunk-sub001/internal/gazetteer"
	"github.com/thecode94/Electric-Vehicle-Recharge-Bunk-sub001/internal/geo"
	"github.com/thecode94/Electric-Vehicle-Recharge-Bunk-sub001/internal/logging"
	"github.com/thecode94/Electric-Vehicle-Recharge-Bunk-sub001/internal/metrics"
	"github.com/thecode94/Electric-Vehicle-Recharge-Bunk-sub001/internal/models"
	"github.com/thecode94/Electric-Vehicle-Recharge-Bunk-sub001/internal/search"
)

// MinQueryLength is the shortest text query TextSearch accepts, in runes
// after folding.
const MinQueryLength = 2

// Suggestion list bounds.
const (
	minSuggestions = 5
	maxSuggestions = 10
)

// Operation names used for metrics and logs.
const (
	opNearby      = "nearby"
	opTextSearch  = "text_search"
	opLocatePlace = "locate_place"
	opNearPlace   = "near_place"
	opDiagnose    = "diagnose"
)

// Options holds the engine limits taken from configuration.
type Options struct {
	DefaultRadiusKm   float64
	MaxRadiusKm       float64
	DefaultLimit      int
	MaxLimit          int
	SuggestionLimit   int
	StrictAggregation bool
}

// OptionsFromConfig copies the discovery limits out of cfg.
func OptionsFromConfig(cfg *config.DiscoveryConfig) Options {
	return Options{
		DefaultRadiusKm:   cfg.DefaultRadiusKm,
		MaxRadiusKm:       cfg.MaxRadiusKm,
		DefaultLimit:      cfg.DefaultLimit,
		MaxLimit:          cfg.MaxLimit,
		SuggestionLimit:   cfg.SuggestionLimit,
		StrictAggregation: cfg.StrictAggregation,
	}
}

// Engine answers station discovery queries. Each call rebuilds its records
// from the sources; the engine itself holds only the immutable gazetteer,
// the normalizer chain and the aggregator's circuit breakers.
type Engine struct {
	agg        *aggregate.Aggregator
	gaz        *gazetteer.Gazetteer
	normalizer *geo.Normalizer
	opts       Options
}

// New creates an engine. A nil gazetteer means the built-in one.
func New(agg *aggregate.Aggregator, gaz *gazetteer.Gazetteer, opts Options) *Engine {
	if gaz == nil {
		gaz = gazetteer.Builtin()
	}
	if opts.DefaultRadiusKm <= 0 {
		opts.DefaultRadiusKm = 25
	}
	if opts.MaxRadiusKm <= 0 {
		opts.MaxRadiusKm = 500
	}
	if opts.DefaultLimit <= 0 {
		opts.DefaultLimit = 50
	}
	if opts.MaxLimit <= 0 {
		opts.MaxLimit = 200
	}
	opts.SuggestionLimit = min(max(opts.SuggestionLimit, minSuggestions), maxSuggestions)

	return &Engine{
		agg:        agg,
		gaz:        gaz,
		normalizer: geo.DefaultNormalizer(),
		opts:       opts,
	}
}

// Gazetteer returns the engine's place dictionary.
func (e *Engine) Gazetteer() *gazetteer.Gazetteer { return e.gaz }

// Sources returns the configured source descriptors.
func (e *Engine) Sources() []aggregate.SourceDescriptor { return e.agg.Sources() }

// Filters narrows and caps a station result set.
type Filters struct {
	Query      string // optional substring pre-filter
	Limit      int    // 0 means the configured default
	ActiveOnly bool
}

// StationResult is returned by the station query operations.
type StationResult struct {
	Stations      []models.StationRecord `json:"stations"`
	Count         int                    `json:"count"`
	Center        *models.Coordinates    `json:"center,omitempty"`
	RadiusKm      *float64               `json:"radiusKm,omitempty"`
	Place         *models.LocationResult `json:"place,omitempty"`
	Degraded      bool                   `json:"-"`
	SourcesFailed []string               `json:"-"`
}

// pass is the shared front of every query: aggregate, normalize, dedupe.
type pass struct {
	records   []models.StationRecord
	outcome   *aggregate.Outcome
	dropped   int
	collapsed int
}

func (e *Engine) run(ctx context.Context) (*pass, error) {
	outcome := e.agg.Aggregate(ctx)
	if outcome.AllFailed() && e.opts.StrictAggregation {
		return nil, ErrTotalAggregationFailure
	}

	records, dropped := aggregate.Normalize(outcome.Records, e.normalizer)
	records, collapsed := dedupe.Dedupe(records)
	return &pass{records: records, outcome: outcome, dropped: dropped, collapsed: collapsed}, nil
}

// finish applies the active filter and limit, then fills in degradation.
func (e *Engine) finish(p *pass, records []models.StationRecord, f Filters) *StationResult {
	if f.ActiveOnly {
		kept := make([]models.StationRecord, 0, len(records))
		for i := range records {
			if records[i].IsActive() {
				kept = append(kept, records[i])
			}
		}
		records = kept
	}

	limit := e.limit(f.Limit)
	if len(records) > limit {
		records = records[:limit]
	}
	if records == nil {
		records = []models.StationRecord{}
	}

	metrics.RecordPipelineStage(metrics.StageReturned, len(records))
	failed := p.outcome.Failed()
	return &StationResult{
		Stations:      records,
		Count:         len(records),
		Degraded:      len(failed) > 0,
		SourcesFailed: failed,
	}
}

func (e *Engine) limit(n int) int {
	if n <= 0 {
		return e.opts.DefaultLimit
	}
	return min(n, e.opts.MaxLimit)
}

// radiusKm resolves a caller radius. Zero means the default; the result is
// capped at the configured maximum.
func (e *Engine) radiusKm(value float64, unit geo.Unit) (float64, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
		return 0, invalidf("radius must be a finite, non-negative number")
	}
	if value == 0 {
		return e.opts.DefaultRadiusKm, nil
	}
	return min(geo.RadiusKm(value, unit), e.opts.MaxRadiusKm), nil
}

func validatePoint(lat, lng float64) (models.Coordinates, error) {
	c := models.Coordinates{Lat: lat, Lng: lng}
	if math.IsNaN(lat) || math.IsInf(lat, 0) || math.IsNaN(lng) || math.IsInf(lng, 0) {
		return c, invalidf("lat and lng must be finite numbers")
	}
	if !c.Valid() {
		return c, invalidf("lat must be within [-90, 90] and lng within [-180, 180]")
	}
	return c, nil
}

// validateQuery measures the query as it will be matched: punctuation and
// whitespace fold away, so "..." is as short as "".
func validateQuery(q string) (string, error) {
	q = strings.TrimSpace(q)
	if utf8.RuneCountInString(search.Fold(q)) < MinQueryLength {
		return q, invalidf("query must be at least %d characters", MinQueryLength)
	}
	return q, nil
}

func (e *Engine) observe(ctx context.Context, op string, start time.Time, p *pass, returned int) {
	metrics.RecordDiscoveryOperation(op, time.Since(start))

	ev := logging.Ctx(ctx).Debug().
		Str("operation", op).
		Int("returned", returned).
		Dur("duration", time.Since(start))
	if p != nil {
		ev = ev.Int("candidates", len(p.records)).
			Int("dropped_coordinates", p.dropped).
			Int("collapsed", p.collapsed).
			Strs("sources_failed", p.outcome.Failed())
	}
	ev.Msg("Discovery query served")
}

func floatPtr(v float64) *float64 { return &v }
