// EV Recharge Bunk - Charging Station Discovery
// Copyright 2026 The EV Recharge Bunk Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/thecode94/Electric-Vehicle-Recharge-Bunk

package discovery

import (
	"context"
	"time"

	"github.com/thecode94/Electric-Vehicle-Recharge-Bunk-sub001/internal/aggregate"
	"github.com/thecode94/Electric-Vehicle-Recharge-Bunk-sub001/internal/dedupe"
	"github.com/thecode94/Electric-Vehicle-Recharge-Bunk-sub001/internal/geo"
	"github.com/thecode94/Electric-Vehicle-Recharge-Bunk-sub001/internal/models"
)

// SourceReport describes what one source contributed to a pass.
type SourceReport struct {
	Name       string           `json:"name"`
	Collection string           `json:"collection"`
	Tag        models.SourceTag `json:"tag"`
	Documents  int              `json:"documents"`
	Kept       int              `json:"kept"`
	Outcome    string           `json:"outcome"`
	Error      string           `json:"error,omitempty"`
	DurationMS int64            `json:"durationMs"`
}

// RecordReport is a retained record with its spatial debugging fields.
type RecordReport struct {
	ID          models.RecordID    `json:"id"`
	Name        string             `json:"name"`
	SourceTag   models.SourceTag   `json:"sourceTag"`
	Coordinates models.Coordinates `json:"coordinates"`
	CellToken   string             `json:"cellToken"`
	Fingerprint string             `json:"fingerprint"`
	DistanceKm  *float64           `json:"distanceKm,omitempty"`
}

// Diagnosis is the provenance report returned by Diagnose.
type Diagnosis struct {
	Sources            []SourceReport      `json:"sources"`
	Fetched            int                 `json:"fetched"`
	DroppedCoordinates int                 `json:"droppedCoordinates"`
	Collapsed          int                 `json:"collapsed"`
	Retained           int                 `json:"retained"`
	Point              *models.Coordinates `json:"point,omitempty"`
	Records            []RecordReport      `json:"records"`
}

// Diagnose runs one aggregation pass and reports how each source fared and
// what survived normalization and dedupe. A non-nil point adds distances and
// orders records nearest first. Diagnose never fails on source errors, even
// in strict mode.
func (e *Engine) Diagnose(ctx context.Context, point *models.Coordinates) (*Diagnosis, error) {
	start := time.Now()

	var center *models.Coordinates
	if point != nil {
		c, err := validatePoint(point.Lat, point.Lng)
		if err != nil {
			return nil, err
		}
		center = &c
	}

	outcome := e.agg.Aggregate(ctx)
	records, dropped := aggregate.Normalize(outcome.Records, e.normalizer)
	records, collapsed := dedupe.Dedupe(records)
	if center != nil {
		records = geo.Annotate(records, *center)
	}

	d := &Diagnosis{
		Sources:            make([]SourceReport, 0, len(outcome.Results)),
		Fetched:            len(outcome.Records),
		DroppedCoordinates: dropped,
		Collapsed:          collapsed,
		Retained:           len(records),
		Point:              center,
		Records:            make([]RecordReport, 0, len(records)),
	}
	for i := range outcome.Results {
		r := &outcome.Results[i]
		sr := SourceReport{
			Name:       r.Source.Name,
			Collection: r.Source.Ref.String(),
			Tag:        r.Source.Tag(),
			Documents:  len(r.Documents),
			Kept:       r.Kept,
			Outcome:    r.Outcome,
			DurationMS: r.Duration.Milliseconds(),
		}
		if r.Err != nil {
			sr.Error = r.Err.Error()
		}
		d.Sources = append(d.Sources, sr)
	}
	for i := range records {
		rec := &records[i]
		d.Records = append(d.Records, RecordReport{
			ID:          rec.ID,
			Name:        rec.Name,
			SourceTag:   rec.SourceTag,
			Coordinates: rec.Coordinates,
			CellToken:   geo.CellToken(rec.Coordinates),
			Fingerprint: dedupe.Fingerprint(rec),
			DistanceKm:  rec.DistanceKm,
		})
	}

	e.observe(ctx, opDiagnose, start, &pass{records: records, outcome: outcome, dropped: dropped, collapsed: collapsed}, d.Retained)
	return d, nil
}
