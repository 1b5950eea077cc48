// EV Recharge Bunk - Charging Station Discovery
// Copyright 2026 The EV Recharge Bunk Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/thecode94/Electric-Vehicle-Recharge-Bunk

// Package dedupe collapses station records that describe the same physical
// station.
//
// The fingerprint is the coordinate pair rounded to 4 decimal places (about
// 11 m) plus the lower-cased trimmed name. It is an exact match: stations a
// few metres apart that round differently are kept as separate records.
package dedupe

import (
	"math"
	"strconv"
	"strings"

	"github.com/thecode94/Electric-Vehicle-Recharge-Bunk-sub001/internal/metrics"
	"github.com/thecode94/Electric-Vehicle-Recharge-Bunk-sub001/internal/models"
)

// Fingerprint returns the dedupe key for a record.
func Fingerprint(r *models.StationRecord) string {
	key := round4(r.Coordinates.Lat) + "," + round4(r.Coordinates.Lng)
	if name := strings.ToLower(strings.TrimSpace(r.Name)); name != "" {
		key += "|" + name
	}
	return key
}

// round4 formats v at 4 decimal places. Values that round to zero from
// either side share the key "0.0000".
func round4(v float64) string {
	v = math.Round(v*1e4) / 1e4
	if v == 0 {
		v = 0 // drop the sign of -0
	}
	return strconv.FormatFloat(v, 'f', 4, 64)
}

// Dedupe keeps the first record per fingerprint and reports how many were
// dropped. Input order of the survivors is preserved.
func Dedupe(records []models.StationRecord) ([]models.StationRecord, int) {
	seen := make(map[string]struct{}, len(records))
	out := make([]models.StationRecord, 0, len(records))

	for i := range records {
		fp := Fingerprint(&records[i])
		if _, dup := seen[fp]; dup {
			continue
		}
		seen[fp] = struct{}{}
		out = append(out, records[i])
	}

	collapsed := len(records) - len(out)
	metrics.RecordDedupeCollapsed(collapsed)
	metrics.RecordPipelineStage(metrics.StageDeduped, len(out))
	return out, collapsed
}
