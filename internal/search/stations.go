// EV Recharge Bunk - Charging Station Discovery
// Copyright 2026 The EV Recharge Bunk Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/thecode94/Electric-Vehicle-Recharge-Bunk

package search

import (
	"github.com/thecode94/Electric-Vehicle-Recharge-Bunk-sub001/internal/models"
)

// MatchStation reports whether the folded query occurs in the record's name,
// address, city or area. There is no grading for stations.
func MatchStation(query string, r *models.StationRecord) bool {
	return matchFolded(Fold(query), r)
}

func matchFolded(q string, r *models.StationRecord) bool {
	if q == "" {
		return true
	}
	for _, field := range [...]string{r.Name, r.Address, r.City, r.Area} {
		if contains(Fold(field), q) {
			return true
		}
	}
	return false
}

// FilterStations keeps the records matching query, in input order. An empty
// query keeps everything.
func FilterStations(query string, records []models.StationRecord) []models.StationRecord {
	q := Fold(query)
	if q == "" {
		return records
	}
	out := make([]models.StationRecord, 0, len(records))
	for i := range records {
		if matchFolded(q, &records[i]) {
			out = append(out, records[i])
		}
	}
	return out
}
