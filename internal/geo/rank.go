// EV Recharge Bunk - Charging Station Discovery
// Copyright 2026 The EV Recharge Bunk Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/thecode94/Electric-Vehicle-Recharge-Bunk

package geo

import (
	"sort"

	"github.com/thecode94/Electric-Vehicle-Recharge-Bunk-sub001/internal/models"
)

// FilterAndRank keeps records within radiusKm of center and returns them
// sorted by ascending distance, each annotated with DistanceKm. Ties keep
// their input order. A nil center passes records through unchanged.
func FilterAndRank(records []models.StationRecord, center *models.Coordinates, radiusKm float64) []models.StationRecord {
	if center == nil {
		return records
	}

	out := make([]models.StationRecord, 0, len(records))
	for i := range records {
		d := HaversineKm(*center, records[i].Coordinates)
		if d <= radiusKm {
			out = append(out, records[i].WithDistance(d))
		}
	}
	sortByDistance(out)
	return out
}

// Annotate sets DistanceKm from center on every record and sorts by it,
// without excluding anything.
func Annotate(records []models.StationRecord, center models.Coordinates) []models.StationRecord {
	out := make([]models.StationRecord, len(records))
	for i := range records {
		out[i] = records[i].WithDistance(HaversineKm(center, records[i].Coordinates))
	}
	sortByDistance(out)
	return out
}

func sortByDistance(records []models.StationRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		return *records[i].DistanceKm < *records[j].DistanceKm
	})
}
