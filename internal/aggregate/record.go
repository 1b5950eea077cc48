// EV Recharge Bunk - Charging Station Discovery
// Copyright 2026 The EV Recharge Bunk Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/thecode94/Electric-Vehicle-Recharge-Bunk

package aggregate

import (
	"fmt"
	"strings"

	"github.com/thecode94/Electric-Vehicle-Recharge-Bunk-sub001/internal/geo"
	"github.com/thecode94/Electric-Vehicle-Recharge-Bunk-sub001/internal/metrics"
	"github.com/thecode94/Electric-Vehicle-Recharge-Bunk-sub001/internal/models"
)

// Field aliases seen across station document shapes, in lookup order.
var (
	nameFields    = []string{"name", "stationName", "station_name", "title"}
	addressFields = []string{"address", "fullAddress", "full_address", "street"}
	cityFields    = []string{"city", "town"}
	areaFields    = []string{"area", "locality", "neighbourhood", "neighborhood"}
	stateFields   = []string{"state", "region"}
	ownerFields   = []string{"ownerId", "owner_id", "ownerID", "owner"}
)

// Normalize converts raw records into station records. Records without
// usable coordinates are dropped and counted.
func Normalize(raws []RawRecord, n *geo.Normalizer) (records []models.StationRecord, dropped int) {
	records = make([]models.StationRecord, 0, len(raws))
	for i := range raws {
		rec, ok := buildRecord(&raws[i], n)
		if !ok {
			dropped++
			continue
		}
		records = append(records, rec)
	}

	metrics.RecordPipelineStage(metrics.StageNormalized, len(records))
	metrics.RecordPipelineStage(metrics.StageDroppedCoordinates, dropped)
	return records, dropped
}

func buildRecord(raw *RawRecord, n *geo.Normalizer) (models.StationRecord, bool) {
	coords, ok := n.Normalize(raw.Data)
	if !ok {
		return models.StationRecord{}, false
	}

	rec := models.StationRecord{
		ID:          raw.ID,
		Name:        firstString(raw.Data, nameFields),
		Address:     firstString(raw.Data, addressFields),
		City:        firstString(raw.Data, cityFields),
		Area:        firstString(raw.Data, areaFields),
		State:       firstString(raw.Data, stateFields),
		Coordinates: coords,
		SourceTag:   raw.ID.Tag(),
		Status:      firstString(raw.Data, []string{"status"}),
		OwnerID:     raw.ID.Owner(),
	}
	if rec.Name == "" {
		rec.Name = models.DefaultStationName
	}
	if rec.Status == "" {
		rec.Status = models.StatusActive
	}
	if rec.OwnerID == "" {
		rec.OwnerID = firstString(raw.Data, ownerFields)
	}

	// Address sometimes lives beside the coordinates in a location object.
	if rec.Address == "" {
		if loc, ok := raw.Data["location"].(map[string]interface{}); ok {
			rec.Address = firstString(loc, addressFields)
		}
	}
	return rec, true
}

// firstString returns the first non-empty scalar under any of keys.
func firstString(data map[string]interface{}, keys []string) string {
	for _, k := range keys {
		switch v := data[k].(type) {
		case string:
			if s := strings.TrimSpace(v); s != "" {
				return s
			}
		case float64, int, int64, bool:
			return fmt.Sprint(v)
		}
	}
	return ""
}
