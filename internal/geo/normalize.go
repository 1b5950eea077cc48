// EV Recharge Bunk - Charging Station Discovery
// Copyright 2026 The EV Recharge Bunk Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/thecode94/Electric-Vehicle-Recharge-Bunk

package geo

import (
	"math"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/thecode94/Electric-Vehicle-Recharge-Bunk-sub001/internal/models"
)

// Extractor tries to read a coordinate pair from a raw document.
// It returns false when its encoding is absent or unusable.
type Extractor func(doc map[string]interface{}) (models.Coordinates, bool)

// Normalizer runs an ordered chain of extractors; the first that yields a
// valid pair wins.
type Normalizer struct {
	chain []Extractor
}

// Field names probed by the default chain, in priority order.
var (
	nestedFields    = []string{"location", "coordinates", "coords", "geo", "position", "geopoint"}
	pairFields      = [][2]string{{"lat", "lng"}, {"latitude", "longitude"}, {"lat", "lon"}, {"_latitude", "_longitude"}}
	rootPairFields  = [][2]string{{"latitude", "longitude"}, {"lat", "lng"}, {"lat", "lon"}}
	delimitedFields = []string{"location", "coordinates", "latlng", "latLng", "geo"}
)

// NewNormalizer builds a normalizer from the given extractors.
func NewNormalizer(chain ...Extractor) *Normalizer {
	return &Normalizer{chain: chain}
}

// DefaultNormalizer probes nested location objects, then flat root fields,
// then "lat,lng" strings.
func DefaultNormalizer() *Normalizer {
	return NewNormalizer(
		NestedObject(nestedFields...),
		RootFields(rootPairFields...),
		DelimitedString(delimitedFields...),
	)
}

// Normalize returns the first valid coordinate pair in doc.
func (n *Normalizer) Normalize(doc map[string]interface{}) (models.Coordinates, bool) {
	if len(doc) == 0 {
		return models.Coordinates{}, false
	}
	for _, extract := range n.chain {
		if c, ok := extract(doc); ok && c.Valid() {
			return c, true
		}
	}
	return models.Coordinates{}, false
}

// NestedObject reads lat/lng (or latitude/longitude) from an object stored
// under any of the given fields.
func NestedObject(fields ...string) Extractor {
	return func(doc map[string]interface{}) (models.Coordinates, bool) {
		for _, f := range fields {
			obj, ok := doc[f].(map[string]interface{})
			if !ok {
				continue
			}
			if c, ok := pairFrom(obj, pairFields); ok {
				return c, true
			}
		}
		return models.Coordinates{}, false
	}
}

// RootFields reads a coordinate pair from fields on the document root.
func RootFields(pairs ...[2]string) Extractor {
	return func(doc map[string]interface{}) (models.Coordinates, bool) {
		return pairFrom(doc, pairs)
	}
}

// DelimitedString parses "lat,lng" (or "lat lng") from string fields.
func DelimitedString(fields ...string) Extractor {
	return func(doc map[string]interface{}) (models.Coordinates, bool) {
		for _, f := range fields {
			s, ok := doc[f].(string)
			if !ok {
				continue
			}
			if c, ok := ParseLatLng(s); ok {
				return c, true
			}
		}
		return models.Coordinates{}, false
	}
}

// ParseLatLng parses "19.07,72.87"; a single space or semicolon also separates.
func ParseLatLng(s string) (models.Coordinates, bool) {
	parts := strings.FieldsFunc(strings.TrimSpace(s), func(r rune) bool {
		return r == ',' || r == ';' || r == ' '
	})
	if len(parts) != 2 {
		return models.Coordinates{}, false
	}
	lat, ok1 := toFloat(parts[0])
	lng, ok2 := toFloat(parts[1])
	if !ok1 || !ok2 {
		return models.Coordinates{}, false
	}
	c := models.Coordinates{Lat: lat, Lng: lng}
	return c, c.Valid()
}

func pairFrom(m map[string]interface{}, pairs [][2]string) (models.Coordinates, bool) {
	for _, p := range pairs {
		lat, ok1 := toFloat(m[p[0]])
		lng, ok2 := toFloat(m[p[1]])
		if !ok1 || !ok2 {
			continue
		}
		c := models.Coordinates{Lat: lat, Lng: lng}
		if c.Valid() {
			return c, true
		}
	}
	return models.Coordinates{}, false
}

// toFloat converts JSON-ish values to a finite float64.
func toFloat(v interface{}) (float64, bool) {
	var f float64
	switch x := v.(type) {
	case float64:
		f = x
	case float32:
		f = float64(x)
	case int:
		f = float64(x)
	case int64:
		f = float64(x)
	case int32:
		f = float64(x)
	case json.Number:
		parsed, err := x.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
