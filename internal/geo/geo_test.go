// EV Recharge Bunk - Charging Station Discovery
// Copyright 2026 The EV Recharge Bunk Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/thecode94/Electric-Vehicle-Recharge-Bunk

package geo

import (
	"math"
	"testing"

	"github.com/thecode94/Electric-Vehicle-Recharge-Bunk-sub001/internal/models"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	n := DefaultNormalizer()
	want := models.Coordinates{Lat: 19.07, Lng: 72.87}

	tests := []struct {
		name   string
		doc    map[string]interface{}
		wantOK bool
		want   models.Coordinates
	}{
		{
			name:   "nested latitude/longitude",
			doc:    map[string]interface{}{"location": map[string]interface{}{"latitude": 19.07, "longitude": 72.87}},
			wantOK: true, want: want,
		},
		{
			name:   "nested lat/lng under coordinates",
			doc:    map[string]interface{}{"coordinates": map[string]interface{}{"lat": 19.07, "lng": 72.87}},
			wantOK: true, want: want,
		},
		{
			name:   "flat string values",
			doc:    map[string]interface{}{"lat": "19.07", "lng": "72.87"},
			wantOK: true, want: want,
		},
		{
			name:   "flat latitude/longitude",
			doc:    map[string]interface{}{"latitude": 19.07, "longitude": 72.87},
			wantOK: true, want: want,
		},
		{
			name:   "delimited string",
			doc:    map[string]interface{}{"location": "19.07, 72.87"},
			wantOK: true, want: want,
		},
		{
			name: "nested wins over root",
			doc: map[string]interface{}{
				"location": map[string]interface{}{"lat": 19.07, "lng": 72.87},
				"lat":      1.0, "lng": 2.0,
			},
			wantOK: true, want: want,
		},
		{
			name: "invalid nested falls through to root",
			doc: map[string]interface{}{
				"location": map[string]interface{}{"lat": 120.0, "lng": 72.87},
				"lat":      19.07, "lng": 72.87,
			},
			wantOK: true, want: want,
		},
		{name: "empty", doc: map[string]interface{}{}, wantOK: false},
		{name: "nil", doc: nil, wantOK: false},
		{name: "NaN string", doc: map[string]interface{}{"lat": "NaN", "lng": "72.87"}, wantOK: false},
		{name: "non-finite", doc: map[string]interface{}{"lat": math.Inf(1), "lng": 72.87}, wantOK: false},
		{name: "latitude out of range", doc: map[string]interface{}{"lat": 91.0, "lng": 72.87}, wantOK: false},
		{name: "longitude out of range", doc: map[string]interface{}{"lat": 19.07, "lng": -181.0}, wantOK: false},
		{name: "only one component", doc: map[string]interface{}{"lat": 19.07}, wantOK: false},
		{name: "garbage string", doc: map[string]interface{}{"location": "near the mall"}, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := n.Normalize(tt.doc)
			if ok != tt.wantOK {
				t.Fatalf("Normalize() ok = %v, want %v (got %+v)", ok, tt.wantOK, got)
			}
			if ok && got != tt.want {
				t.Errorf("Normalize() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestNormalizer_CustomChain(t *testing.T) {
	t.Parallel()

	n := NewNormalizer(RootFields([2]string{"y", "x"}))
	got, ok := n.Normalize(map[string]interface{}{"y": 12.97, "x": 77.59, "lat": 1.0, "lng": 1.0})
	if !ok || got.Lat != 12.97 || got.Lng != 77.59 {
		t.Errorf("custom chain = %+v, %v", got, ok)
	}
}

func TestHaversineKm(t *testing.T) {
	t.Parallel()

	mumbai := models.Coordinates{Lat: 19.0760, Lng: 72.8777}
	pune := models.Coordinates{Lat: 18.5204, Lng: 73.8567}
	points := []models.Coordinates{mumbai, pune, {Lat: 0, Lng: 0}, {Lat: -33.86, Lng: 151.21}, {Lat: 90, Lng: 0}}

	for _, p := range points {
		if d := HaversineKm(p, p); d != 0 {
			t.Errorf("HaversineKm(p, p) = %v for %+v", d, p)
		}
	}
	for _, a := range points {
		for _, b := range points {
			if ab, ba := HaversineKm(a, b), HaversineKm(b, a); math.Abs(ab-ba) > 1e-9 {
				t.Errorf("asymmetric: %v vs %v", ab, ba)
			}
		}
	}

	// Mumbai to Pune is roughly 120 km as the crow flies.
	if d := HaversineKm(mumbai, pune); d < 115 || d > 125 {
		t.Errorf("Mumbai-Pune = %.1f km", d)
	}
}

func TestRadiusKm(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value float64
		unit  Unit
		want  float64
	}{
		{25, UnitAuto, 25},
		{25000, UnitAuto, 25},
		{1000, UnitAuto, 1000},
		{1500, UnitAuto, 1.5},
		{1500, UnitKilometers, 1500},
		{500, UnitMeters, 0.5},
	}
	for _, tt := range tests {
		if got := RadiusKm(tt.value, tt.unit); got != tt.want {
			t.Errorf("RadiusKm(%v, %q) = %v, want %v", tt.value, tt.unit, got, tt.want)
		}
	}
}

func TestParseUnit(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]Unit{"": UnitAuto, "KM": UnitKilometers, " m ": UnitMeters} {
		if got, ok := ParseUnit(in); !ok || got != want {
			t.Errorf("ParseUnit(%q) = %q, %v", in, got, ok)
		}
	}
	if _, ok := ParseUnit("miles"); ok {
		t.Error("ParseUnit(miles) should fail")
	}
}

func TestFilterAndRank(t *testing.T) {
	t.Parallel()

	center := models.Coordinates{Lat: 19.0760, Lng: 72.8777}
	records := []models.StationRecord{
		{ID: models.FlatID("stations", "far"), Coordinates: models.Coordinates{Lat: 18.5204, Lng: 73.8567}},
		{ID: models.FlatID("stations", "mid"), Coordinates: models.Coordinates{Lat: 19.2183, Lng: 72.9781}},
		{ID: models.FlatID("stations", "here"), Coordinates: center},
		{ID: models.FlatID("stations", "near"), Coordinates: models.Coordinates{Lat: 19.0860, Lng: 72.8877}},
	}

	got := FilterAndRank(records, &center, 25)
	if len(got) != 3 {
		t.Fatalf("FilterAndRank kept %d, want 3", len(got))
	}
	wantOrder := []string{"here", "near", "mid"}
	for i, r := range got {
		if r.ID.DocID() != wantOrder[i] {
			t.Errorf("got[%d] = %s, want %s", i, r.ID.DocID(), wantOrder[i])
		}
		if r.DistanceKm == nil || *r.DistanceKm > 25 {
			t.Errorf("got[%d] distance = %v", i, r.DistanceKm)
		}
		if i > 0 && *got[i-1].DistanceKm > *r.DistanceKm {
			t.Errorf("distances not non-decreasing at %d", i)
		}
	}

	if records[2].DistanceKm != nil {
		t.Error("FilterAndRank must not mutate its input")
	}
}

func TestFilterAndRank_NoCenter(t *testing.T) {
	t.Parallel()

	records := []models.StationRecord{
		{ID: models.FlatID("stations", "b"), Coordinates: models.Coordinates{Lat: 10, Lng: 10}},
		{ID: models.FlatID("stations", "a"), Coordinates: models.Coordinates{Lat: 0, Lng: 0}},
	}
	got := FilterAndRank(records, nil, 1)
	if len(got) != 2 || got[0].ID.DocID() != "b" || got[0].DistanceKm != nil {
		t.Errorf("pass-through changed records: %+v", got)
	}
}

func TestAnnotate(t *testing.T) {
	t.Parallel()

	center := models.Coordinates{Lat: 0, Lng: 0}
	records := []models.StationRecord{
		{ID: models.FlatID("stations", "far"), Coordinates: models.Coordinates{Lat: 40, Lng: 40}},
		{ID: models.FlatID("stations", "near"), Coordinates: models.Coordinates{Lat: 1, Lng: 1}},
	}
	got := Annotate(records, center)
	if len(got) != 2 || got[0].ID.DocID() != "near" || got[1].DistanceKm == nil {
		t.Errorf("Annotate() = %+v", got)
	}
}

func TestCellToken(t *testing.T) {
	t.Parallel()

	a := CellToken(models.Coordinates{Lat: 19.0760, Lng: 72.8777})
	b := CellToken(models.Coordinates{Lat: 19.0760, Lng: 72.8777})
	c := CellToken(models.Coordinates{Lat: 28.6139, Lng: 77.2090})
	if a == "" || a != b {
		t.Errorf("same point should give the same cell: %q vs %q", a, b)
	}
	if a == c {
		t.Errorf("distant points share cell %q", a)
	}
}
