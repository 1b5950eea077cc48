// EV Recharge Bunk - Charging Station Discovery
// Copyright 2026 The EV Recharge Bunk Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/thecode94/Electric-Vehicle-Recharge-Bunk

package search

import (
	"testing"

	"github.com/thecode94/Electric-Vehicle-Recharge-Bunk-sub001/internal/models"
)

func TestFold(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"":                        "",
		"Mumbai":                  "mumbai",
		"  Bandra–Kurla Complex ": "bandra kurla complex",
		"Bengalūru":               "bengaluru",
		"MG-Road, #12":            "mg road 12",
		"...":                     "",
	}
	for in, want := range tests {
		if got := Fold(in); got != want {
			t.Errorf("Fold(%q) = %q, want %q", in, got, want)
		}
	}
}

func mumbai() models.PlaceEntry {
	return models.PlaceEntry{
		Key:         "mumbai",
		DisplayName: "Mumbai, Maharashtra",
		Coordinates: &models.Coordinates{Lat: 19.0760, Lng: 72.8777},
		Aliases:     []string{"bombay", "mumbai city"},
		Landmarks:   []string{"gateway of india", "marine drive"},
		RegionLabel: "Maharashtra",
		Kind:        models.PlaceCity,
	}
}

func TestScore(t *testing.T) {
	t.Parallel()

	entry := mumbai()
	tests := []struct {
		query     string
		wantScore int
		wantKind  models.MatchKind
	}{
		{"Mumbai", ScoreExact, models.MatchExact},
		{"mumb", ScoreSubstring, models.MatchSubstring},
		{"navi mumbai", ScoreSubstring, models.MatchSubstring},
		{"maharashtra", ScoreDisplayName, models.MatchDisplayName},
		{"Bombay", ScoreAlias, models.MatchAlias},
		{"old bombay", ScoreAlias, models.MatchAlias},
		{"Gateway", ScoreLandmark, models.MatchLandmark},
		{"delhi", 0, models.MatchNone},
		{"   ", 0, models.MatchNone},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			score, kind := Score(tt.query, &entry)
			if score != tt.wantScore || kind != tt.wantKind {
				t.Errorf("Score(%q) = (%d, %q), want (%d, %q)", tt.query, score, kind, tt.wantScore, tt.wantKind)
			}
		})
	}
}

func TestScore_RegionTier(t *testing.T) {
	t.Parallel()

	entry := models.PlaceEntry{Key: "whitefield", DisplayName: "Whitefield", RegionLabel: "East Bengaluru", Kind: models.PlaceArea}
	if score, kind := Score("east", &entry); score != ScoreRegion || kind != models.MatchRegion {
		t.Errorf("Score(east) = (%d, %q)", score, kind)
	}
	if score, _ := Score("x", nil); score != 0 {
		t.Error("nil entry should not match")
	}
}

func TestRank(t *testing.T) {
	t.Parallel()

	entries := []models.PlaceEntry{
		{Key: "navi-mumbai", DisplayName: "Navi Mumbai", Coordinates: &models.Coordinates{Lat: 19.033, Lng: 73.0297}, Kind: models.PlaceArea},
		mumbai(),
		{Key: "thane", DisplayName: "Thane", Coordinates: &models.Coordinates{Lat: 19.2183, Lng: 72.9781}, RegionLabel: "Mumbai Metropolitan Region", Kind: models.PlaceCity},
		{Key: "mumbai-charging", DisplayName: "Mumbai charging", Kind: models.PlaceKeyword},
		{Key: "mumbai-ghost", DisplayName: "No coords", Kind: models.PlaceArea},
	}

	got := Rank("mumbai", entries)
	if len(got) != 3 {
		t.Fatalf("Rank() returned %d matches, want 3", len(got))
	}
	wantKeys := []string{"mumbai", "navi-mumbai", "thane"}
	for i, m := range got {
		if m.Entry.Key != wantKeys[i] {
			t.Errorf("got[%d] = %s, want %s", i, m.Entry.Key, wantKeys[i])
		}
		if i > 0 && got[i-1].Score < m.Score {
			t.Errorf("scores not descending at %d", i)
		}
	}

	hints := Hints("mumbai", entries)
	if len(hints) != 1 || hints[0].Entry.Key != "mumbai-charging" {
		t.Errorf("Hints() = %+v", hints)
	}
}

func TestRank_StableTies(t *testing.T) {
	t.Parallel()

	c := &models.Coordinates{Lat: 1, Lng: 1}
	entries := []models.PlaceEntry{
		{Key: "sector-1", Coordinates: c, Kind: models.PlaceArea},
		{Key: "sector-2", Coordinates: c, Kind: models.PlaceArea},
		{Key: "sector-3", Coordinates: c, Kind: models.PlaceArea},
	}
	got := Rank("sector", entries)
	for i, m := range got {
		if m.Entry.Key != entries[i].Key {
			t.Errorf("tie order changed: got[%d] = %s", i, m.Entry.Key)
		}
	}
}

func TestMatchStation(t *testing.T) {
	t.Parallel()

	rec := models.StationRecord{Name: "Central EV Hub", Address: "12 Linking Road", City: "Mumbai", Area: "Bāndra West"}
	tests := []struct {
		query string
		want  bool
	}{
		{"central", true},
		{"LINKING", true},
		{"mumbai", true},
		{"bandra", true},
		{"pune", false},
		{"", true},
	}
	for _, tt := range tests {
		if got := MatchStation(tt.query, &rec); got != tt.want {
			t.Errorf("MatchStation(%q) = %v, want %v", tt.query, got, tt.want)
		}
	}
}

func TestFilterStations(t *testing.T) {
	t.Parallel()

	records := []models.StationRecord{
		{ID: models.FlatID("stations", "a"), Name: "Andheri Fast Charge"},
		{ID: models.FlatID("stations", "b"), Name: "Pune Plug", City: "Pune"},
		{ID: models.FlatID("stations", "c"), Name: "Metro", Area: "Andheri East"},
	}
	got := FilterStations("andheri", records)
	if len(got) != 2 || got[0].ID.DocID() != "a" || got[1].ID.DocID() != "c" {
		t.Errorf("FilterStations() = %+v", got)
	}
	if got := FilterStations("  ", records); len(got) != 3 {
		t.Errorf("blank query kept %d, want 3", len(got))
	}
}
