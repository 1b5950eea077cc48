// EV Recharge Bunk - Charging Station Discovery
// Copyright 2026 The EV Recharge Bunk Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/thecode94/Electric-Vehicle-Recharge-Bunk

package models

// PlaceKind classifies gazetteer entries.
type PlaceKind string

const (
	PlaceCity    PlaceKind = "city"
	PlaceArea    PlaceKind = "area"
	PlaceKeyword PlaceKind = "keyword"
)

// PlaceEntry is a static gazetteer entry. Keyword entries carry no coordinates
// and never seed a geo filter; they only produce search hints.
type PlaceEntry struct {
	Key         string       `json:"key" koanf:"key"`
	DisplayName string       `json:"displayName" koanf:"display_name"`
	Address     string       `json:"address,omitempty" koanf:"address"`
	Coordinates *Coordinates `json:"coordinates,omitempty" koanf:"coordinates"`
	Aliases     []string     `json:"aliases,omitempty" koanf:"aliases"`
	Landmarks   []string     `json:"landmarks,omitempty" koanf:"landmarks"`
	RegionLabel string       `json:"regionLabel,omitempty" koanf:"region_label"`
	Kind        PlaceKind    `json:"kind" koanf:"kind"`
}

// HasCoordinates reports whether the entry can seed a geo filter.
func (p *PlaceEntry) HasCoordinates() bool {
	return p.Kind != PlaceKeyword && p.Coordinates != nil && p.Coordinates.Valid()
}

// MatchKind names the rule that matched a query against a place.
type MatchKind string

const (
	MatchNone        MatchKind = ""
	MatchExact       MatchKind = "exact"
	MatchSubstring   MatchKind = "substring"
	MatchDisplayName MatchKind = "display_name"
	MatchAlias       MatchKind = "alias"
	MatchLandmark    MatchKind = "landmark"
	MatchRegion      MatchKind = "region"
	MatchAnchor      MatchKind = "anchor"
)

// LocationResult is the location payload returned by place resolution.
type LocationResult struct {
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	Lat         float64   `json:"lat"`
	Lng         float64   `json:"lng"`
	Key         string    `json:"key,omitempty"`
	MatchKind   MatchKind `json:"matchKind"`
	Score       int       `json:"score"`
	Hint        string    `json:"hint,omitempty"`
	Suggestions []string  `json:"suggestions,omitempty"`
}
