// EV Recharge Bunk - Charging Station Discovery
// Copyright 2026 The EV Recharge Bunk Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/thecode94/Electric-Vehicle-Recharge-Bunk

package search

import (
	"sort"

	"github.com/thecode94/Electric-Vehicle-Recharge-Bunk-sub001/internal/models"
)

// Score tiers for place matching.
const (
	ScoreExact       = 100
	ScoreSubstring   = 80
	ScoreDisplayName = 70
	ScoreAlias       = 60
	ScoreLandmark    = 50
	ScoreRegion      = 30
)

// Match is a scored place.
type Match struct {
	Entry *models.PlaceEntry
	Score int
	Kind  models.MatchKind
}

// Score rates how well query matches entry. The highest applicable tier wins;
// 0 with MatchNone means no match.
func Score(query string, entry *models.PlaceEntry) (int, models.MatchKind) {
	return scoreFolded(Fold(query), entry)
}

func scoreFolded(q string, entry *models.PlaceEntry) (int, models.MatchKind) {
	if q == "" || entry == nil {
		return 0, models.MatchNone
	}

	key := Fold(entry.Key)
	switch {
	case q == key:
		return ScoreExact, models.MatchExact
	case eitherContains(key, q):
		return ScoreSubstring, models.MatchSubstring
	case contains(Fold(entry.DisplayName), q):
		return ScoreDisplayName, models.MatchDisplayName
	case anyEither(entry.Aliases, q):
		return ScoreAlias, models.MatchAlias
	case anyEither(entry.Landmarks, q):
		return ScoreLandmark, models.MatchLandmark
	case contains(Fold(entry.RegionLabel), q):
		return ScoreRegion, models.MatchRegion
	}
	return 0, models.MatchNone
}

func anyEither(values []string, q string) bool {
	for _, v := range values {
		if eitherContains(Fold(v), q) {
			return true
		}
	}
	return false
}

// Rank scores every coordinate-bearing entry against query and returns the
// matches by descending score. Ties keep the order of entries. Keyword
// entries are skipped; see Hints.
func Rank(query string, entries []models.PlaceEntry) []Match {
	q := Fold(query)
	var out []Match
	for i := range entries {
		e := &entries[i]
		if e.Kind == models.PlaceKeyword || !e.HasCoordinates() {
			continue
		}
		if score, kind := scoreFolded(q, e); score > 0 {
			out = append(out, Match{Entry: e, Score: score, Kind: kind})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out
}

// Hints returns keyword entries matching query, best first.
func Hints(query string, entries []models.PlaceEntry) []Match {
	q := Fold(query)
	var out []Match
	for i := range entries {
		e := &entries[i]
		if e.Kind != models.PlaceKeyword {
			continue
		}
		if score, kind := scoreFolded(q, e); score > 0 {
			out = append(out, Match{Entry: e, Score: score, Kind: kind})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out
}
