// EV Recharge Bunk - Charging Station Discovery
// Copyright 2026 The EV Recharge Bunk Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/thecode94/Electric-Vehicle-Recharge-Bunk

package gazetteer

import (
	"strings"

	"github.com/thecode94/Electric-Vehicle-Recharge-Bunk-sub001/internal/models"
	"github.com/thecode94/Electric-Vehicle-Recharge-Bunk-sub001/internal/search"
)

// AnchorScore is reported for matches that came from the city anchor fallback.
const AnchorScore = 10

// minPrefix is the shortest prefix tried when autocompleting suggestions.
const minPrefix = 2

// Resolution is a resolved place. Alternatives holds the next best
// coordinate-bearing matches, best first.
type Resolution struct {
	Entry        models.PlaceEntry
	Score        int
	Kind         models.MatchKind
	Alternatives []models.PlaceEntry
}

// Resolve finds the best place for query. When nothing in the gazetteer
// matches it falls back to the city anchors. It returns false when both fail.
func (g *Gazetteer) Resolve(query string, alternatives int) (Resolution, bool) {
	if matches := search.Rank(query, g.entries); len(matches) > 0 {
		res := Resolution{
			Entry: clone(matches[0].Entry),
			Score: matches[0].Score,
			Kind:  matches[0].Kind,
		}
		for _, m := range matches[1:] {
			if len(res.Alternatives) >= alternatives {
				break
			}
			res.Alternatives = append(res.Alternatives, clone(m.Entry))
		}
		return res, true
	}

	if a, ok := matchAnchor(search.Fold(query)); ok {
		c := a.coords
		return Resolution{
			Entry: models.PlaceEntry{
				Key:         a.name,
				DisplayName: anchorDisplay(a),
				Address:     a.address,
				Coordinates: &c,
				Aliases:     append([]string(nil), a.aliases...),
				Kind:        models.PlaceCity,
			},
			Score: AnchorScore,
			Kind:  models.MatchAnchor,
		}, true
	}
	return Resolution{}, false
}

// Hint returns the display name of the best keyword entry matching query,
// or "" when none matches.
func (g *Gazetteer) Hint(query string) string {
	if hints := search.Hints(query, g.entries); len(hints) > 0 {
		return hints[0].Entry.DisplayName
	}
	return ""
}

// Suggest proposes up to limit place names for a query that did not resolve:
// keyword hints first, then autocompletions of the query and of each of its
// words using progressively shorter prefixes, then anchor cities.
func (g *Gazetteer) Suggest(query string, limit int) []string {
	if limit <= 0 {
		return nil
	}

	seen := make(map[string]struct{})
	var out []string
	add := func(s string) bool {
		if s == "" {
			return len(out) >= limit
		}
		if _, dup := seen[s]; !dup {
			seen[s] = struct{}{}
			out = append(out, s)
		}
		return len(out) >= limit
	}

	for _, h := range search.Hints(query, g.entries) {
		if add(h.Entry.DisplayName) {
			return out
		}
	}

	q := search.Fold(query)
	candidates := []string{q}
	if words := strings.Fields(q); len(words) > 1 {
		candidates = append(candidates, words...)
	}
	for _, c := range candidates {
		for n := len(c); n >= minPrefix; n-- {
			completions := g.terms.Complete(c[:n], limit)
			if len(completions) == 0 {
				continue
			}
			for _, r := range completions {
				if add(r.Value) {
					return out
				}
			}
			break
		}
	}

	for i := range cityAnchors {
		if add(anchorDisplay(&cityAnchors[i])) {
			return out
		}
	}
	return out
}

// matchAnchor finds an anchor whose name or alias is the query or a whole
// word sequence inside it.
func matchAnchor(q string) (*anchor, bool) {
	if q == "" {
		return nil, false
	}
	padded := " " + q + " "
	for i := range cityAnchors {
		a := &cityAnchors[i]
		for _, name := range append([]string{a.name}, a.aliases...) {
			if strings.Contains(padded, " "+name+" ") {
				return a, true
			}
		}
	}
	return nil, false
}

func anchorDisplay(a *anchor) string {
	name, _, _ := strings.Cut(a.address, ",")
	return name
}
