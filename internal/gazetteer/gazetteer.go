// EV Recharge Bunk - Charging Station Discovery
// Copyright 2026 The EV Recharge Bunk Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/thecode94/Electric-Vehicle-Recharge-Bunk

package gazetteer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/thecode94/Electric-Vehicle-Recharge-Bunk-sub001/internal/cache"
	"github.com/thecode94/Electric-Vehicle-Recharge-Bunk-sub001/internal/logging"
	"github.com/thecode94/Electric-Vehicle-Recharge-Bunk-sub001/internal/models"
	"github.com/thecode94/Electric-Vehicle-Recharge-Bunk-sub001/internal/search"
)

// ErrInvalidEntry is returned when a place entry cannot be indexed.
var ErrInvalidEntry = errors.New("invalid gazetteer entry")

// Gazetteer is an immutable place dictionary. Build it once with New, Builtin
// or Load; nothing mutates it afterwards, so it is safe to share.
type Gazetteer struct {
	entries []models.PlaceEntry
	byKey   map[string]int
	terms   *cache.Trie[string]
}

// New indexes entries. Keys must be unique and non-empty, and every entry
// except keywords needs valid coordinates.
func New(entries []models.PlaceEntry) (*Gazetteer, error) {
	g := &Gazetteer{
		entries: make([]models.PlaceEntry, 0, len(entries)),
		byKey:   make(map[string]int, len(entries)),
		terms:   cache.NewTrie[string](25),
	}

	for i := range entries {
		e := clone(&entries[i])
		e.Key = strings.ToLower(strings.TrimSpace(e.Key))
		if e.Kind == "" {
			e.Kind = models.PlaceCity
		}
		if err := validateEntry(&e); err != nil {
			return nil, err
		}
		if _, dup := g.byKey[e.Key]; dup {
			return nil, fmt.Errorf("%w: duplicate key %q", ErrInvalidEntry, e.Key)
		}

		g.byKey[e.Key] = len(g.entries)
		g.entries = append(g.entries, e)
		g.indexTerms(&e)
	}
	return g, nil
}

// Builtin returns the gazetteer of built-in Indian cities and areas.
func Builtin() *Gazetteer {
	g, err := New(builtinEntries())
	if err != nil {
		panic(fmt.Sprintf("gazetteer: invalid built-in entries: %v", err))
	}
	return g
}

// overlay is the YAML shape accepted by Load.
type overlay struct {
	ReplaceBuiltin bool                `koanf:"replace_builtin"`
	Places         []models.PlaceEntry `koanf:"places"`
}

// Load returns the built-in gazetteer with the YAML file at path layered on
// top. Overlay entries replace built-ins with the same key and are appended
// otherwise; replace_builtin: true drops the built-ins entirely. An empty
// path yields Builtin().
func Load(path string) (*Gazetteer, error) {
	if path == "" {
		return Builtin(), nil
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("load gazetteer overlay %s: %w", path, err)
	}

	var ov overlay
	if err := k.Unmarshal("", &ov); err != nil {
		return nil, fmt.Errorf("unmarshal gazetteer overlay: %w", err)
	}

	var entries []models.PlaceEntry
	if !ov.ReplaceBuiltin {
		entries = builtinEntries()
	}
	entries = merge(entries, ov.Places)

	g, err := New(entries)
	if err != nil {
		return nil, err
	}

	logging.Info().
		Str("path", path).
		Int("overlay_entries", len(ov.Places)).
		Bool("replace_builtin", ov.ReplaceBuiltin).
		Int("entries", g.Len()).
		Msg("Gazetteer loaded")
	return g, nil
}

// merge replaces base entries by key and appends new ones in overlay order.
func merge(base, extra []models.PlaceEntry) []models.PlaceEntry {
	idx := make(map[string]int, len(base))
	for i := range base {
		idx[strings.ToLower(base[i].Key)] = i
	}
	for i := range extra {
		key := strings.ToLower(strings.TrimSpace(extra[i].Key))
		if j, ok := idx[key]; ok {
			base[j] = extra[i]
			continue
		}
		idx[key] = len(base)
		base = append(base, extra[i])
	}
	return base
}

func validateEntry(e *models.PlaceEntry) error {
	if e.Key == "" {
		return fmt.Errorf("%w: empty key", ErrInvalidEntry)
	}
	switch e.Kind {
	case models.PlaceCity, models.PlaceArea:
		if e.Coordinates == nil || !e.Coordinates.Valid() {
			return fmt.Errorf("%w: %q needs valid coordinates", ErrInvalidEntry, e.Key)
		}
	case models.PlaceKeyword:
		e.Coordinates = nil
	default:
		return fmt.Errorf("%w: %q has unknown kind %q", ErrInvalidEntry, e.Key, e.Kind)
	}
	if e.DisplayName == "" {
		e.DisplayName = e.Key
	}
	return nil
}

// indexTerms adds the entry's key, display name and aliases to the
// suggestion trie. Cities outrank areas.
func (g *Gazetteer) indexTerms(e *models.PlaceEntry) {
	if e.Kind == models.PlaceKeyword {
		return
	}
	weight := 1
	if e.Kind == models.PlaceCity {
		weight = 2
	}
	g.terms.Insert(search.Fold(e.Key), e.DisplayName, weight)
	g.terms.Insert(search.Fold(e.DisplayName), e.DisplayName, weight)
	for _, a := range e.Aliases {
		g.terms.Insert(search.Fold(a), e.DisplayName, weight)
	}
}

// Len returns the number of entries.
func (g *Gazetteer) Len() int { return len(g.entries) }

// Entries returns a copy of every entry in index order.
func (g *Gazetteer) Entries() []models.PlaceEntry {
	out := make([]models.PlaceEntry, len(g.entries))
	for i := range g.entries {
		out[i] = clone(&g.entries[i])
	}
	return out
}

// Get returns the entry with the given key.
func (g *Gazetteer) Get(key string) (models.PlaceEntry, bool) {
	i, ok := g.byKey[strings.ToLower(strings.TrimSpace(key))]
	if !ok {
		return models.PlaceEntry{}, false
	}
	return clone(&g.entries[i]), true
}

func clone(e *models.PlaceEntry) models.PlaceEntry {
	c := *e
	if e.Coordinates != nil {
		pt := *e.Coordinates
		c.Coordinates = &pt
	}
	c.Aliases = append([]string(nil), e.Aliases...)
	c.Landmarks = append([]string(nil), e.Landmarks...)
	return c
}
