// EV Recharge Bunk - Charging Station Discovery
// Copyright 2026 The EV Recharge Bunk Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/thecode94/Electric-Vehicle-Recharge-Bunk

package docstore

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/goccy/go-json"

	"github.com/thecode94/Electric-Vehicle-Recharge-Bunk-sub001/internal/logging"
)

// Seed loads a JSON fixture of the form {"<path>": {...}, ...} into store.
// Paths are written in sorted order; the first bad path or write aborts the
// load and reports how many documents were written before it.
func Seed(ctx context.Context, store Store, r io.Reader) (int, error) {
	var fixture map[string]map[string]interface{}
	if err := json.NewDecoder(r).Decode(&fixture); err != nil {
		return 0, fmt.Errorf("decode seed fixture: %w", err)
	}

	paths := make([]string, 0, len(fixture))
	for p := range fixture {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	for i, p := range paths {
		if err := store.Put(ctx, p, fixture[p]); err != nil {
			return i, fmt.Errorf("seed %s: %w", p, err)
		}
	}
	return len(paths), nil
}

// SeedFile opens path and seeds store from it.
func SeedFile(ctx context.Context, store Store, path string) error {
	f, err := os.Open(path) //nolint:gosec // operator-supplied fixture path
	if err != nil {
		return fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()

	n, err := Seed(ctx, store, f)
	if err != nil {
		return err
	}

	logging.Info().
		Str("file", path).
		Int("documents", n).
		Msg("Document store seeded")
	return nil
}
