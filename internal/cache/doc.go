// EV Recharge Bunk - Charging Station Discovery
// Copyright 2026 The EV Recharge Bunk Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/thecode94/Electric-Vehicle-Recharge-Bunk

// Package cache provides in-memory lookup structures shared by the lookup
// layers. Trie serves exact and prefix lookups over normalized place terms
// for the gazetteer's resolution and suggestion paths.
package cache
