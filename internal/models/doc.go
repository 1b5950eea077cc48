// EV Recharge Bunk - Charging Station Discovery
// Copyright 2026 The EV Recharge Bunk Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/thecode94/Electric-Vehicle-Recharge-Bunk

// Package models defines the data types exchanged between the discovery
// pipeline stages and the HTTP layer.
//
// StationRecord is the normalized, transient unit the engine operates on. It is
// rebuilt from source documents on every call and never written back. PlaceEntry
// is a gazetteer entry used to turn a free-text query into a reference point.
package models
