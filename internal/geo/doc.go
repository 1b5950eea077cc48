// EV Recharge Bunk - Charging Station Discovery
// Copyright 2026 The EV Recharge Bunk Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/thecode94/Electric-Vehicle-Recharge-Bunk

// Package geo holds the geographic pieces of station discovery: the
// coordinate normalizer chain that reads {lat, lng} out of differently shaped
// documents, great-circle distance on top of golang/geo s2, radius unit
// handling, and the radius filter that ranks records by distance.
package geo
