// EV Recharge Bunk - Charging Station Discovery
// Copyright 2026 The EV Recharge Bunk Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/thecode94/Electric-Vehicle-Recharge-Bunk

package geo

import (
	"strings"

	"github.com/golang/geo/s2"

	"github.com/thecode94/Electric-Vehicle-Recharge-Bunk-sub001/internal/models"
)

const earthRadiusKm = 6371.0

// meterThreshold is the largest radius value still read as kilometers when
// no unit is given.
const meterThreshold = 1000.0

// cellLevel is the S2 level used for diagnostic cell tokens (~600m cells).
const cellLevel = 14

// HaversineKm returns the great-circle distance between a and b in kilometers.
func HaversineKm(a, b models.Coordinates) float64 {
	la := s2.LatLngFromDegrees(a.Lat, a.Lng)
	lb := s2.LatLngFromDegrees(b.Lat, b.Lng)
	return la.Distance(lb).Radians() * earthRadiusKm
}

// Unit is a radius unit supplied by the caller.
type Unit string

const (
	UnitAuto       Unit = ""
	UnitKilometers Unit = "km"
	UnitMeters     Unit = "m"
)

// ParseUnit accepts "", "km" or "m" in any case.
func ParseUnit(s string) (Unit, bool) {
	switch u := Unit(strings.ToLower(strings.TrimSpace(s))); u {
	case UnitAuto, UnitKilometers, UnitMeters:
		return u, true
	default:
		return UnitAuto, false
	}
}

// RadiusKm converts a caller radius to kilometers. With UnitAuto, values
// above 1000 are taken as meters.
func RadiusKm(value float64, unit Unit) float64 {
	switch unit {
	case UnitMeters:
		return value / 1000
	case UnitKilometers:
		return value
	default:
		if value > meterThreshold {
			return value / 1000
		}
		return value
	}
}

// CellToken returns the S2 cell token containing c.
func CellToken(c models.Coordinates) string {
	ll := s2.LatLngFromDegrees(c.Lat, c.Lng)
	return s2.CellIDFromLatLng(ll).Parent(cellLevel).ToToken()
}
