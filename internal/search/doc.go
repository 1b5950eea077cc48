// EV Recharge Bunk - Charging Station Discovery
// Copyright 2026 The EV Recharge Bunk Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/thecode94/Electric-Vehicle-Recharge-Bunk

/*
Package search implements free-text relevance for station discovery.

All comparisons run on folded text (see Fold): ASCII transliteration via
go-unidecode, lower case, punctuation collapsed to single spaces.

Places are graded by the first tier that applies:

	100  query equals the key
	 80  query and key contain one another
	 70  query occurs in the display name
	 60  query and an alias contain one another
	 50  query and a landmark contain one another
	 30  query occurs in the region label

Rank sorts by score, stable for ties, and skips keyword entries, which carry
no coordinates; Hints returns those separately. Stations are not graded:
MatchStation is a plain substring test over name, address, city and area.
*/
package search
