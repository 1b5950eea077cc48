// EV Recharge Bunk - Charging Station Discovery
// Copyright 2026 The EV Recharge Bunk Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/thecode94/Electric-Vehicle-Recharge-Bunk

/*
Package gazetteer resolves free-text place queries into coordinates.

The gazetteer is built once at startup and never mutated. Builtin covers the
Indian metros, their satellite cities and a handful of well-known areas, plus
keyword entries ("charger", "expressway") that carry no coordinates and only
produce hints. Load layers an optional YAML file on top using koanf:

	replace_builtin: false
	places:
	  - key: vashi
	    display_name: Vashi
	    kind: area
	    region_label: Navi Mumbai
	    coordinates: {lat: 19.0771, lng: 72.9986}
	    aliases: [vashi node]

Resolve ranks entries with package search and returns the best match with
its runners-up. When nothing matches it falls back to a small fixed set of
city anchors. Suggest builds "did you mean" lists from keyword hints, a
prefix trie over keys, display names and aliases, and the anchors.
*/
package gazetteer
