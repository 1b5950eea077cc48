// EV Recharge Bunk - Charging Station Discovery
// Copyright 2026 The EV Recharge Bunk Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/thecode94/Electric-Vehicle-Recharge-Bunk

/*
Package docstore provides the collection-oriented document store that station
discovery reads from.

Documents are addressed by slash-separated paths with at most one level of
nesting:

	stations/s1                     top-level document in "stations"
	owners/ownerA/stations/s1       document in the "stations" sub-collection of owner ownerA

Store exposes exactly what discovery needs: a capped Query over a flat
collection or a collection group (every sub-collection with a given name,
regardless of parent), an optional equality FieldFilter, and Get by path.
Put exists for seeding and tests; the discovery pipeline never writes.

BadgerStore is the production backend. Its key layout is:

	doc:<path>              JSON-encoded document body
	grp:<sub>:<path>        empty marker used by collection-group scans

Iteration follows badger key order, so a capped query always returns the same
documents for the same data.
*/
package docstore
