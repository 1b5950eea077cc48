// EV Recharge Bunk - Charging Station Discovery
// Copyright 2026 The EV Recharge Bunk Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/thecode94/Electric-Vehicle-Recharge-Bunk

/*
Package discovery is the query facade over the station pipeline.

Every station operation runs one fresh pass:

	aggregate (all sources, concurrently, breaker-guarded)
	  -> normalize (coordinate extraction, defaults)
	  -> dedupe (rounded coordinates + name)
	  -> operation-specific filter and rank
	  -> active filter, limit

Operations:

  - Nearby: radius search around a point, nearest first.
  - TextSearch: substring search over name, address, city and area, with
    optional distance annotation.
  - LocatePlace: free-text place resolution through the gazetteer and the
    city anchors.
  - NearPlace: LocatePlace followed by Nearby.
  - Diagnose: per-source provenance report for the admin geo-debug endpoint.

# Degraded results

A failing source never fails a query. Its name is reported in
StationResult.SourcesFailed and Degraded is set. When every source fails the
result is empty and degraded, unless Options.StrictAggregation is set, in
which case ErrTotalAggregationFailure is returned.

# Errors

Argument problems wrap ErrInvalidArgument. Unknown places return a
*NotFoundError that satisfies errors.Is(err, ErrNotFound).
*/
package discovery
