// EV Recharge Bunk - Charging Station Discovery
// Copyright 2026 The EV Recharge Bunk Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/thecode94/Electric-Vehicle-Recharge-Bunk

/*
Package aggregate pulls candidate station documents out of every configured
source and merges them into one provenance-tagged set.

Sources are flat collections ("stations") or collection groups
("owners/{ownerId}/stations"). Each is fetched in its own errgroup goroutine, bounded
by a page-size cap and a per-source timeout, and guarded by a sony/gobreaker
circuit breaker so a source that keeps failing is skipped quickly:

	agg := aggregate.New(store, aggregate.DescriptorsFromConfig(&cfg.Discovery), cfg.Breaker, cfg.Discovery.MaxConcurrency)
	outcome := agg.Aggregate(ctx)
	records, dropped := aggregate.Normalize(outcome.Records, geo.DefaultNormalizer())

Per-source failures are logged and recorded in Outcome.Results. They never
fail the call; when every source fails the outcome is simply empty and
AllFailed reports true.

Identity follows models.RecordID: flat documents keep their native id,
nested documents are qualified as <owner>/<subcollection>/<docId>. The merge
walks sources in configuration order and keeps the first copy of each id.
*/
package aggregate
