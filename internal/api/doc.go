// EV Recharge Bunk - Charging Station Discovery
// Copyright 2026 The EV Recharge Bunk Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/thecode94/Electric-Vehicle-Recharge-Bunk

/*
Package api provides the HTTP REST API for charging station discovery.

Routes (all GET):

	/api/v1/health/live          liveness probe
	/api/v1/health/ready         readiness probe (document store ping)
	/api/v1/stations/nearby      lat, lng, radius, unit, q, limit, active_only
	/api/v1/stations/search      q, lat, lng, radius, unit, limit, active_only
	/api/v1/stations/near-place  q, radius, unit, limit, active_only
	/api/v1/places/locate        q
	/api/v1/admin/geo-debug      lat, lng (optional)
	/metrics                     Prometheus exposition

Every JSON response uses the models.APIResponse envelope. When some sources
failed, metadata.degraded is true and metadata.sources_failed lists them.

Error codes:

  - VALIDATION_ERROR (400): malformed or out-of-range parameters
  - NOT_FOUND (404): unknown place; error.details.suggestions lists
    "did you mean" names
  - UPSTREAM_UNAVAILABLE (503): every source failed and strict aggregation
    is enabled
  - TOO_MANY_REQUESTS (429): rate limit exceeded
  - INTERNAL_ERROR (500): anything else

Middleware, outermost first: request ID, real IP, panic recovery, CORS,
access log, then per-route rate limiting, security headers and request
metrics.
*/
package api
