// EV Recharge Bunk - Charging Station Discovery
// Copyright 2026 The EV Recharge Bunk Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/thecode94/Electric-Vehicle-Recharge-Bunk

/*
Package middleware provides HTTP middleware components for the discovery API.

Key Components:

  - RequestID: UUID-based request tracking; seeds request_id and correlation_id for logging
  - AccessLog: one structured zerolog line per request, level derived from status
  - PrometheusMetrics: request count, latency and in-flight gauge labelled by chi route pattern

All three use the http.HandlerFunc shape and are adapted to chi with a small
wrapper in the api package:

	r.Use(chiMiddleware(middleware.RequestID))
	r.Use(chiMiddleware(middleware.AccessLog))
	r.Use(chiMiddleware(middleware.PrometheusMetrics))
*/
package middleware
