// EV Recharge Bunk - Charging Station Discovery
// Copyright 2026 The EV Recharge Bunk Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/thecode94/Electric-Vehicle-Recharge-Bunk

/*
Package metrics provides Prometheus metrics collection and export for observability.

All collectors are registered with the default registry through promauto and
exposed at /metrics in Prometheus text format:

	curl http://localhost:8080/metrics

# Available Metrics

HTTP Metrics:
  - api_requests_total{method,endpoint,status_code}
  - api_request_duration_seconds{method,endpoint}
  - api_active_requests
  - api_rate_limit_hits_total{endpoint}

Source Aggregation:
  - discovery_source_fetch_total{source,outcome}: outcome is success, failure, timeout or rejected
  - discovery_source_fetch_duration_seconds{source}
  - discovery_source_documents{source}
  - discovery_aggregation_total_failures_total

Pipeline:
  - discovery_pipeline_records_total{stage}: fetched, normalized, dropped_coordinates, deduped, returned
  - discovery_dedupe_collapsed_total
  - discovery_place_resolutions_total{match_kind}
  - discovery_operation_duration_seconds{operation}

Circuit Breakers (one per source):
  - circuit_breaker_state{name}: 0=closed, 1=half-open, 2=open
  - circuit_breaker_requests_total{name,result}
  - circuit_breaker_consecutive_failures{name}
  - circuit_breaker_state_transitions_total{name,from_state,to_state}

# Example Alert

	- alert: StationSourceDown
	  expr: circuit_breaker_state == 2
	  for: 5m
	  annotations:
	    summary: "Station source {{ $labels.name }} circuit is open"

# Thread Safety

All recording helpers are safe for concurrent use.
*/
package metrics
