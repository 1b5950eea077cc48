// EV Recharge Bunk - Charging Station Discovery
// Copyright 2026 The EV Recharge Bunk Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/thecode94/Electric-Vehicle-Recharge-Bunk

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics for the discovery service:
// - API endpoint latency and throughput
// - Per-source fetch outcomes and latency
// - Pipeline stage record counts
// - Circuit breaker state

// Source fetch outcomes used as the "outcome" label.
const (
	OutcomeSuccess  = "success"
	OutcomeFailure  = "failure"
	OutcomeTimeout  = "timeout"
	OutcomeRejected = "rejected" // breaker open
)

// Pipeline stages used as the "stage" label.
const (
	StageFetched            = "fetched"
	StageNormalized         = "normalized"
	StageDroppedCoordinates = "dropped_coordinates"
	StageDeduped            = "deduped"
	StageReturned           = "returned"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Source Aggregation Metrics
	SourceFetchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "discovery_source_fetch_total",
			Help: "Total number of source fetches by outcome",
		},
		[]string{"source", "outcome"},
	)

	SourceFetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "discovery_source_fetch_duration_seconds",
			Help:    "Duration of a single source fetch in seconds",
			Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 15},
		},
		[]string{"source"},
	)

	SourceDocuments = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "discovery_source_documents",
			Help:    "Documents returned by a single source fetch",
			Buckets: prometheus.ExponentialBuckets(1, 4, 7), // 1 .. 4096
		},
		[]string{"source"},
	)

	AggregationTotalFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "discovery_aggregation_total_failures_total",
			Help: "Aggregations in which every configured source failed",
		},
	)

	// Pipeline Metrics
	PipelineRecords = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "discovery_pipeline_records_total",
			Help: "Records observed at each discovery pipeline stage",
		},
		[]string{"stage"},
	)

	DedupeCollapsed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "discovery_dedupe_collapsed_total",
			Help: "Records dropped as duplicates of an earlier fingerprint",
		},
	)

	PlaceResolutions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "discovery_place_resolutions_total",
			Help: "Place resolutions by match kind (none when nothing matched)",
		},
		[]string{"match_kind"},
	)

	DiscoveryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "discovery_operation_duration_seconds",
			Help:    "End-to-end duration of discovery operations",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordSourceFetch records the outcome of one source fetch.
func RecordSourceFetch(source, outcome string, duration time.Duration, documents int) {
	SourceFetchTotal.WithLabelValues(source, outcome).Inc()
	SourceFetchDuration.WithLabelValues(source).Observe(duration.Seconds())
	if outcome == OutcomeSuccess {
		SourceDocuments.WithLabelValues(source).Observe(float64(documents))
	}
}

// RecordPipelineStage adds n records to the given stage counter.
func RecordPipelineStage(stage string, n int) {
	if n <= 0 {
		return
	}
	PipelineRecords.WithLabelValues(stage).Add(float64(n))
}

// RecordDedupeCollapsed counts records removed by the deduplicator.
func RecordDedupeCollapsed(n int) {
	if n > 0 {
		DedupeCollapsed.Add(float64(n))
	}
}

// RecordPlaceResolution counts a place lookup by its match kind.
func RecordPlaceResolution(matchKind string) {
	if matchKind == "" {
		matchKind = "none"
	}
	PlaceResolutions.WithLabelValues(matchKind).Inc()
}

// RecordDiscoveryOperation observes the duration of a facade operation.
func RecordDiscoveryOperation(operation string, duration time.Duration) {
	DiscoveryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordBreakerResult counts a call routed through a circuit breaker.
func RecordBreakerResult(name, result string) {
	CircuitBreakerRequests.WithLabelValues(name, result).Inc()
}
