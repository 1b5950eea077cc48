// EV Recharge Bunk - Charging Station Discovery
// Copyright 2026 The EV Recharge Bunk Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/thecode94/Electric-Vehicle-Recharge-Bunk

package metrics

import (
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

// TestRecordAPIRequest tests API request metric recording
func TestRecordAPIRequest(t *testing.T) {
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/v1/stations/nearby", "200"))

	RecordAPIRequest("GET", "/api/v1/stations/nearby", "200", 15*time.Millisecond)
	RecordAPIRequest("GET", "/api/v1/stations/nearby", "200", 20*time.Millisecond)

	after := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/v1/stations/nearby", "200"))
	if after-before != 2 {
		t.Errorf("api_requests_total delta = %v, want 2", after-before)
	}
}

// TestTrackActiveRequest tests active request gauge tracking
func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)

	TrackActiveRequest(true)
	TrackActiveRequest(true)
	if got := testutil.ToFloat64(APIActiveRequests) - before; got != 2 {
		t.Errorf("active delta after two increments = %v, want 2", got)
	}

	TrackActiveRequest(false)
	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests) - before; got != 0 {
		t.Errorf("active delta after decrements = %v, want 0", got)
	}
}

func TestRecordSourceFetch(t *testing.T) {
	tests := []struct {
		name    string
		outcome string
		docs    int
	}{
		{"success", OutcomeSuccess, 12},
		{"failure", OutcomeFailure, 0},
		{"timeout", OutcomeTimeout, 0},
		{"rejected", OutcomeRejected, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := SourceFetchTotal.WithLabelValues("test-source", tt.outcome)
			before := testutil.ToFloat64(c)
			RecordSourceFetch("test-source", tt.outcome, 3*time.Millisecond, tt.docs)
			if got := testutil.ToFloat64(c) - before; got != 1 {
				t.Errorf("fetch counter delta = %v, want 1", got)
			}
		})
	}
}

func TestRecordPipelineStage(t *testing.T) {
	c := PipelineRecords.WithLabelValues(StageDeduped)
	before := testutil.ToFloat64(c)

	RecordPipelineStage(StageDeduped, 4)
	RecordPipelineStage(StageDeduped, 0)
	RecordPipelineStage(StageDeduped, -3)

	if got := testutil.ToFloat64(c) - before; got != 4 {
		t.Errorf("stage delta = %v, want 4", got)
	}
}

func TestRecordDedupeCollapsed(t *testing.T) {
	before := testutil.ToFloat64(DedupeCollapsed)
	RecordDedupeCollapsed(3)
	RecordDedupeCollapsed(0)
	if got := testutil.ToFloat64(DedupeCollapsed) - before; got != 3 {
		t.Errorf("collapsed delta = %v, want 3", got)
	}
}

func TestRecordPlaceResolution(t *testing.T) {
	none := PlaceResolutions.WithLabelValues("none")
	alias := PlaceResolutions.WithLabelValues("alias")
	beforeNone, beforeAlias := testutil.ToFloat64(none), testutil.ToFloat64(alias)

	RecordPlaceResolution("")
	RecordPlaceResolution("alias")

	if got := testutil.ToFloat64(none) - beforeNone; got != 1 {
		t.Errorf("none delta = %v, want 1", got)
	}
	if got := testutil.ToFloat64(alias) - beforeAlias; got != 1 {
		t.Errorf("alias delta = %v, want 1", got)
	}
}

// TestCircuitBreakerMetrics tests circuit breaker metric recording
func TestCircuitBreakerMetrics(t *testing.T) {
	cbName := "source_stations"

	CircuitBreakerState.WithLabelValues(cbName).Set(2)
	if got := testutil.ToFloat64(CircuitBreakerState.WithLabelValues(cbName)); got != 2 {
		t.Errorf("state = %v, want 2", got)
	}

	before := testutil.ToFloat64(CircuitBreakerRequests.WithLabelValues(cbName, "rejected"))
	RecordBreakerResult(cbName, "rejected")
	if got := testutil.ToFloat64(CircuitBreakerRequests.WithLabelValues(cbName, "rejected")) - before; got != 1 {
		t.Errorf("rejected delta = %v, want 1", got)
	}

	CircuitBreakerTransitions.WithLabelValues(cbName, "closed", "open").Inc()
}

// TestConcurrentMetricRecording tests thread-safe metric recording
func TestConcurrentMetricRecording(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			RecordSourceFetch("concurrent", OutcomeSuccess, time.Millisecond, 1)
			RecordPipelineStage(StageFetched, 1)
			TrackActiveRequest(true)
			TrackActiveRequest(false)
		}()
	}
	wg.Wait()
}

// TestMetricGathering tests that metrics can be gathered using testutil
func TestMetricGathering(t *testing.T) {
	RecordAPIRequest("GET", "/test", "200", time.Millisecond)
	RecordDiscoveryOperation("nearby", time.Millisecond)

	problems, err := testutil.GatherAndLint(prometheus.DefaultGatherer)
	if err != nil {
		t.Logf("Lint errors (may be expected): %v", err)
	}
	for _, p := range problems {
		t.Logf("Metric lint problem: %s", p.Text)
	}
}
