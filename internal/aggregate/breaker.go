// EV Recharge Bunk - Charging Station Discovery
// Copyright 2026 The EV Recharge Bunk Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/thecode94/Electric-Vehicle-Recharge-Bunk

package aggregate

import (
	"context"
	"errors"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/thecode94/Electric-Vehicle-Recharge-Bunk-sub001/internal/config"
	"github.com/thecode94/Electric-Vehicle-Recharge-Bunk-sub001/internal/docstore"
	"github.com/thecode94/Electric-Vehicle-Recharge-Bunk-sub001/internal/logging"
	"github.com/thecode94/Electric-Vehicle-Recharge-Bunk-sub001/internal/metrics"
)

type sourceBreaker = gobreaker.CircuitBreaker[[]docstore.Document]

// newSourceBreaker builds the circuit breaker guarding one source.
// It opens when the failure ratio reaches cfg.FailureRatio over at least
// cfg.MinRequests calls within cfg.Interval. A caller hanging up is not
// counted against the source.
func newSourceBreaker(source string, cfg config.BreakerConfig) *sourceBreaker {
	name := "source-" + source

	metrics.CircuitBreakerState.WithLabelValues(name).Set(0) // 0 = closed
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)

	return gobreaker.NewCircuitBreaker[[]docstore.Document](gobreaker.Settings{
		Name:        name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.MinRequests {
				return false
			}

			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			shouldTrip := failureRatio >= cfg.FailureRatio

			if shouldTrip {
				logging.Warn().
					Str("source", source).
					Uint32("failures", counts.TotalFailures).
					Float64("failure_rate", failureRatio*100).
					Msg("[CIRCUIT BREAKER] Opening circuit")
			}
			return shouldTrip
		},

		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr := stateToString(from)
			toStr := stateToString(to)

			logging.Info().Str("breaker", name).Str("from", fromStr).Str("to", toStr).Msg("[CIRCUIT BREAKER] State transition")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()

			if to == gobreaker.StateClosed {
				metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)
			}
		},
	})
}

// recordBreakerOutcome updates breaker metrics after an Execute call.
func recordBreakerOutcome(cb *sourceBreaker, err error) {
	name := cb.Name()
	switch {
	case err == nil:
		metrics.RecordBreakerResult(name, metrics.OutcomeSuccess)
		metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)
	case isRejected(err):
		metrics.RecordBreakerResult(name, metrics.OutcomeRejected)
	default:
		metrics.RecordBreakerResult(name, metrics.OutcomeFailure)
		metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(float64(cb.Counts().ConsecutiveFailures))
	}
}

func isRejected(err error) bool {
	return errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests)
}

// stateToFloat converts circuit breaker state to numeric value for metrics
func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}
