// EV Recharge Bunk - Charging Station Discovery
// Copyright 2026 The EV Recharge Bunk Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/thecode94/Electric-Vehicle-Recharge-Bunk

package discovery

import (
	"errors"
	"fmt"

	"github.com/thecode94/Electric-Vehicle-Recharge-Bunk-sub001/internal/aggregate"
)

var (
	// ErrInvalidArgument reports malformed input: non-finite or out of range
	// coordinates, a query that is too short, a bad radius.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound reports that a place query resolved to nothing.
	ErrNotFound = errors.New("not found")

	// ErrUpstreamUnavailable marks a single failed source. It is recovered
	// inside the engine and only appears in diagnostics.
	ErrUpstreamUnavailable = aggregate.ErrSourceUnavailable

	// ErrTotalAggregationFailure is returned in strict mode when every
	// configured source failed.
	ErrTotalAggregationFailure = errors.New("all station sources unavailable")
)

// NotFoundError carries "did you mean" suggestions for an unresolved place.
type NotFoundError struct {
	Query       string
	Suggestions []string
	Hint        string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no place matches %q", e.Query)
}

// Unwrap lets errors.Is(err, ErrNotFound) succeed.
func (e *NotFoundError) Unwrap() error { return ErrNotFound }

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}
