// EV Recharge Bunk - Charging Station Discovery
// Copyright 2026 The EV Recharge Bunk Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/thecode94/Electric-Vehicle-Recharge-Bunk

package models

import "time"

// APIResponse is the envelope used by every HTTP endpoint.
//
// Example successful response:
//
//	{
//	  "status": "success",
//	  "data": {"stations": [...], "count": 3},
//	  "metadata": {"timestamp": "2026-10-14T12:00:00Z", "query_time_ms": 12}
//	}
//
// Example error response:
//
//	{
//	  "status": "error",
//	  "error": {"code": "VALIDATION_ERROR", "message": "lat must be a valid latitude (-90 to 90)"},
//	  "metadata": {"timestamp": "2026-10-14T12:00:00Z"}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata contains response metadata for observability.
// Degraded is set when one or more sources failed during aggregation.
type Metadata struct {
	Timestamp     time.Time `json:"timestamp"`
	QueryTimeMS   int64     `json:"query_time_ms,omitempty"`
	Degraded      bool      `json:"degraded,omitempty"`
	SourcesFailed []string  `json:"sources_failed,omitempty"`
}

// APIError represents an error response with structured error details.
//
// Codes used by the discovery API:
//   - VALIDATION_ERROR: malformed or out-of-range query parameters
//   - NOT_FOUND: place resolution failed (details carry suggestions)
//   - UPSTREAM_UNAVAILABLE: every configured source failed (strict mode only)
//   - INTERNAL_ERROR: unexpected failure
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
