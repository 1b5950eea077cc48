// EV Recharge Bunk - Charging Station Discovery
// Copyright 2026 The EV Recharge Bunk Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/thecode94/Electric-Vehicle-Recharge-Bunk

package api

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/thecode94/Electric-Vehicle-Recharge-Bunk-sub001/internal/discovery"
	"github.com/thecode94/Electric-Vehicle-Recharge-Bunk-sub001/internal/logging"
	"github.com/thecode94/Electric-Vehicle-Recharge-Bunk-sub001/internal/models"
	"github.com/thecode94/Electric-Vehicle-Recharge-Bunk-sub001/internal/validation"
)

// Error codes for API responses
const (
	ErrCodeValidation          = "VALIDATION_ERROR"
	ErrCodeNotFound            = "NOT_FOUND"
	ErrCodeUpstreamUnavailable = "UPSTREAM_UNAVAILABLE"
	ErrCodeInternalError       = "INTERNAL_ERROR"
	ErrCodeTooManyRequests     = "TOO_MANY_REQUESTS"
	ErrCodeServiceUnavailable  = "SERVICE_UNAVAILABLE"
)

// sanitizeLogValue removes control characters from strings to prevent log injection attacks.
func sanitizeLogValue(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			fmt.Fprintf(&b, "\\x%02x", r)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// marshalFailureBody is sent when a response cannot be encoded.
var marshalFailureBody = []byte(`{"status":"error","data":null,"metadata":{"timestamp":"0001-01-01T00:00:00Z"},"error":{"code":"` +
	ErrCodeInternalError + `","message":"failed to encode response"}}`)

// respondJSON sends a JSON response with proper headers
func respondJSON(w http.ResponseWriter, status int, response *models.APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")

	data, err := json.Marshal(response)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write(marshalFailureBody) //nolint:errcheck // best effort
		return
	}

	w.Header().Set("ETag", generateETag(data))

	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// generateETag returns the FNV-1a hash of data in hex.
func generateETag(data []byte) string {
	h := fnv.New32a()
	_, _ = h.Write(data) //nolint:errcheck // hash.Hash never fails
	return strconv.FormatUint(uint64(h.Sum32()), 16)
}

// respondSuccess wraps data in the success envelope with timing metadata.
func respondSuccess(w http.ResponseWriter, start time.Time, data interface{}, meta models.Metadata) {
	meta.Timestamp = time.Now()
	meta.QueryTimeMS = time.Since(start).Milliseconds()
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status:   "success",
		Data:     data,
		Metadata: meta,
	})
}

// respondError sends an error response
func respondError(w http.ResponseWriter, status int, code, message string, err error) {
	respondErrorDetails(w, status, code, message, nil, err)
}

func respondErrorDetails(w http.ResponseWriter, status int, code, message string, details map[string]interface{}, err error) {
	if err != nil {
		logging.Error().Str("code", sanitizeLogValue(code)).Str("error", sanitizeLogValue(err.Error())).Msg("API Error")
	}

	respondJSON(w, status, &models.APIResponse{
		Status: "error",
		Data:   nil,
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
		Error: &models.APIError{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

// respondDiscoveryError maps engine errors onto HTTP statuses.
func respondDiscoveryError(w http.ResponseWriter, r *http.Request, err error) {
	var nf *discovery.NotFoundError
	switch {
	case errors.As(err, &nf):
		details := map[string]interface{}{"suggestions": nf.Suggestions}
		if nf.Hint != "" {
			details["hint"] = nf.Hint
		}
		respondErrorDetails(w, http.StatusNotFound, ErrCodeNotFound, nf.Error(), details, nil)
	case errors.Is(err, discovery.ErrInvalidArgument):
		respondError(w, http.StatusBadRequest, ErrCodeValidation, err.Error(), nil)
	case errors.Is(err, discovery.ErrTotalAggregationFailure):
		respondError(w, http.StatusServiceUnavailable, ErrCodeUpstreamUnavailable, "Station sources are unavailable", nil)
	case errors.Is(err, context.Canceled):
		logging.Ctx(r.Context()).Debug().Msg("Client went away before the query finished")
	default:
		respondError(w, http.StatusInternalServerError, ErrCodeInternalError, "Internal server error", err)
	}
}

// validateRequest validates a struct using go-playground/validator.
// Returns nil if validation passes, or a models.APIError if validation fails.
func validateRequest(v interface{}) *models.APIError {
	validationErr := validation.ValidateStruct(v)
	if validationErr == nil {
		return nil
	}

	apiErr := validationErr.ToAPIError()
	return &models.APIError{
		Code:    apiErr.Code,
		Message: apiErr.Message,
		Details: apiErr.Details,
	}
}

// paramError reports a query parameter that could not be parsed at all.
type paramError struct {
	name string
	kind string
}

func (e *paramError) Error() string {
	return fmt.Sprintf("%s must be %s", e.name, e.kind)
}

// getFloatParam returns nil when the parameter is absent.
func getFloatParam(r *http.Request, key string) (*float64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, &paramError{name: key, kind: "a number"}
	}
	return &v, nil
}

func getIntParam(r *http.Request, key string) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &paramError{name: key, kind: "an integer"}
	}
	return v, nil
}

func getBoolParam(r *http.Request, key string) (bool, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, &paramError{name: key, kind: "true or false"}
	}
	return v, nil
}
