// EV Recharge Bunk - Charging Station Discovery
// Copyright 2026 The EV Recharge Bunk Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/thecode94/Electric-Vehicle-Recharge-Bunk

package validation

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// CodeValidation is the API error code for rejected request parameters.
const CodeValidation = "VALIDATION_ERROR"

// FieldError is one failed rule on one request parameter.
type FieldError struct {
	Field   string // query parameter name
	Tag     string // failed rule, e.g. "latitude"
	Param   string // rule parameter, e.g. "200" for max=200
	Value   interface{}
	Message string
}

func (e FieldError) Error() string { return e.Message }

// RequestValidationError collects every failed rule of one request.
type RequestValidationError struct {
	Fields []FieldError
}

// Errors returns the individual field failures.
func (ve *RequestValidationError) Errors() []FieldError { return ve.Fields }

func (ve *RequestValidationError) Error() string {
	if len(ve.Fields) == 0 {
		return "validation failed"
	}
	msgs := make([]string, len(ve.Fields))
	for i := range ve.Fields {
		msgs[i] = ve.Fields[i].Message
	}
	return strings.Join(msgs, "; ")
}

// APIError mirrors models.APIError without importing it.
type APIError struct {
	Code    string
	Message string
	Details map[string]interface{}
}

// ToAPIError shapes the failures for the JSON error envelope. A single
// failure keeps its message verbatim; several are listed per field.
func (ve *RequestValidationError) ToAPIError() *APIError {
	switch len(ve.Fields) {
	case 0:
		return &APIError{Code: CodeValidation, Message: "Validation failed"}
	case 1:
		f := ve.Fields[0]
		return &APIError{
			Code:    CodeValidation,
			Message: f.Message,
			Details: map[string]interface{}{"field": f.Field, "tag": f.Tag, "value": encodable(f.Value)},
		}
	}

	fields := make([]map[string]interface{}, len(ve.Fields))
	msgs := make([]string, len(ve.Fields))
	for i, f := range ve.Fields {
		fields[i] = map[string]interface{}{"field": f.Field, "tag": f.Tag, "message": f.Message}
		msgs[i] = f.Field + ": " + f.Message
	}
	return &APIError{
		Code:    CodeValidation,
		Message: strings.Join(msgs, "; "),
		Details: map[string]interface{}{"fields": fields},
	}
}

// encodable replaces NaN and infinite floats, which JSON cannot carry, with
// their string form.
func encodable(v interface{}) interface{} {
	var f float64
	switch x := v.(type) {
	case float64:
		f = x
	case float32:
		f = float64(x)
	case *float64:
		if x == nil {
			return nil
		}
		f = *x
	default:
		return v
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return f
}

// messages builds the user-facing text for a failed rule.
var messages = map[string]func(field, param string, text bool) string{
	"required":    func(f, _ string, _ bool) string { return f + " is required" },
	"finite":      func(f, _ string, _ bool) string { return f + " must be a finite number" },
	"radius_unit": func(f, _ string, _ bool) string { return f + " must be one of: km, m" },
	"latitude":    func(f, _ string, _ bool) string { return f + " must be a valid latitude (-90 to 90)" },
	"longitude":   func(f, _ string, _ bool) string { return f + " must be a valid longitude (-180 to 180)" },
	"oneof":       func(f, p string, _ bool) string { return fmt.Sprintf("%s must be one of: %s", f, p) },
	"gte":         func(f, p string, _ bool) string { return fmt.Sprintf("%s must be greater than or equal to %s", f, p) },
	"lte":         func(f, p string, _ bool) string { return fmt.Sprintf("%s must be less than or equal to %s", f, p) },
	"min": func(f, p string, text bool) string {
		if text {
			return fmt.Sprintf("%s must be at least %s characters", f, p)
		}
		return fmt.Sprintf("%s must be at least %s", f, p)
	},
	"max": func(f, p string, text bool) string {
		if text {
			return fmt.Sprintf("%s must be at most %s characters", f, p)
		}
		return fmt.Sprintf("%s must be at most %s", f, p)
	},
}

func describe(fe validator.FieldError) string {
	if msg, ok := messages[fe.Tag()]; ok {
		return msg(fe.Field(), fe.Param(), fe.Kind() == reflect.String)
	}
	return fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag())
}
