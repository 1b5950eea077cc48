// EV Recharge Bunk - Charging Station Discovery
// Copyright 2026 The EV Recharge Bunk Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/thecode94/Electric-Vehicle-Recharge-Bunk

// Package validation checks parsed discovery requests with
// go-playground/validator v10.
//
// Request structs carry two tags: "query" names the HTTP parameter the field
// was parsed from, and "validate" holds the rules. Failures are reported by
// parameter name, so a bad latitude reads "lat must be ...", not "Lat".
//
// Two custom rules are registered on top of the built-ins:
//   - finite: rejects NaN and infinite floats
//   - radius_unit: accepts "km" or "m", case-insensitively
//
// Example:
//
//	type NearbyRequest struct {
//	    Lat   *float64 `query:"lat" validate:"required,finite,latitude"`
//	    Limit int      `query:"limit" validate:"omitempty,min=1,max=200"`
//	}
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    ...
//	}
package validation

import (
	"errors"
	"math"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// GetValidator returns the shared validator. It is safe for concurrent use
// and caches struct metadata across calls.
func GetValidator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(queryName)

		// Registration only fails on empty tags or nil funcs
		_ = v.RegisterValidation("finite", isFinite)          //nolint:errcheck
		_ = v.RegisterValidation("radius_unit", isRadiusUnit) //nolint:errcheck
		validate = v
	})
	return validate
}

// ValidateStruct validates s and returns nil when every rule holds.
func ValidateStruct(s interface{}) *RequestValidationError {
	err := GetValidator().Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		// InvalidValidationError: s was not a struct pointer.
		return &RequestValidationError{Fields: []FieldError{{
			Field:   "request",
			Tag:     "struct",
			Message: err.Error(),
		}}}
	}

	out := &RequestValidationError{Fields: make([]FieldError, 0, len(fieldErrs))}
	for _, fe := range fieldErrs {
		out.Fields = append(out.Fields, FieldError{
			Field:   fe.Field(),
			Tag:     fe.Tag(),
			Param:   fe.Param(),
			Value:   fe.Value(),
			Message: describe(fe),
		})
	}
	return out
}

// queryName reports a field by its query parameter, falling back to the Go
// field name for untagged fields.
func queryName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("query"), ",")
	if name == "" || name == "-" {
		return fld.Name
	}
	return name
}

// isFinite passes every non-float kind.
func isFinite(fl validator.FieldLevel) bool {
	f := fl.Field()
	if k := f.Kind(); k != reflect.Float32 && k != reflect.Float64 {
		return true
	}
	return !math.IsNaN(f.Float()) && !math.IsInf(f.Float(), 0)
}

func isRadiusUnit(fl validator.FieldLevel) bool {
	switch strings.ToLower(fl.Field().String()) {
	case "km", "m":
		return true
	}
	return false
}
