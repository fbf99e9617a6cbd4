// Cinematch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

// Package validation validates API request structs with
// go-playground/validator v10.
//
// A single validator instance is shared by the process; it caches struct
// metadata after the first call. Request structs declare both the URL
// parameter name and the rules:
//
//	type MoviesRequest struct {
//	    Query string `query:"q"     validate:"max=200"`
//	    Limit int    `query:"limit" validate:"omitempty,min=1,max=1000"`
//	}
//
// Failures come back as *RequestValidationError. ToAPIError turns them into
// the VALIDATION_FAILED error body used by the HTTP layer.
package validation
