// Cinematch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package api

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/tomtom215/cinematch/internal/validation"
)

// MoviesRequest holds the query parameters of GET /api/v1/movies.
type MoviesRequest struct {
	Query string `query:"q" validate:"max=200"`
	Limit *int   `query:"limit" validate:"omitempty,min=1,max=1000"`
}

// RecommendationsRequest holds the query parameters of
// GET /api/v1/recommendations. Title emptiness is checked by the presenter
// so that it maps to NO_SELECTION rather than a validation failure.
type RecommendationsRequest struct {
	Title string `query:"title" validate:"max=500"`
	K     *int   `query:"k" validate:"omitempty,min=1,max=100"`
}

// defaultSearchLimit applies when q is set without an explicit limit.
const defaultSearchLimit = 50

func parseMoviesRequest(q url.Values) (MoviesRequest, *validation.RequestValidationError) {
	limit, verr := optionalInt(q, "limit")
	if verr != nil {
		return MoviesRequest{}, verr
	}
	req := MoviesRequest{Query: q.Get("q"), Limit: limit}
	return req, validation.ValidateStruct(&req)
}

// effectiveLimit returns the limit passed to catalog.Search; 0 means all.
func (r MoviesRequest) effectiveLimit() int {
	switch {
	case r.Limit != nil:
		return *r.Limit
	case r.Query != "":
		return defaultSearchLimit
	default:
		return 0
	}
}

func parseRecommendationsRequest(q url.Values) (RecommendationsRequest, *validation.RequestValidationError) {
	k, verr := optionalInt(q, "k")
	if verr != nil {
		return RecommendationsRequest{}, verr
	}
	req := RecommendationsRequest{Title: q.Get("title"), K: k}
	return req, validation.ValidateStruct(&req)
}

// kOrDefault returns k, or 0 so the engine applies its default.
func (r RecommendationsRequest) kOrDefault() int {
	if r.K == nil {
		return 0
	}
	return *r.K
}

// optionalInt parses an integer parameter. An absent or empty parameter
// yields nil.
func optionalInt(q url.Values, name string) (*int, *validation.RequestValidationError) {
	raw := q.Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, validation.NewFieldError(name, "integer", raw, fmt.Sprintf("%s must be an integer", name))
	}
	return &v, nil
}
