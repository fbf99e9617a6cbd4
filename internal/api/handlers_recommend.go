// Cinematch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/tomtom215/cinematch/internal/catalog"
	"github.com/tomtom215/cinematch/internal/logging"
	"github.com/tomtom215/cinematch/internal/presenter"
)

// Recommendations handles GET /api/v1/recommendations?title=X&k=5.
//
// The response data is the presenter.Result: query, message and the cards
// under "items", in ranking order.
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	req, verr := parseRecommendationsRequest(r.URL.Query())
	if verr != nil {
		rw.ValidationError(verr)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	result, err := h.presenter.PresentK(ctx, req.Title, req.kOrDefault())
	if err != nil {
		status, code := errorStatus(err)
		if status >= http.StatusInternalServerError {
			logging.Ctx(r.Context()).Error().Err(err).Str("title", req.Title).Msg("Recommendation failed")
		}
		rw.Error(status, code, presenter.Message(err))
		return
	}

	logging.Ctx(r.Context()).Debug().
		Str("title", req.Title).
		Int("count", len(result.Cards)).
		Msg("Recommendations served")
	rw.Success(result)
}

// errorStatus maps a presenter error to an HTTP status and error code.
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, presenter.ErrNoSelection):
		return http.StatusBadRequest, ErrCodeNoSelection
	case errors.Is(err, catalog.ErrNotFound):
		return http.StatusNotFound, ErrCodeMovieNotFound
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, ErrCodeTimeout
	default:
		return http.StatusInternalServerError, ErrCodeInternalError
	}
}
