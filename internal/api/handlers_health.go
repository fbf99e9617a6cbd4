// Cinematch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package api

import (
	"net/http"
	"time"
)

// LivenessResponse is the data of GET /api/v1/health/live.
type LivenessResponse struct {
	Status        string  `json:"status"`
	Version       string  `json:"version,omitempty"`
	UptimeSeconds float64 `json:"uptime_seconds"`
}

// ReadinessResponse is the data of GET /api/v1/health/ready.
type ReadinessResponse struct {
	Status     string `json:"status"`
	Movies     int    `json:"movies"`
	Duplicates int    `json:"duplicate_titles"`

	// PosterAPI is the poster circuit breaker state; empty when posters
	// are disabled. An open breaker degrades posters to the placeholder
	// and does not make the service unready.
	PosterAPI string `json:"poster_api,omitempty"`
}

// HealthLive always answers 200 while the process serves HTTP.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(LivenessResponse{
		Status:        "alive",
		Version:       h.version,
		UptimeSeconds: time.Since(h.startTime).Seconds(),
	})
}

// HealthReady answers 200 with the catalog size once a non-empty catalog
// is loaded.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	n := h.catalog.Len()
	if n == 0 {
		rw.ServiceUnavailable("Catalog not loaded")
		return
	}

	resp := ReadinessResponse{
		Status:     "ready",
		Movies:     n,
		Duplicates: h.catalog.Duplicates(),
	}
	if h.posterBreaker != nil {
		resp.PosterAPI = h.posterBreaker.State()
	}
	rw.Success(resp)
}
