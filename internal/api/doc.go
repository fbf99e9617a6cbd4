// Cinematch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Package api serves the recommendation page and the JSON API over chi.

Routes:

	GET /                              HTML page; ?title=X shows recommendations
	GET /api/v1/movies?q=&limit=       title list, substring filter
	GET /api/v1/recommendations?title= five similar movies (k optional)
	GET /api/v1/health/live            liveness
	GET /api/v1/health/ready           readiness with catalog size
	GET /metrics                       Prometheus exposition

JSON responses use one envelope:

	{"success": false,
	 "error": {"code": "MOVIE_NOT_FOUND", "message": "...", "request_id": "..."},
	 "meta": {"request_id": "...", "timestamp": "...", "duration_ms": 0}}

Error codes: NO_SELECTION (400), VALIDATION_FAILED (400),
MOVIE_NOT_FOUND (404), TOO_MANY_REQUESTS (429), INTERNAL_ERROR (500),
TIMEOUT (504).

Middleware order is RequestIDWithLogging, RealIP, Recoverer, CORS and
Compress globally, then per group a per-IP httprate limiter, security
headers and Prometheus request metrics.
*/
package api
