// Cinematch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

// Package middleware holds HTTP middleware shared by the route groups.
//
// PrometheusMetrics instruments every request with api_requests_total,
// api_request_duration_seconds and api_active_requests. The endpoint label
// is the chi route pattern, so /api/v1/recommendations?title=Heat and
// ?title=Alien share one series.
package middleware
