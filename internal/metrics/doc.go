// Cinematch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Package metrics defines the Prometheus collectors exported at /metrics.

All collectors are registered on the default registry through promauto at
package init, so importing the package is enough to expose them.

# Metric Families

API (recorded by middleware.PrometheusMetrics):
  - api_requests_total{method,endpoint,status_code}
  - api_request_duration_seconds{method,endpoint}
  - api_active_requests
  - api_rate_limit_hits_total{endpoint}

Recommender:
  - recommend_requests_total{outcome}: ok, not_found, cache_hit
  - recommend_duration_seconds

Posters:
  - poster_fetches_total{outcome}: ok, cache_hit, placeholder
  - poster_fetch_duration_seconds
  - circuit_breaker_state{name}, circuit_breaker_requests_total{name,result},
    circuit_breaker_consecutive_failures{name},
    circuit_breaker_state_transitions_total{name,from_state,to_state}

Caches (cache_type is "recommend" or "poster"):
  - cache_hits_total, cache_misses_total, cache_entries, cache_evictions_total

Catalog:
  - catalog_movies, catalog_duplicate_titles

# Example PromQL

	# poster placeholder ratio over 5m
	sum(rate(poster_fetches_total{outcome="placeholder"}[5m]))
	  / sum(rate(poster_fetches_total[5m]))

	# p95 recommendation API latency
	histogram_quantile(0.95,
	  sum by (le) (rate(api_request_duration_seconds_bucket{endpoint="/api/v1/recommendations"}[5m])))
*/
package metrics
