// Cinematch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Package config loads and validates Cinematch configuration.

Configuration is layered with Koanf v2: struct defaults, then an optional
YAML file, then environment variables. Environment names are mapped
explicitly; anything not in the mapping table is ignored.

# Environment Variables

Catalog:
  - CATALOG_PATH: JSON bundle file or Parquet bundle directory (default: models/catalog.json)
  - CATALOG_FORMAT: auto, json or parquet (default: auto)

Recommender:
  - RECOMMEND_DEFAULT_K, RECOMMEND_MAX_K (default: 5, 20)
  - RECOMMEND_CACHE_ENABLED, RECOMMEND_CACHE_SIZE, RECOMMEND_CACHE_TTL

Posters:
  - TMDB_API_KEY, TMDB_API_BASE_URL, TMDB_IMAGE_BASE_URL, TMDB_LANGUAGE
  - POSTER_PLACEHOLDER_URL, POSTER_TIMEOUT, POSTER_RATE_LIMIT, POSTER_RATE_BURST
  - POSTER_BREAKER_MAX_REQUESTS, POSTER_BREAKER_INTERVAL, POSTER_BREAKER_TIMEOUT,
    POSTER_BREAKER_MIN_REQUESTS, POSTER_BREAKER_FAILURE_RATIO
  - POSTER_CACHE_BACKEND (memory, redis, none), POSTER_CACHE_SIZE, POSTER_CACHE_TTL,
    POSTER_CACHE_KEY_PREFIX, REDIS_ADDR, REDIS_PASSWORD, REDIS_DB

HTTP Server:
  - HTTP_HOST, HTTP_PORT (default: 0.0.0.0, 8501), HTTP_TIMEOUT, ENVIRONMENT
  - RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT, CORS_ORIGINS

Logging and maintenance:
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER
  - CACHE_SWEEP_INTERVAL (default: 5m)

# Example config.yaml

	catalog:
	  path: /data/models
	  format: parquet
	poster:
	  api_key: "..."
	  cache:
	    backend: redis
	    redis_addr: redis:6379
	logging:
	  level: debug
	  format: console
*/
package config
