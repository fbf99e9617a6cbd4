// Cinematch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package config

import (
	"time"
)

// Config holds all application configuration.
//
// Loading order (Koanf v2):
//  1. Defaults from defaultConfig()
//  2. Optional YAML file (CONFIG_PATH, config.yaml, config.yml, /etc/cinematch/config.yaml)
//  3. Environment variables, mapped explicitly in envTransformFunc
//
// Config is immutable after Load and safe for concurrent reads.
type Config struct {
	Catalog     CatalogConfig     `koanf:"catalog"`
	Recommend   RecommendConfig   `koanf:"recommend"`
	Poster      PosterConfig      `koanf:"poster"`
	Server      ServerConfig      `koanf:"server"`
	Security    SecurityConfig    `koanf:"security"`
	Logging     LoggingConfig     `koanf:"logging"`
	Maintenance MaintenanceConfig `koanf:"maintenance"`
}

// CatalogConfig locates the precomputed catalog bundle.
//
// Environment Variables:
//   - CATALOG_PATH: bundle file (.json) or directory holding movies.parquet and similarity.parquet
//   - CATALOG_FORMAT: auto, json or parquet (default: auto)
type CatalogConfig struct {
	Path   string `koanf:"path"`
	Format string `koanf:"format"`
}

// RecommendConfig tunes the recommender.
//
// Environment Variables:
//   - RECOMMEND_DEFAULT_K: results per request when k is omitted (default: 5)
//   - RECOMMEND_MAX_K: upper clamp for k (default: 20)
//   - RECOMMEND_CACHE_ENABLED: cache ranked results per (title, k) (default: true)
//   - RECOMMEND_CACHE_SIZE: max cached result sets (default: 1000)
//   - RECOMMEND_CACHE_TTL: cached result lifetime (default: 1h)
type RecommendConfig struct {
	DefaultK     int           `koanf:"default_k"`
	MaxK         int           `koanf:"max_k"`
	CacheEnabled bool          `koanf:"cache_enabled"`
	CacheSize    int           `koanf:"cache_size"`
	CacheTTL     time.Duration `koanf:"cache_ttl"`
}

// PosterConfig configures the TMDB poster lookup and its circuit breaker.
//
// Environment Variables:
//   - TMDB_API_KEY: TMDB v3 API key; posters fall back to the placeholder when empty
//   - TMDB_API_BASE_URL: default https://api.themoviedb.org/3
//   - TMDB_IMAGE_BASE_URL: default https://image.tmdb.org/t/p/w500
//   - TMDB_LANGUAGE: default en-US
//   - POSTER_PLACEHOLDER_URL: URL returned whenever a poster cannot be resolved
//   - POSTER_TIMEOUT: per-call timeout (default: 5s)
//   - POSTER_RATE_LIMIT / POSTER_RATE_BURST: outbound token bucket (default: 40/s, burst 10)
//   - POSTER_BREAKER_*: see the Breaker fields
type PosterConfig struct {
	APIBaseURL     string        `koanf:"api_base_url"`
	ImageBaseURL   string        `koanf:"image_base_url"`
	APIKey         string        `koanf:"api_key"`
	Language       string        `koanf:"language"`
	PlaceholderURL string        `koanf:"placeholder_url"`
	Timeout        time.Duration `koanf:"timeout"`
	RateLimit      float64       `koanf:"rate_limit"` // requests per second
	RateBurst      int           `koanf:"rate_burst"`

	BreakerMaxRequests  uint32        `koanf:"breaker_max_requests"` // half-open probes
	BreakerInterval     time.Duration `koanf:"breaker_interval"`     // closed-state counter reset
	BreakerTimeout      time.Duration `koanf:"breaker_timeout"`      // open duration before half-open
	BreakerMinRequests  uint32        `koanf:"breaker_min_requests"`
	BreakerFailureRatio float64       `koanf:"breaker_failure_ratio"`

	Cache PosterCacheConfig `koanf:"cache"`
}

// Enabled reports whether TMDB lookups should be attempted at all.
func (p PosterConfig) Enabled() bool {
	return p.APIKey != ""
}

// PosterCacheConfig selects where resolved poster URLs are kept.
//
// Environment Variables:
//   - POSTER_CACHE_BACKEND: memory, redis or none (default: memory)
//   - POSTER_CACHE_SIZE: entries for the memory backend (default: 5000)
//   - POSTER_CACHE_TTL: entry lifetime (default: 24h)
//   - POSTER_CACHE_KEY_PREFIX: redis key prefix (default: cinematch:poster:)
//   - REDIS_ADDR, REDIS_PASSWORD, REDIS_DB: redis connection
type PosterCacheConfig struct {
	Backend       string        `koanf:"backend"`
	Size          int           `koanf:"size"`
	TTL           time.Duration `koanf:"ttl"`
	RedisAddr     string        `koanf:"redis_addr"`
	RedisPassword string        `koanf:"redis_password"`
	RedisDB       int           `koanf:"redis_db"`
	KeyPrefix     string        `koanf:"key_prefix"`
}

// ServerConfig holds HTTP server settings.
//
// Environment Variables:
//   - HTTP_PORT: listen port (default: 8501)
//   - HTTP_HOST: bind address (default: 0.0.0.0)
//   - HTTP_TIMEOUT: read/write timeout (default: 30s)
//   - ENVIRONMENT: development or production (default: development)
type ServerConfig struct {
	Port        int           `koanf:"port"`
	Host        string        `koanf:"host"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"`
}

// SecurityConfig holds inbound rate limiting and CORS settings.
//
// Environment Variables:
//   - RATE_LIMIT_REQUESTS: requests per window per IP (default: 100)
//   - RATE_LIMIT_WINDOW: window length (default: 1m)
//   - DISABLE_RATE_LIMIT: turn limiting off (default: false)
//   - CORS_ORIGINS: comma-separated allowed origins (default: *)
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// LoggingConfig holds logging settings, passed to logging.Init.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// MaintenanceConfig controls the background cache sweeper.
type MaintenanceConfig struct {
	CacheSweepInterval time.Duration `koanf:"cache_sweep_interval"`
}

// Load reads configuration from defaults, an optional file and the environment.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
