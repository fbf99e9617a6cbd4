// Cinematch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package config

import (
	"fmt"
	"time"
)

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateCatalog(); err != nil {
		return err
	}
	if err := c.validateRecommend(); err != nil {
		return err
	}
	if err := c.validatePoster(); err != nil {
		return err
	}
	if err := c.validatePosterCache(); err != nil {
		return err
	}
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateSecurity(); err != nil {
		return err
	}
	if err := c.validateMaintenance(); err != nil {
		return err
	}
	return c.validateLogging()
}

var validCatalogFormats = map[string]bool{
	"auto":    true,
	"json":    true,
	"parquet": true,
}

func (c *Config) validateCatalog() error {
	if c.Catalog.Path == "" {
		return fmt.Errorf("CATALOG_PATH is required")
	}
	if !validCatalogFormats[c.Catalog.Format] {
		return fmt.Errorf("CATALOG_FORMAT must be one of: auto, json, parquet")
	}
	return nil
}

// maxRecommendK bounds RECOMMEND_MAX_K; the result page never needs more.
const maxRecommendK = 100

func (c *Config) validateRecommend() error {
	r := c.Recommend
	if r.DefaultK < 1 {
		return fmt.Errorf("RECOMMEND_DEFAULT_K must be at least 1")
	}
	if r.MaxK < r.DefaultK || r.MaxK > maxRecommendK {
		return fmt.Errorf("RECOMMEND_MAX_K must be between RECOMMEND_DEFAULT_K (%d) and %d", r.DefaultK, maxRecommendK)
	}
	if r.CacheEnabled {
		if r.CacheSize < 1 {
			return fmt.Errorf("RECOMMEND_CACHE_SIZE must be positive when the cache is enabled")
		}
		if r.CacheTTL <= 0 {
			return fmt.Errorf("RECOMMEND_CACHE_TTL must be positive when the cache is enabled")
		}
	}
	return nil
}

func (c *Config) validatePoster() error {
	p := c.Poster
	if err := validateHTTPURL(p.APIBaseURL, "TMDB_API_BASE_URL"); err != nil {
		return err
	}
	if err := validateHTTPURL(p.ImageBaseURL, "TMDB_IMAGE_BASE_URL"); err != nil {
		return err
	}
	if err := validateAbsoluteURL(p.PlaceholderURL, "POSTER_PLACEHOLDER_URL"); err != nil {
		return err
	}
	if p.Timeout <= 0 {
		return fmt.Errorf("POSTER_TIMEOUT must be positive")
	}
	if p.RateLimit <= 0 {
		return fmt.Errorf("POSTER_RATE_LIMIT must be positive")
	}
	if p.RateBurst < 1 {
		return fmt.Errorf("POSTER_RATE_BURST must be at least 1")
	}
	return c.validatePosterBreaker()
}

func (c *Config) validatePosterBreaker() error {
	p := c.Poster
	if p.BreakerMaxRequests < 1 {
		return fmt.Errorf("POSTER_BREAKER_MAX_REQUESTS must be at least 1")
	}
	if p.BreakerTimeout <= 0 {
		return fmt.Errorf("POSTER_BREAKER_TIMEOUT must be positive")
	}
	if p.BreakerInterval < 0 {
		return fmt.Errorf("POSTER_BREAKER_INTERVAL must not be negative")
	}
	if p.BreakerMinRequests < 1 {
		return fmt.Errorf("POSTER_BREAKER_MIN_REQUESTS must be at least 1")
	}
	if p.BreakerFailureRatio <= 0 || p.BreakerFailureRatio > 1 {
		return fmt.Errorf("POSTER_BREAKER_FAILURE_RATIO must be in (0, 1]")
	}
	return nil
}

var validPosterCacheBackends = map[string]bool{
	"memory": true,
	"redis":  true,
	"none":   true,
}

func (c *Config) validatePosterCache() error {
	pc := c.Poster.Cache
	if !validPosterCacheBackends[pc.Backend] {
		return fmt.Errorf("POSTER_CACHE_BACKEND must be one of: memory, redis, none")
	}
	if pc.Backend == "none" {
		return nil
	}
	if pc.TTL <= 0 {
		return fmt.Errorf("POSTER_CACHE_TTL must be positive")
	}
	switch pc.Backend {
	case "memory":
		if pc.Size < 1 {
			return fmt.Errorf("POSTER_CACHE_SIZE must be positive for the memory backend")
		}
	case "redis":
		if pc.RedisAddr == "" {
			return fmt.Errorf("REDIS_ADDR is required when POSTER_CACHE_BACKEND=redis")
		}
		if pc.RedisDB < 0 {
			return fmt.Errorf("REDIS_DB must not be negative")
		}
	}
	return nil
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	return nil
}

// Rate limit bounds.
const (
	minRateLimitRequests = 1
	maxRateLimitRequests = 100000
	minRateLimitWindow   = time.Second
	maxRateLimitWindow   = time.Hour
)

func (c *Config) validateSecurity() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

func (c *Config) validateMaintenance() error {
	if c.Maintenance.CacheSweepInterval < time.Second {
		return fmt.Errorf("CACHE_SWEEP_INTERVAL must be at least 1s")
	}
	return nil
}

// ShouldWarnAboutCORS reports a wildcard origin in production.
func (c *Config) ShouldWarnAboutCORS() bool {
	if !c.IsProduction() {
		return false
	}
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}

// IsProduction reports whether ENVIRONMENT is production.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}
