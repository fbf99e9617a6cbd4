// Cinematch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package config

import (
	"testing"
	"time"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"empty catalog path", func(c *Config) { c.Catalog.Path = "" }, true},
		{"default_k zero", func(c *Config) { c.Recommend.DefaultK = 0 }, true},
		{"max_k above 100", func(c *Config) { c.Recommend.MaxK = 101 }, true},
		{"max_k equals default_k", func(c *Config) { c.Recommend.MaxK = 5 }, false},
		{"cache disabled ignores size", func(c *Config) {
			c.Recommend.CacheEnabled = false
			c.Recommend.CacheSize = 0
		}, false},
		{"cache enabled zero size", func(c *Config) { c.Recommend.CacheSize = 0 }, true},
		{"api base with path", func(c *Config) { c.Poster.APIBaseURL = "https://api.themoviedb.org/3" }, false},
		{"api base with query", func(c *Config) { c.Poster.APIBaseURL = "https://api.themoviedb.org/3?x=1" }, true},
		{"placeholder with query", func(c *Config) { c.Poster.PlaceholderURL = "https://placehold.co/1x1?text=x" }, false},
		{"placeholder relative", func(c *Config) { c.Poster.PlaceholderURL = "/static/none.png" }, true},
		{"zero poster timeout", func(c *Config) { c.Poster.Timeout = 0 }, true},
		{"zero rate limit", func(c *Config) { c.Poster.RateLimit = 0 }, true},
		{"failure ratio above 1", func(c *Config) { c.Poster.BreakerFailureRatio = 1.5 }, true},
		{"failure ratio 1", func(c *Config) { c.Poster.BreakerFailureRatio = 1 }, false},
		{"breaker zero min requests", func(c *Config) { c.Poster.BreakerMinRequests = 0 }, true},
		{"unknown cache backend", func(c *Config) { c.Poster.Cache.Backend = "memcached" }, true},
		{"none backend skips ttl", func(c *Config) {
			c.Poster.Cache.Backend = "none"
			c.Poster.Cache.TTL = 0
		}, false},
		{"redis with addr", func(c *Config) {
			c.Poster.Cache.Backend = "redis"
			c.Poster.Cache.RedisAddr = "localhost:6379"
		}, false},
		{"port zero", func(c *Config) { c.Server.Port = 0 }, true},
		{"rate limit too high", func(c *Config) { c.Security.RateLimitReqs = 200000 }, true},
		{"rate limit disabled skips bounds", func(c *Config) {
			c.Security.RateLimitDisabled = true
			c.Security.RateLimitReqs = 0
		}, false},
		{"rate window too short", func(c *Config) { c.Security.RateLimitWindow = time.Millisecond }, true},
		{"sweep interval too short", func(c *Config) { c.Maintenance.CacheSweepInterval = 10 * time.Millisecond }, true},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, true},
		{"empty log format", func(c *Config) { c.Logging.Format = "" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := defaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestShouldWarnAboutCORS(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig()
	if cfg.ShouldWarnAboutCORS() {
		t.Error("development should not warn")
	}

	cfg.Server.Environment = "production"
	if !cfg.ShouldWarnAboutCORS() {
		t.Error("production with * should warn")
	}

	cfg.Security.CORSOrigins = []string{"https://movies.example"}
	if cfg.ShouldWarnAboutCORS() {
		t.Error("explicit origins should not warn")
	}
}

func TestValidateHTTPURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		url     string
		wantErr bool
	}{
		{"https://api.themoviedb.org/3", false},
		{"http://localhost:8080", false},
		{"", true},
		{"api.themoviedb.org", true},
		{"ftp://host", true},
		{"https://", true},
		{"https://host/path?q=1", true},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			t.Parallel()
			err := validateHTTPURL(tt.url, "TEST_URL")
			if (err != nil) != tt.wantErr {
				t.Errorf("validateHTTPURL(%q) error = %v, wantErr %v", tt.url, err, tt.wantErr)
			}
		})
	}
}
