// Cinematch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// TestDefaultConfig verifies that defaultConfig() returns proper defaults
func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig()

	if cfg.Catalog.Path != "models/catalog.json" {
		t.Errorf("Catalog.Path = %q", cfg.Catalog.Path)
	}
	if cfg.Catalog.Format != "auto" {
		t.Errorf("Catalog.Format = %q, want auto", cfg.Catalog.Format)
	}
	if cfg.Recommend.DefaultK != 5 || cfg.Recommend.MaxK != 20 {
		t.Errorf("Recommend k = %d/%d, want 5/20", cfg.Recommend.DefaultK, cfg.Recommend.MaxK)
	}
	if cfg.Poster.PlaceholderURL != "https://placehold.co/500x750/333/FFFFFF?text=No+Poster" {
		t.Errorf("Poster.PlaceholderURL = %q", cfg.Poster.PlaceholderURL)
	}
	if cfg.Poster.ImageBaseURL != "https://image.tmdb.org/t/p/w500" {
		t.Errorf("Poster.ImageBaseURL = %q", cfg.Poster.ImageBaseURL)
	}
	if cfg.Poster.Language != "en-US" {
		t.Errorf("Poster.Language = %q, want en-US", cfg.Poster.Language)
	}
	if cfg.Poster.Enabled() {
		t.Error("posters should be disabled without an API key")
	}
	if cfg.Poster.BreakerFailureRatio != 0.6 {
		t.Errorf("Poster.BreakerFailureRatio = %v, want 0.6", cfg.Poster.BreakerFailureRatio)
	}
	if cfg.Poster.Cache.Backend != "memory" {
		t.Errorf("Poster.Cache.Backend = %q, want memory", cfg.Poster.Cache.Backend)
	}
	if cfg.Server.Port != 8501 {
		t.Errorf("Server.Port = %d, want 8501", cfg.Server.Port)
	}
	if cfg.Maintenance.CacheSweepInterval != 5*time.Minute {
		t.Errorf("Maintenance.CacheSweepInterval = %v, want 5m", cfg.Maintenance.CacheSweepInterval)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestEnvTransformFunc(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
	}{
		{"CATALOG_PATH", "catalog.path"},
		{"RECOMMEND_MAX_K", "recommend.max_k"},
		{"TMDB_API_KEY", "poster.api_key"},
		{"POSTER_BREAKER_FAILURE_RATIO", "poster.breaker_failure_ratio"},
		{"POSTER_CACHE_BACKEND", "poster.cache.backend"},
		{"REDIS_ADDR", "poster.cache.redis_addr"},
		{"HTTP_PORT", "server.port"},
		{"DISABLE_RATE_LIMIT", "security.rate_limit_disabled"},
		{"LOG_LEVEL", "logging.level"},
		{"CACHE_SWEEP_INTERVAL", "maintenance.cache_sweep_interval"},
		{"log_format", "logging.format"},
		{"PATH", ""},
		{"HOME", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			if got := envTransformFunc(tt.input); got != tt.expected {
				t.Errorf("envTransformFunc(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestFindConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	t.Chdir(tmpDir)

	t.Run("no config file exists", func(t *testing.T) {
		t.Setenv(ConfigPathEnvVar, "")
		if got := findConfigFile(); got != "" {
			t.Errorf("findConfigFile() = %q, want empty", got)
		}
	})

	t.Run("config.yaml exists", func(t *testing.T) {
		t.Setenv(ConfigPathEnvVar, "")
		path := filepath.Join(tmpDir, "config.yaml")
		if err := os.WriteFile(path, []byte("logging:\n  level: info\n"), 0o600); err != nil {
			t.Fatal(err)
		}
		defer os.Remove(path)

		if got := findConfigFile(); got != "config.yaml" {
			t.Errorf("findConfigFile() = %q, want config.yaml", got)
		}
	})

	t.Run("CONFIG_PATH takes precedence", func(t *testing.T) {
		custom := filepath.Join(tmpDir, "custom.yaml")
		if err := os.WriteFile(custom, []byte("{}\n"), 0o600); err != nil {
			t.Fatal(err)
		}
		defer os.Remove(custom)
		t.Setenv(ConfigPathEnvVar, custom)

		if got := findConfigFile(); got != custom {
			t.Errorf("findConfigFile() = %q, want %q", got, custom)
		}
	})

	t.Run("CONFIG_PATH pointing nowhere falls back", func(t *testing.T) {
		t.Setenv(ConfigPathEnvVar, filepath.Join(tmpDir, "missing.yaml"))
		if got := findConfigFile(); got != "" {
			t.Errorf("findConfigFile() = %q, want empty", got)
		}
	})
}

func TestLoadWithKoanfEnvVars(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv(ConfigPathEnvVar, "")

	t.Setenv("CATALOG_PATH", "/data/models")
	t.Setenv("CATALOG_FORMAT", "parquet")
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("TMDB_API_KEY", "abc123")
	t.Setenv("POSTER_TIMEOUT", "2s")
	t.Setenv("POSTER_CACHE_BACKEND", "redis")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Catalog.Path != "/data/models" || cfg.Catalog.Format != "parquet" {
		t.Errorf("Catalog = %+v", cfg.Catalog)
	}
	if cfg.Server.Port != 9000 {
		t.Errorf("Server.Port = %d, want 9000", cfg.Server.Port)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
	if !cfg.Poster.Enabled() || cfg.Poster.APIKey != "abc123" {
		t.Errorf("Poster.APIKey = %q", cfg.Poster.APIKey)
	}
	if cfg.Poster.Timeout != 2*time.Second {
		t.Errorf("Poster.Timeout = %v, want 2s", cfg.Poster.Timeout)
	}
	if cfg.Poster.Cache.Backend != "redis" || cfg.Poster.Cache.RedisAddr != "localhost:6379" || cfg.Poster.Cache.RedisDB != 2 {
		t.Errorf("Poster.Cache = %+v", cfg.Poster.Cache)
	}
	if len(cfg.Security.CORSOrigins) != 2 || cfg.Security.CORSOrigins[1] != "https://b.example" {
		t.Errorf("Security.CORSOrigins = %v", cfg.Security.CORSOrigins)
	}

	// untouched defaults survive
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want 0.0.0.0", cfg.Server.Host)
	}
	if cfg.Recommend.DefaultK != 5 {
		t.Errorf("Recommend.DefaultK = %d, want 5", cfg.Recommend.DefaultK)
	}
}

func TestLoadWithKoanfConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	t.Chdir(tmpDir)

	content := `
catalog:
  path: /srv/bundle.json
recommend:
  max_k: 10
  cache_ttl: 30m
poster:
  rate_limit: 5
  cache:
    backend: none
logging:
  format: console
`
	path := filepath.Join(tmpDir, "cinematch.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(ConfigPathEnvVar, path)

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}
	if cfg.Catalog.Path != "/srv/bundle.json" {
		t.Errorf("Catalog.Path = %q", cfg.Catalog.Path)
	}
	if cfg.Recommend.MaxK != 10 || cfg.Recommend.CacheTTL != 30*time.Minute {
		t.Errorf("Recommend = %+v", cfg.Recommend)
	}
	if cfg.Poster.RateLimit != 5 {
		t.Errorf("Poster.RateLimit = %v, want 5", cfg.Poster.RateLimit)
	}
	if cfg.Poster.Cache.Backend != "none" {
		t.Errorf("Poster.Cache.Backend = %q, want none", cfg.Poster.Cache.Backend)
	}
	if cfg.Logging.Format != "console" {
		t.Errorf("Logging.Format = %q, want console", cfg.Logging.Format)
	}
}

func TestLoadWithKoanfEnvOverridesFile(t *testing.T) {
	tmpDir := t.TempDir()
	t.Chdir(tmpDir)

	path := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(path, []byte("server:\n  port: 7000\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(ConfigPathEnvVar, "")
	t.Setenv("HTTP_PORT", "7100")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}
	if cfg.Server.Port != 7100 {
		t.Errorf("Server.Port = %d, want 7100 from env", cfg.Server.Port)
	}
}

func TestLoadWithKoanfValidation(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{"bad catalog format", map[string]string{"CATALOG_FORMAT": "pickle"}, "CATALOG_FORMAT"},
		{"max_k below default_k", map[string]string{"RECOMMEND_MAX_K": "3"}, "RECOMMEND_MAX_K"},
		{"redis without addr", map[string]string{"POSTER_CACHE_BACKEND": "redis"}, "REDIS_ADDR"},
		{"bad log level", map[string]string{"LOG_LEVEL": "verbose"}, "LOG_LEVEL"},
		{"bad image base", map[string]string{"TMDB_IMAGE_BASE_URL": "ftp://images"}, "TMDB_IMAGE_BASE_URL"},
		{"port out of range", map[string]string{"HTTP_PORT": "70000"}, "HTTP_PORT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Chdir(t.TempDir())
			t.Setenv(ConfigPathEnvVar, "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := LoadWithKoanf()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q should mention %s", err, tt.wantErr)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv(ConfigPathEnvVar, "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg == nil {
		t.Fatal("Load() returned nil config")
	}
}
