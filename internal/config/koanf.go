// Cinematch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists config file locations in priority order.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/cinematch/config.yaml",
	"/etc/cinematch/config.yml",
}

// ConfigPathEnvVar overrides the config file location.
const ConfigPathEnvVar = "CONFIG_PATH"

// DefaultPlaceholderURL is shown for any movie whose poster cannot be resolved.
const DefaultPlaceholderURL = "https://placehold.co/500x750/333/FFFFFF?text=No+Poster"

func defaultConfig() *Config {
	return &Config{
		Catalog: CatalogConfig{
			Path:   "models/catalog.json",
			Format: "auto",
		},
		Recommend: RecommendConfig{
			DefaultK:     5,
			MaxK:         20,
			CacheEnabled: true,
			CacheSize:    1000,
			CacheTTL:     time.Hour,
		},
		Poster: PosterConfig{
			APIBaseURL:          "https://api.themoviedb.org/3",
			ImageBaseURL:        "https://image.tmdb.org/t/p/w500",
			APIKey:              "",
			Language:            "en-US",
			PlaceholderURL:      DefaultPlaceholderURL,
			Timeout:             5 * time.Second,
			RateLimit:           40,
			RateBurst:           10,
			BreakerMaxRequests:  3,
			BreakerInterval:     time.Minute,
			BreakerTimeout:      30 * time.Second,
			BreakerMinRequests:  5,
			BreakerFailureRatio: 0.6,
			Cache: PosterCacheConfig{
				Backend:   "memory",
				Size:      5000,
				TTL:       24 * time.Hour,
				RedisAddr: "",
				RedisDB:   0,
				KeyPrefix: "cinematch:poster:",
			},
		},
		Server: ServerConfig{
			Port:        8501,
			Host:        "0.0.0.0",
			Timeout:     30 * time.Second,
			Environment: "development",
		},
		Security: SecurityConfig{
			RateLimitReqs:     100,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: false,
			CORSOrigins:       []string{"*"},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
		Maintenance: MaintenanceConfig{
			CacheSweepInterval: 5 * time.Minute,
		},
	}
}

// LoadWithKoanf loads configuration in three layers with ENV > file > defaults
// precedence, then validates the result.
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// CATALOG_PATH -> catalog.path, REDIS_ADDR -> poster.cache.redis_addr, ...
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// findConfigFile returns the first existing config file, or "".
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// sliceConfigPaths are parsed from comma-separated strings when set via env.
var sliceConfigPaths = []string{
	"security.cors_origins",
}

func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) == 0 {
			continue
		}
		if err := k.Set(path, trimmed); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

// envMappings maps lower-cased environment variable names to koanf paths.
// Variables not listed here are ignored.
var envMappings = map[string]string{
	"catalog_path":   "catalog.path",
	"catalog_format": "catalog.format",

	"recommend_default_k":     "recommend.default_k",
	"recommend_max_k":         "recommend.max_k",
	"recommend_cache_enabled": "recommend.cache_enabled",
	"recommend_cache_size":    "recommend.cache_size",
	"recommend_cache_ttl":     "recommend.cache_ttl",

	"tmdb_api_key":           "poster.api_key",
	"tmdb_api_base_url":      "poster.api_base_url",
	"tmdb_image_base_url":    "poster.image_base_url",
	"tmdb_language":          "poster.language",
	"poster_placeholder_url": "poster.placeholder_url",
	"poster_timeout":         "poster.timeout",
	"poster_rate_limit":      "poster.rate_limit",
	"poster_rate_burst":      "poster.rate_burst",

	"poster_breaker_max_requests":  "poster.breaker_max_requests",
	"poster_breaker_interval":      "poster.breaker_interval",
	"poster_breaker_timeout":       "poster.breaker_timeout",
	"poster_breaker_min_requests":  "poster.breaker_min_requests",
	"poster_breaker_failure_ratio": "poster.breaker_failure_ratio",

	"poster_cache_backend":    "poster.cache.backend",
	"poster_cache_size":       "poster.cache.size",
	"poster_cache_ttl":        "poster.cache.ttl",
	"poster_cache_key_prefix": "poster.cache.key_prefix",
	"redis_addr":              "poster.cache.redis_addr",
	"redis_password":          "poster.cache.redis_password",
	"redis_db":                "poster.cache.redis_db",

	"http_port":    "server.port",
	"http_host":    "server.host",
	"http_timeout": "server.timeout",
	"environment":  "server.environment",

	"rate_limit_requests": "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",
	"cors_origins":        "security.cors_origins",

	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",

	"cache_sweep_interval": "maintenance.cache_sweep_interval",
}

// envTransformFunc maps an environment variable name to its koanf path,
// returning "" for unknown variables so they are skipped.
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
