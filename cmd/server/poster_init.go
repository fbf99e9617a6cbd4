// Cinematch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tomtom215/cinematch/internal/api"
	"github.com/tomtom215/cinematch/internal/cache"
	"github.com/tomtom215/cinematch/internal/config"
	"github.com/tomtom215/cinematch/internal/logging"
	"github.com/tomtom215/cinematch/internal/poster"
)

// PosterComponents holds the poster pipeline built at startup.
type PosterComponents struct {
	Service *poster.Service
	Breaker *poster.BreakerClient // nil when no API key is configured
	Store   poster.Store          // nil when caching is disabled
	Sweeper cache.Sweeper         // set only for the memory store
}

// BreakerState returns the breaker for readiness reporting, or nil.
func (p *PosterComponents) BreakerState() api.BreakerStater {
	if p.Breaker == nil {
		return nil
	}
	return p.Breaker
}

// Close releases the store connection.
func (p *PosterComponents) Close() {
	if p.Store == nil {
		return
	}
	if err := p.Store.Close(); err != nil {
		logging.Warn().Err(err).Msg("Failed to close poster store")
	}
}

// initPosters wires TMDB client, circuit breaker, URL store and service.
// Without an API key every card gets the placeholder image.
func initPosters(cfg *config.Config) (*PosterComponents, error) {
	pc := cfg.Poster
	components := &PosterComponents{}

	var source poster.Source
	if pc.Enabled() {
		client := poster.NewTMDBClient(poster.TMDBClientConfig{
			APIBaseURL:   pc.APIBaseURL,
			ImageBaseURL: pc.ImageBaseURL,
			APIKey:       pc.APIKey,
			Language:     pc.Language,
			Timeout:      pc.Timeout,
			RateLimit:    pc.RateLimit,
			RateBurst:    pc.RateBurst,
		})
		components.Breaker = poster.NewBreakerClient(client, poster.BreakerConfig{
			Name:         "tmdb-api",
			MaxRequests:  pc.BreakerMaxRequests,
			Interval:     pc.BreakerInterval,
			Timeout:      pc.BreakerTimeout,
			MinRequests:  pc.BreakerMinRequests,
			FailureRatio: pc.BreakerFailureRatio,
		})
		source = components.Breaker
	} else {
		logging.Warn().Msg("TMDB_API_KEY not set; posters will use the placeholder image")
	}

	store, err := newPosterStore(pc.Cache)
	if err != nil {
		return nil, err
	}
	components.Store = store
	if ms, ok := store.(*poster.MemoryStore); ok {
		components.Sweeper = ms.Sweeper()
	}

	components.Service = poster.NewService(source, store, pc.PlaceholderURL, logging.Logger())

	logging.Info().
		Bool("tmdb", source != nil).
		Str("cache_backend", pc.Cache.Backend).
		Msg("Poster pipeline initialized")
	return components, nil
}

func newPosterStore(cc config.PosterCacheConfig) (poster.Store, error) {
	switch cc.Backend {
	case "", "none":
		return nil, nil
	case string(poster.StoreTypeMemory):
		return poster.NewStore(poster.StoreTypeMemory,
			poster.WithCapacity(cc.Size),
			poster.WithTTL(cc.TTL),
		)
	case string(poster.StoreTypeRedis):
		client := redis.NewClient(&redis.Options{
			Addr:     cc.RedisAddr,
			Password: cc.RedisPassword,
			DB:       cc.RedisDB,
		})

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Ping(ctx).Err(); err != nil {
			// Store errors degrade to cache misses, so an unreachable Redis
			// is not fatal.
			logging.Warn().Err(err).Str("addr", cc.RedisAddr).Msg("Redis ping failed; poster cache may be unavailable")
		}

		return poster.NewStore(poster.StoreTypeRedis,
			poster.WithRedisClient(client),
			poster.WithTTL(cc.TTL),
			poster.WithKeyPrefix(cc.KeyPrefix),
		)
	default:
		return nil, fmt.Errorf("unknown poster cache backend %q", cc.Backend)
	}
}
