// Cinematch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package recommend

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/cinematch/internal/cache"
	"github.com/tomtom215/cinematch/internal/catalog"
	"github.com/tomtom215/cinematch/internal/logging"
	"github.com/tomtom215/cinematch/internal/metrics"
)

const cacheType = "recommend"

// Engine produces the top-k most similar movies for a title.
// It is safe for concurrent use.
type Engine struct {
	config *Config
	logger zerolog.Logger
	store  Store

	// nil when caching is disabled
	cache *cache.LRU[[]Recommendation]

	requestCount atomic.Int64
	cacheHits    atomic.Int64
	cacheMisses  atomic.Int64
	notFound     atomic.Int64
}

// NewEngine creates a new recommendation engine over store.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, store Store, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if store == nil {
		return nil, errors.New("store is required")
	}

	e := &Engine{
		config: cfg,
		store:  store,
		logger: logger.With().Str("component", "recommend").Logger(),
	}
	if cfg.Cache.Enabled {
		e.cache = cache.NewLRU[[]Recommendation](cfg.Cache.Size, cfg.Cache.TTL)
	}
	return e, nil
}

// Recommend returns up to k movies most similar to title, best first.
// k <= 0 selects the configured default and k above the maximum is clamped.
// An unknown title yields an empty result and an error matching
// catalog.ErrNotFound.
func (e *Engine) Recommend(ctx context.Context, title string, k int) ([]Recommendation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	e.requestCount.Add(1)
	k = e.config.clampK(k)

	logger := e.logger.With().
		Str("request_id", logging.RequestIDFromContext(ctx)).
		Str("title", title).
		Int("k", k).
		Logger()

	key := cacheKey(title, k)
	if recs, ok := e.cachedResult(key); ok {
		metrics.RecordRecommendation(metrics.OutcomeCacheHit, time.Since(start))
		logger.Debug().Msg("cache hit")
		return recs, nil
	}

	idx, err := e.store.IndexOf(title)
	if err != nil {
		e.notFound.Add(1)
		metrics.RecordRecommendation(metrics.OutcomeNotFound, time.Since(start))
		logger.Debug().Msg("title not in catalog")
		return nil, err
	}

	recs := e.rank(idx, k)
	if e.cache != nil {
		e.cache.Add(key, copyRecommendations(recs))
	}

	metrics.RecordRecommendation(metrics.OutcomeOK, time.Since(start))
	logger.Debug().
		Int("index", idx).
		Int("returned", len(recs)).
		Dur("latency", time.Since(start)).
		Msg("recommendation complete")

	return recs, nil
}

// rank orders row idx and resolves positions 1..k of the sorted sequence.
func (e *Engine) rank(idx, k int) []Recommendation {
	row := e.store.Row(idx)
	order := RankIndices(row, k)

	recs := make([]Recommendation, len(order))
	for i, j := range order {
		recs[i] = Recommendation{
			Movie: e.store.RecordAt(j),
			Index: j,
			Score: row[j],
		}
	}
	return recs
}

// RankIndices sorts the indexes of row by score descending, keeping catalog
// order among equal scores, drops the first position and returns up to k of
// the rest.
func RankIndices(row []float64, k int) []int {
	order := make([]int, len(row))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scoreGreater(row[order[a]], row[order[b]])
	})

	if len(order) <= 1 || k <= 0 {
		return []int{}
	}
	order = order[1:]
	if len(order) > k {
		order = order[:k]
	}
	return order
}

// scoreGreater orders numbers descending with NaN after every number.
func scoreGreater(a, b float64) bool {
	if math.IsNaN(a) {
		return false
	}
	if math.IsNaN(b) {
		return true
	}
	return a > b
}

func (e *Engine) cachedResult(key string) ([]Recommendation, bool) {
	if e.cache == nil {
		return nil, false
	}

	recs, ok := e.cache.Get(key)
	metrics.RecordCacheLookup(cacheType, ok)
	if !ok {
		e.cacheMisses.Add(1)
		return nil, false
	}
	e.cacheHits.Add(1)
	return copyRecommendations(recs), true
}

// Cache returns the result cache for periodic sweeping, or nil when caching
// is disabled.
func (e *Engine) Cache() cache.Sweeper {
	if e.cache == nil {
		return nil
	}
	return e.cache
}

// Stats returns a snapshot of engine counters.
func (e *Engine) Stats() Stats {
	return Stats{
		Requests:    e.requestCount.Load(),
		CacheHits:   e.cacheHits.Load(),
		CacheMisses: e.cacheMisses.Load(),
		NotFound:    e.notFound.Load(),
	}
}

// Config returns the engine configuration.
func (e *Engine) Config() Config {
	return *e.config
}

func cacheKey(title string, k int) string {
	return title + "\x00" + strconv.Itoa(k)
}

func copyRecommendations(recs []Recommendation) []Recommendation {
	out := make([]Recommendation, len(recs))
	copy(out, recs)
	return out
}

var _ Store = (*catalog.Catalog)(nil)
