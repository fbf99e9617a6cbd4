// Cinematch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package services

import (
	"context"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/cinematch/internal/cache"
	"github.com/tomtom215/cinematch/internal/metrics"
)

// DefaultSweepInterval is used when the configured interval is not positive.
const DefaultSweepInterval = 5 * time.Minute

// CacheSweeperService periodically removes expired entries from in-process
// caches and publishes their sizes.
type CacheSweeperService struct {
	caches   map[string]cache.Sweeper
	names    []string
	interval time.Duration
	logger   zerolog.Logger
}

// NewCacheSweeperService sweeps the named caches every interval. Nil
// entries are skipped, so optional caches can be passed unconditionally.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewCacheSweeperService(caches map[string]cache.Sweeper, interval time.Duration, logger zerolog.Logger) *CacheSweeperService {
	if interval <= 0 {
		interval = DefaultSweepInterval
	}

	registered := make(map[string]cache.Sweeper, len(caches))
	names := make([]string, 0, len(caches))
	for name, c := range caches {
		if c == nil {
			continue
		}
		registered[name] = c
		names = append(names, name)
	}
	sort.Strings(names)

	return &CacheSweeperService{
		caches:   registered,
		names:    names,
		interval: interval,
		logger:   logger.With().Str("service", "cache-sweeper").Logger(),
	}
}

// Serve implements suture.Service.
func (s *CacheSweeperService) Serve(ctx context.Context) error {
	s.logger.Info().
		Strs("caches", s.names).
		Dur("interval", s.interval).
		Msg("cache sweeper starting")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.Sweep()
		}
	}
}

// Sweep runs one pass over all caches and returns the number of entries
// removed.
func (s *CacheSweeperService) Sweep() int {
	total := 0
	for _, name := range s.names {
		c := s.caches[name]
		removed := c.CleanupExpired()
		metrics.RecordCacheSweep(name, removed, c.Len())
		total += removed
	}
	if total > 0 {
		s.logger.Debug().Int("removed", total).Msg("expired cache entries removed")
	}
	return total
}

func (s *CacheSweeperService) String() string {
	return "cache-sweeper"
}
