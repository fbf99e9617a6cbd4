// Cinematch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package poster

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/tomtom215/cinematch/internal/logging"
	"github.com/tomtom215/cinematch/internal/metrics"
)

const storeCacheType = "poster"

// Ensure Service implements Fetcher
var _ Fetcher = (*Service)(nil)

// Service is the Fetcher used by the presenter.
type Service struct {
	source      Source // nil disables upstream lookups
	store       Store
	placeholder string
	logger      zerolog.Logger

	flight singleflight.Group
}

// NewService creates a poster service. source may be nil, in which case
// every lookup returns placeholder. store may be nil to disable caching.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewService(source Source, store Store, placeholder string, logger zerolog.Logger) *Service {
	return &Service{
		source:      source,
		store:       store,
		placeholder: placeholder,
		logger:      logger.With().Str("component", "poster").Logger(),
	}
}

// Placeholder returns the fallback URL.
func (s *Service) Placeholder() string {
	return s.placeholder
}

// FetchPoster returns the poster URL for movieID, or the placeholder on any
// failure.
func (s *Service) FetchPoster(ctx context.Context, movieID int) string {
	if s.source == nil {
		metrics.RecordPosterFetch(metrics.OutcomePlaceholder, 0)
		return s.placeholder
	}

	if u, ok := s.lookup(ctx, movieID); ok {
		metrics.RecordPosterFetch(metrics.OutcomeCacheHit, 0)
		return u
	}

	start := time.Now()
	ch := s.flight.DoChan(strconv.Itoa(movieID), func() (any, error) {
		// Shared by every waiter, so it must outlive the first caller.
		return s.resolve(context.WithoutCancel(ctx), movieID)
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			s.logFailure(ctx, movieID, res.Err)
			metrics.RecordPosterFetch(metrics.OutcomePlaceholder, time.Since(start))
			return s.placeholder
		}
		metrics.RecordPosterFetch(metrics.OutcomeOK, time.Since(start))
		return res.Val.(string)
	case <-ctx.Done():
		s.logFailure(ctx, movieID, ctx.Err())
		metrics.RecordPosterFetch(metrics.OutcomePlaceholder, time.Since(start))
		return s.placeholder
	}
}

func (s *Service) lookup(ctx context.Context, movieID int) (string, bool) {
	if s.store == nil {
		return "", false
	}
	u, ok, err := s.store.Get(ctx, movieID)
	if err != nil {
		s.logger.Warn().Err(err).Int("movie_id", movieID).Msg("Poster store read failed")
		return "", false
	}
	metrics.RecordCacheLookup(storeCacheType, ok)
	return u, ok
}

func (s *Service) resolve(ctx context.Context, movieID int) (string, error) {
	u, err := s.source.PosterURL(ctx, movieID)
	if err != nil {
		return "", err
	}
	if s.store != nil {
		if err := s.store.Set(ctx, movieID, u); err != nil {
			s.logger.Warn().Err(err).Int("movie_id", movieID).Msg("Poster store write failed")
		}
	}
	return u, nil
}

func (s *Service) logFailure(ctx context.Context, movieID int, err error) {
	logger := s.logger.With().
		Str("request_id", logging.RequestIDFromContext(ctx)).
		Int("movie_id", movieID).
		Logger()

	if errors.Is(err, ErrNoPosterPath) {
		logger.Debug().Msg("Movie has no poster, using placeholder")
		return
	}
	logger.Warn().Err(err).Msg("Poster fetch failed, using placeholder")
}
