// Cinematch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package poster

import (
	"context"
	"errors"
)

var (
	// ErrNoPosterPath is returned when TMDB knows the movie but has no poster.
	ErrNoPosterPath = errors.New("movie has no poster_path")

	// ErrInvalidStoreType is returned by NewStore for an unknown driver.
	ErrInvalidStoreType = errors.New("invalid poster store type")

	// ErrInvalidConfig is returned by NewStore when a driver is missing a
	// required option.
	ErrInvalidConfig = errors.New("invalid poster store configuration")
)

// Fetcher returns a displayable poster URL for a movie. It never fails.
type Fetcher interface {
	FetchPoster(ctx context.Context, movieID int) string
}

// Source looks up the real poster URL upstream.
type Source interface {
	PosterURL(ctx context.Context, movieID int) (string, error)
}
