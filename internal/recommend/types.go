// Cinematch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package recommend

import "github.com/tomtom215/cinematch/internal/catalog"

// Store is the read-only catalog view the engine ranks against.
// *catalog.Catalog satisfies it.
type Store interface {
	Len() int
	IndexOf(title string) (int, error)
	RecordAt(i int) catalog.Movie
	Row(i int) []float64
}

// Recommendation is one ranked result.
type Recommendation struct {
	Movie catalog.Movie `json:"movie"`

	// Index is the movie's catalog row.
	Index int `json:"index"`

	// Score is the similarity to the query movie.
	Score float64 `json:"score"`
}

// Stats contains engine counters.
type Stats struct {
	Requests    int64 `json:"requests"`
	CacheHits   int64 `json:"cache_hits"`
	CacheMisses int64 `json:"cache_misses"`
	NotFound    int64 `json:"not_found"`
}
