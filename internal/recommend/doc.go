// Cinematch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

// Package recommend ranks catalog movies by precomputed content similarity.
//
// # Ranking
//
// For a query title the engine reads the title's similarity row, self entry
// included, and sorts every (index, score) pair by score descending with a
// stable sort, so ties keep ascending catalog order. Position 0 of the sorted
// row is dropped as-is and the next k entries are returned. When the self
// score is the unique row maximum this removes the query movie from its own
// results. NaN scores rank below every number.
//
// # Usage
//
//	engine, err := recommend.NewEngine(recommend.DefaultConfig(), cat, logger)
//	if err != nil {
//	    return err
//	}
//	recs, err := engine.Recommend(ctx, "Avatar", 5)
//	if errors.Is(err, catalog.ErrNotFound) {
//	    // show "not found"
//	}
//
// # Caching
//
// Results are cached per (title, k) in an LRU. The catalog never changes at
// runtime, so entries are never stale and the TTL only bounds memory. Cache
// returns a Sweeper so the maintenance layer can drop expired entries.
//
// # Thread Safety
//
// Engine is safe for concurrent use.
package recommend
