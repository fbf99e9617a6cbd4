// Cinematch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

// Package cache provides a generic, thread-safe LRU cache with TTL expiry.
//
// It backs the recommender's result cache and the in-memory poster URL
// store. Expired entries are dropped lazily on Get and in bulk by
// CleanupExpired, which the maintenance supervisor calls on a schedule
// through the Sweeper interface.
package cache

// Sweeper is implemented by caches the maintenance layer can sweep.
type Sweeper interface {
	// CleanupExpired drops expired entries and returns how many were removed.
	CleanupExpired() int
	// Len returns the current entry count.
	Len() int
}
