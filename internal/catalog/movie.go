// Cinematch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package catalog

import "math"

// Movie is one row of the metadata table.
type Movie struct {
	ID          int      `json:"movie_id"`
	Title       string   `json:"title"`
	Year        *int     `json:"year,omitempty"`
	VoteAverage *float64 `json:"vote_average,omitempty"`
}

// HasYear reports whether the release year is known.
func (m Movie) HasYear() bool {
	return m.Year != nil
}

// Rating returns the vote average and whether it is usable. NaN counts as
// absent.
func (m Movie) Rating() (float64, bool) {
	if m.VoteAverage == nil || math.IsNaN(*m.VoteAverage) {
		return 0, false
	}
	return *m.VoteAverage, true
}
