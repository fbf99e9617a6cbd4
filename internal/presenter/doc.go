// Cinematch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

// Package presenter combines recommendations with posters into display cards
// shared by the HTML page and the JSON API.
//
// Display rules:
//   - Year shows "N/A" when unknown.
//   - A missing or NaN rating drives the rating bar as 0 and is labelled
//     "0.0/10"; HasRating tells the two apart.
//   - RatingFraction is the rating over 10, clamped to [0, 1].
//
// Message maps Present errors to the user-facing banners.
package presenter
