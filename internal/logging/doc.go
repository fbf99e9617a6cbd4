// Cinematch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

// Package logging wraps zerolog behind a process-wide logger.
//
// Call Init once from main with values taken from config.LoggingConfig.
// Packages that own a long-lived component take a zerolog.Logger in their
// constructor and tag it with a component field; request-scoped code uses
// Ctx so that request_id and correlation_id follow every event.
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//	logging.Info().Int("movies", cat.Len()).Msg("Catalog loaded")
//
//	func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
//	    logging.Ctx(r.Context()).Debug().Str("title", title).Msg("Recommend")
//	}
//
// # slog bridge
//
// The suture supervisor reports through log/slog. NewSlogLogger returns a
// *slog.Logger whose records land in the same zerolog output.
package logging
