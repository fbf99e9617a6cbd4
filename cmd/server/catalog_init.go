// Cinematch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package main

import (
	"errors"

	"github.com/tomtom215/cinematch/internal/catalog"
	"github.com/tomtom215/cinematch/internal/config"
	"github.com/tomtom215/cinematch/internal/logging"
	"github.com/tomtom215/cinematch/internal/metrics"
	"github.com/tomtom215/cinematch/internal/presenter"
)

// initCatalog loads the catalog artifact or exits. There is nothing to
// serve without it.
func initCatalog(cfg *config.Config) *catalog.Catalog {
	cat, err := catalog.Load(cfg.Catalog.Path, catalog.Format(cfg.Catalog.Format), logging.WithComponent("catalog"))
	if err != nil {
		event := logging.Fatal().Err(err).Str("path", cfg.Catalog.Path)
		var loadErr *catalog.LoadError
		if errors.As(err, &loadErr) {
			event = event.Str("source", loadErr.Source)
		}
		event.Msg(presenter.MsgModelMissing)
	}

	metrics.SetCatalogStats(cat.Len(), cat.Duplicates())
	return cat
}
