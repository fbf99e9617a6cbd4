// Cinematch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package main

import (
	"fmt"

	"github.com/tomtom215/cinematch/internal/catalog"
	"github.com/tomtom215/cinematch/internal/config"
	"github.com/tomtom215/cinematch/internal/logging"
	"github.com/tomtom215/cinematch/internal/poster"
	"github.com/tomtom215/cinematch/internal/presenter"
	"github.com/tomtom215/cinematch/internal/recommend"
)

// RecommendComponents holds the ranking engine and the presenter on top of it.
type RecommendComponents struct {
	Engine    *recommend.Engine
	Presenter *presenter.Presenter
}

func initRecommend(cfg *config.Config, cat *catalog.Catalog, fetcher poster.Fetcher) (*RecommendComponents, error) {
	engine, err := recommend.NewEngine(&recommend.Config{
		DefaultK: cfg.Recommend.DefaultK,
		MaxK:     cfg.Recommend.MaxK,
		Cache: recommend.CacheConfig{
			Enabled: cfg.Recommend.CacheEnabled,
			Size:    cfg.Recommend.CacheSize,
			TTL:     cfg.Recommend.CacheTTL,
		},
	}, cat, logging.Logger())
	if err != nil {
		return nil, fmt.Errorf("recommend engine: %w", err)
	}

	return &RecommendComponents{
		Engine:    engine,
		Presenter: presenter.New(engine, fetcher, logging.Logger()),
	}, nil
}
