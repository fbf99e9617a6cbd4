// Cinematch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package api

import (
	"context"
	"errors"
	"html/template"
	"time"

	"github.com/tomtom215/cinematch/internal/catalog"
	"github.com/tomtom215/cinematch/internal/presenter"
)

// DefaultRequestTimeout bounds the work of one handler, including poster
// lookups.
const DefaultRequestTimeout = 10 * time.Second

// Catalog is the read-only catalog view the handlers need.
// *catalog.Catalog satisfies it.
type Catalog interface {
	Len() int
	Duplicates() int
	Titles() []string
	Search(query string, limit int) []catalog.Movie
}

// Presenter builds recommendation results. *presenter.Presenter satisfies it.
type Presenter interface {
	PresentK(ctx context.Context, title string, k int) (*presenter.Result, error)
}

// BreakerStater reports a circuit breaker state for readiness output.
type BreakerStater interface {
	State() string
}

// HandlerConfig wires the handler's collaborators.
type HandlerConfig struct {
	Catalog   Catalog
	Presenter Presenter

	// PosterBreaker is optional; nil when posters are disabled.
	PosterBreaker BreakerStater

	// Timeout defaults to DefaultRequestTimeout.
	Timeout time.Duration
	Version string
}

// Handler serves the page, the JSON API and the health endpoints.
type Handler struct {
	catalog       Catalog
	presenter     Presenter
	posterBreaker BreakerStater
	timeout       time.Duration
	version       string
	startTime     time.Time

	// titles is computed once; the catalog never changes after load.
	titles []string
	page   *template.Template
}

// NewHandler validates cfg and parses the embedded page template.
func NewHandler(cfg HandlerConfig) (*Handler, error) {
	if cfg.Catalog == nil {
		return nil, errors.New("api: catalog is required")
	}
	if cfg.Presenter == nil {
		return nil, errors.New("api: presenter is required")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultRequestTimeout
	}

	page, err := parsePageTemplate()
	if err != nil {
		return nil, err
	}

	return &Handler{
		catalog:       cfg.Catalog,
		presenter:     cfg.Presenter,
		posterBreaker: cfg.PosterBreaker,
		timeout:       cfg.Timeout,
		version:       cfg.Version,
		startTime:     time.Now(),
		titles:        cfg.Catalog.Titles(),
		page:          page,
	}, nil
}
