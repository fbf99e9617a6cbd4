// Cinematch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
tmdb.go - TMDB movie details client

Only the poster_path field of GET /movie/{id} is used.

API Reference: https://developer.themoviedb.org/reference/movie-details
*/

package poster

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"
)

// maxErrorBody bounds how much of a non-200 body is kept for the error.
const maxErrorBody = 512

// Ensure TMDBClient implements Source
var _ Source = (*TMDBClient)(nil)

// TMDBClientConfig configures a TMDBClient.
type TMDBClientConfig struct {
	APIBaseURL   string
	ImageBaseURL string
	APIKey       string
	Language     string
	Timeout      time.Duration

	// RateLimit is requests per second; zero disables limiting.
	RateLimit float64
	RateBurst int
}

// TMDBClient provides access to the TMDB movie details endpoint.
type TMDBClient struct {
	apiBase    string
	imageBase  string
	apiKey     string
	language   string
	timeout    time.Duration
	limiter    *rate.Limiter
	httpClient *http.Client
}

type movieDetails struct {
	PosterPath *string `json:"poster_path"`
}

// NewTMDBClient creates a new TMDB client.
func NewTMDBClient(cfg TMDBClientConfig) *TMDBClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	c := &TMDBClient{
		apiBase:   strings.TrimSuffix(cfg.APIBaseURL, "/"),
		imageBase: strings.TrimSuffix(cfg.ImageBaseURL, "/"),
		apiKey:    cfg.APIKey,
		language:  cfg.Language,
		timeout:   timeout,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
	if cfg.RateLimit > 0 {
		burst := cfg.RateBurst
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)
	}
	return c
}

// PosterURL returns image_base + "/" + poster_path for movieID.
func (c *TMDBClient) PosterURL(ctx context.Context, movieID int) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return "", fmt.Errorf("tmdb rate limit wait: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.detailsURL(movieID), http.NoBody)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("tmdb request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return "", fmt.Errorf("tmdb movie %d returned status %d: %s", movieID, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var details movieDetails
	if err := json.NewDecoder(resp.Body).Decode(&details); err != nil {
		return "", fmt.Errorf("failed to decode tmdb movie %d: %w", movieID, err)
	}
	if details.PosterPath == nil || *details.PosterPath == "" {
		return "", ErrNoPosterPath
	}

	return c.imageBase + "/" + *details.PosterPath, nil
}

func (c *TMDBClient) detailsURL(movieID int) string {
	q := url.Values{}
	q.Set("api_key", c.apiKey)
	if c.language != "" {
		q.Set("language", c.language)
	}
	return c.apiBase + "/movie/" + strconv.Itoa(movieID) + "?" + q.Encode()
}
