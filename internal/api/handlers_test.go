// Cinematch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/cinematch/internal/catalog"
	"github.com/tomtom215/cinematch/internal/presenter"
	"github.com/tomtom215/cinematch/internal/recommend"
)

func intPtr(v int) *int {
	return &v
}

func floatPtr(v float64) *float64 {
	return &v
}

func newTestCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()

	movies := []catalog.Movie{
		{ID: 10, Title: "Alpha", Year: intPtr(2001), VoteAverage: floatPtr(7.5)},
		{ID: 11, Title: "Bravo"},
		{ID: 12, Title: "Charlie", Year: intPtr(1999)},
		{ID: 13, Title: "Delta", Year: intPtr(2010), VoteAverage: floatPtr(10)},
		{ID: 14, Title: "Echo", Year: intPtr(2015), VoteAverage: floatPtr(0)},
		{ID: 15, Title: "Foxtrot", Year: intPtr(1985), VoteAverage: floatPtr(8.1)},
		{ID: 16, Title: "Golf", Year: intPtr(2020), VoteAverage: floatPtr(5.25)},
	}
	n := len(movies)
	matrix := make([][]float64, n)
	for i := range matrix {
		matrix[i] = make([]float64, n)
		for j := range matrix[i] {
			if i == j {
				matrix[i][j] = 1
			} else {
				matrix[i][j] = 1 / float64(2+i+j)
			}
		}
	}
	matrix[3] = []float64{0.1, 0.4, 0.9, 1.0, 0.9, 0.2, 0.05}

	cat, err := catalog.New(movies, matrix)
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}
	return cat
}

type urlFetcher struct{}

func (urlFetcher) FetchPoster(_ context.Context, id int) string {
	return fmt.Sprintf("https://img.example/%d.jpg", id)
}

type stubBreaker string

func (s stubBreaker) State() string {
	return string(s)
}

func newTestRouter(t *testing.T, mwCfg *ChiMiddlewareConfig) http.Handler {
	t.Helper()

	cat := newTestCatalog(t)
	engine, err := recommend.NewEngine(nil, cat, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	h, err := NewHandler(HandlerConfig{
		Catalog:       cat,
		Presenter:     presenter.New(engine, urlFetcher{}, zerolog.Nop()),
		PosterBreaker: stubBreaker("closed"),
		Version:       "test",
	})
	if err != nil {
		t.Fatalf("NewHandler: %v", err)
	}
	return NewRouter(h, NewChiMiddleware(mwCfg)).SetupChi()
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *APIError       `json:"error"`
	Meta    *APIMeta        `json:"meta"`
}

func doGet(t *testing.T, h http.Handler, target string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

	var env envelope
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
			t.Fatalf("decode %s: %v", target, err)
		}
	}
	return rec, env
}

func TestRecommendations_WorkedExample(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, nil)
	rec, env := doGet(t, router, "/api/v1/recommendations?title=Delta")

	if rec.Code != http.StatusOK || !env.Success {
		t.Fatalf("status = %d success = %v body = %s", rec.Code, env.Success, rec.Body.String())
	}

	var result presenter.Result
	if err := json.Unmarshal(env.Data, &result); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if result.Message != "Here are 5 movies similar to Delta" {
		t.Errorf("message = %q", result.Message)
	}

	wantIDs := []int{12, 14, 11, 15, 16}
	if len(result.Cards) != len(wantIDs) {
		t.Fatalf("got %d items, want %d", len(result.Cards), len(wantIDs))
	}
	for i, c := range result.Cards {
		if c.MovieID != wantIDs[i] {
			t.Errorf("item %d movie_id = %d, want %d", i, c.MovieID, wantIDs[i])
		}
		if c.PosterURL != fmt.Sprintf("https://img.example/%d.jpg", c.MovieID) {
			t.Errorf("item %d poster_url = %q", i, c.PosterURL)
		}
	}
	if result.Cards[0].Year != "1999" || result.Cards[2].Year != presenter.YearUnknown {
		t.Errorf("years = %q, %q", result.Cards[0].Year, result.Cards[2].Year)
	}

	requestID := rec.Header().Get("X-Request-ID")
	if requestID == "" {
		t.Error("X-Request-ID header missing")
	}
	if env.Meta == nil || env.Meta.RequestID != requestID {
		t.Errorf("meta.request_id = %+v, want %q", env.Meta, requestID)
	}
	if rec.Header().Get("X-Content-Type-Options") != "nosniff" {
		t.Error("security headers missing")
	}
	if rec.Header().Get("Cache-Control") != "no-store" {
		t.Errorf("Cache-Control = %q", rec.Header().Get("Cache-Control"))
	}
}

func TestRecommendations_Errors(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, nil)

	tests := []struct {
		name       string
		target     string
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{"missing title", "/api/v1/recommendations", http.StatusBadRequest, ErrCodeNoSelection, presenter.MsgNoSelection},
		{"empty title", "/api/v1/recommendations?title=", http.StatusBadRequest, ErrCodeNoSelection, presenter.MsgNoSelection},
		{"unknown title", "/api/v1/recommendations?title=Zulu", http.StatusNotFound, ErrCodeMovieNotFound, presenter.MsgNotFound},
		{"case differs", "/api/v1/recommendations?title=delta", http.StatusNotFound, ErrCodeMovieNotFound, presenter.MsgNotFound},
		{"k not integer", "/api/v1/recommendations?title=Delta&k=abc", http.StatusBadRequest, ErrCodeValidationFailed, "k must be an integer"},
		{"k zero", "/api/v1/recommendations?title=Delta&k=0", http.StatusBadRequest, ErrCodeValidationFailed, "k must be at least 1"},
		{"k too large", "/api/v1/recommendations?title=Delta&k=101", http.StatusBadRequest, ErrCodeValidationFailed, "k must be at most 100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec, env := doGet(t, router, tt.target)
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d: %s", rec.Code, tt.wantStatus, rec.Body.String())
			}
			if env.Success || env.Error == nil {
				t.Fatalf("expected error envelope, got %s", rec.Body.String())
			}
			if env.Error.Code != tt.wantCode {
				t.Errorf("code = %q, want %q", env.Error.Code, tt.wantCode)
			}
			if env.Error.Message != tt.wantMsg {
				t.Errorf("message = %q, want %q", env.Error.Message, tt.wantMsg)
			}
			if env.Error.RequestID == "" {
				t.Error("error.request_id missing")
			}
		})
	}
}

func TestRecommendations_K(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, nil)

	for _, tt := range []struct {
		k    string
		want int
	}{
		{"2", 2},
		{"6", 6},
		{"50", 6}, // clamped to MaxK, then limited by catalog size
	} {
		_, env := doGet(t, router, "/api/v1/recommendations?title=Alpha&k="+tt.k)
		var result presenter.Result
		if err := json.Unmarshal(env.Data, &result); err != nil {
			t.Fatalf("k=%s decode: %v", tt.k, err)
		}
		if len(result.Cards) != tt.want {
			t.Errorf("k=%s: got %d items, want %d", tt.k, len(result.Cards), tt.want)
		}
	}
}

type errPresenter struct {
	err error
}

func (p errPresenter) PresentK(context.Context, string, int) (*presenter.Result, error) {
	return nil, p.err
}

func TestRecommendations_InternalErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err        error
		wantStatus int
		wantCode   string
	}{
		{errors.New("boom"), http.StatusInternalServerError, ErrCodeInternalError},
		{fmt.Errorf("poster: %w", context.DeadlineExceeded), http.StatusGatewayTimeout, ErrCodeTimeout},
	}

	for _, tt := range tests {
		h, err := NewHandler(HandlerConfig{
			Catalog:   newTestCatalog(t),
			Presenter: errPresenter{err: tt.err},
		})
		if err != nil {
			t.Fatalf("NewHandler: %v", err)
		}
		rec, env := doGet(t, NewRouter(h, nil).SetupChi(), "/api/v1/recommendations?title=Alpha")
		if rec.Code != tt.wantStatus || env.Error == nil || env.Error.Code != tt.wantCode {
			t.Errorf("%v: status = %d body = %s", tt.err, rec.Code, rec.Body.String())
			continue
		}
		if env.Error.Message != presenter.MsgInternal {
			t.Errorf("%v: message = %q", tt.err, env.Error.Message)
		}
	}
}

func TestMovies(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, nil)

	tests := []struct {
		name      string
		target    string
		wantCount int
		wantFirst string
	}{
		{"all titles", "/api/v1/movies", 7, "Alpha"},
		{"substring", "/api/v1/movies?q=HA", 2, "Alpha"},
		{"limit", "/api/v1/movies?limit=3", 3, "Alpha"},
		{"substring and limit", "/api/v1/movies?q=ha&limit=1", 1, "Alpha"},
		{"no match", "/api/v1/movies?q=zzz", 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec, env := doGet(t, router, tt.target)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
			}
			var resp MoviesResponse
			if err := json.Unmarshal(env.Data, &resp); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if resp.Count != tt.wantCount || len(resp.Items) != tt.wantCount {
				t.Fatalf("count = %d items = %d, want %d", resp.Count, len(resp.Items), tt.wantCount)
			}
			if resp.Total != 7 {
				t.Errorf("total = %d, want 7", resp.Total)
			}
			if tt.wantFirst != "" && resp.Items[0].Title != tt.wantFirst {
				t.Errorf("first = %q, want %q", resp.Items[0].Title, tt.wantFirst)
			}
		})
	}
}

func TestMovies_Validation(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, nil)
	for _, target := range []string{
		"/api/v1/movies?limit=0",
		"/api/v1/movies?limit=1001",
		"/api/v1/movies?limit=ten",
		"/api/v1/movies?q=" + strings.Repeat("a", 201),
	} {
		rec, env := doGet(t, router, target)
		if rec.Code != http.StatusBadRequest || env.Error == nil || env.Error.Code != ErrCodeValidationFailed {
			t.Errorf("%s: status = %d body = %s", target, rec.Code, rec.Body.String())
		}
	}
}

func TestMoviesRequest_EffectiveLimit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		req  MoviesRequest
		want int
	}{
		{MoviesRequest{}, 0},
		{MoviesRequest{Query: "a"}, defaultSearchLimit},
		{MoviesRequest{Query: "a", Limit: intPtr(5)}, 5},
		{MoviesRequest{Limit: intPtr(7)}, 7},
	}
	for _, tt := range tests {
		if got := tt.req.effectiveLimit(); got != tt.want {
			t.Errorf("effectiveLimit(%+v) = %d, want %d", tt.req, got, tt.want)
		}
	}
}

func TestHealth(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, nil)

	rec, env := doGet(t, router, "/api/v1/health/live")
	if rec.Code != http.StatusOK || !env.Success {
		t.Errorf("live status = %d", rec.Code)
	}
	var live LivenessResponse
	if err := json.Unmarshal(env.Data, &live); err != nil || live.Status != "alive" || live.Version != "test" {
		t.Errorf("live = %+v (%v)", live, err)
	}

	rec, env = doGet(t, router, "/api/v1/health/ready")
	if rec.Code != http.StatusOK {
		t.Fatalf("ready status = %d", rec.Code)
	}
	var ready ReadinessResponse
	if err := json.Unmarshal(env.Data, &ready); err != nil {
		t.Fatalf("decode ready: %v", err)
	}
	if ready.Status != "ready" || ready.Movies != 7 || ready.PosterAPI != "closed" {
		t.Errorf("ready = %+v", ready)
	}
}

type emptyCatalog struct{}

func (emptyCatalog) Len() int {
	return 0
}

func (emptyCatalog) Duplicates() int {
	return 0
}

func (emptyCatalog) Titles() []string {
	return nil
}

func (emptyCatalog) Search(string, int) []catalog.Movie {
	return nil
}

func TestHealthReady_EmptyCatalog(t *testing.T) {
	t.Parallel()

	h, err := NewHandler(HandlerConfig{Catalog: emptyCatalog{}, Presenter: errPresenter{}})
	if err != nil {
		t.Fatalf("NewHandler: %v", err)
	}
	rec, env := doGet(t, NewRouter(h, nil).SetupChi(), "/api/v1/health/ready")
	if rec.Code != http.StatusServiceUnavailable || env.Error == nil || env.Error.Code != ErrCodeServiceUnavailable {
		t.Errorf("status = %d body = %s", rec.Code, rec.Body.String())
	}
}

func TestNewHandler_Validation(t *testing.T) {
	t.Parallel()

	if _, err := NewHandler(HandlerConfig{Presenter: errPresenter{}}); err == nil {
		t.Error("expected error for missing catalog")
	}
	if _, err := NewHandler(HandlerConfig{Catalog: emptyCatalog{}}); err == nil {
		t.Error("expected error for missing presenter")
	}

	h, err := NewHandler(HandlerConfig{Catalog: emptyCatalog{}, Presenter: errPresenter{}})
	if err != nil {
		t.Fatalf("NewHandler: %v", err)
	}
	if h.timeout != DefaultRequestTimeout {
		t.Errorf("timeout = %v, want %v", h.timeout, DefaultRequestTimeout)
	}
}

func TestRouter_NotFoundAndMethod(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, nil)

	rec, env := doGet(t, router, "/api/v1/nope")
	if rec.Code != http.StatusNotFound || env.Error == nil || env.Error.Code != ErrCodeNotFound {
		t.Errorf("unknown route: status = %d body = %s", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/recommendations", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("POST status = %d, want 405", rec.Code)
	}
}

func TestRouter_RateLimit(t *testing.T) {
	t.Parallel()

	cfg := DefaultChiMiddlewareConfig()
	cfg.RateLimitRequests = 2
	cfg.RateLimitWindow = time.Minute
	router := newTestRouter(t, cfg)

	for i := 0; i < 2; i++ {
		if rec, _ := doGet(t, router, "/api/v1/movies"); rec.Code != http.StatusOK {
			t.Fatalf("request %d status = %d", i, rec.Code)
		}
	}
	rec, env := doGet(t, router, "/api/v1/movies")
	if rec.Code != http.StatusTooManyRequests || env.Error == nil || env.Error.Code != ErrCodeTooManyRequests {
		t.Errorf("status = %d body = %s", rec.Code, rec.Body.String())
	}

	// health has its own, more permissive limiter
	if rec, _ := doGet(t, router, "/api/v1/health/live"); rec.Code != http.StatusOK {
		t.Errorf("health status = %d after API limit", rec.Code)
	}
}

func TestRouter_RateLimitDisabled(t *testing.T) {
	t.Parallel()

	cfg := DefaultChiMiddlewareConfig()
	cfg.RateLimitRequests = 1
	cfg.RateLimitDisabled = true
	router := newTestRouter(t, cfg)

	for i := 0; i < 5; i++ {
		if rec, _ := doGet(t, router, "/api/v1/movies?limit=1"); rec.Code != http.StatusOK {
			t.Fatalf("request %d status = %d", i, rec.Code)
		}
	}
}

func TestRouter_RequestIDPropagation(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, nil)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/health/live", nil)
	req.Header.Set("X-Request-ID", "req-from-proxy")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Request-ID"); got != "req-from-proxy" {
		t.Errorf("X-Request-ID = %q, want the inbound value", got)
	}
	if !strings.Contains(rec.Body.String(), `"request_id":"req-from-proxy"`) {
		t.Errorf("body does not carry request id: %s", rec.Body.String())
	}
}

func TestRouter_Metrics(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, nil)
	doGet(t, router, "/api/v1/movies")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `api_requests_total{endpoint="/api/v1/movies"`) {
		t.Error("api_requests_total for /api/v1/movies not exposed")
	}
}
