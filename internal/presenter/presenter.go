// Cinematch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package presenter

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/cinematch/internal/catalog"
	"github.com/tomtom215/cinematch/internal/poster"
	"github.com/tomtom215/cinematch/internal/recommend"
)

// User-facing messages.
const (
	MsgNoSelection  = "Please select a movie first!"
	MsgNotFound     = "Movie not found in the dataset. Please select another one."
	MsgModelMissing = "Model files not found. Please run the preprocessing notebook first."
	MsgInternal     = "Something went wrong. Please try again."
)

// YearUnknown is displayed for movies without a release year.
const YearUnknown = "N/A"

// maxPosterFetches bounds concurrent poster lookups per request.
const maxPosterFetches = 8

// ErrNoSelection is returned when no title was chosen.
var ErrNoSelection = errors.New("no movie selected")

// Recommender is the ranking dependency. *recommend.Engine satisfies it.
type Recommender interface {
	Recommend(ctx context.Context, title string, k int) ([]recommend.Recommendation, error)
}

// Card is one display record.
type Card struct {
	MovieID int    `json:"movie_id"`
	Title   string `json:"title"`
	Year    string `json:"year"`

	// Score is null when the similarity is not a finite number.
	Score *float64 `json:"score"`

	PosterURL      string  `json:"poster_url"`
	Rating         float64 `json:"rating"`
	HasRating      bool    `json:"has_rating"`
	RatingFraction float64 `json:"rating_fraction"`
	RatingLabel    string  `json:"rating_label"`
}

// RatingPercent is RatingFraction scaled to 0..100 for progress bars.
func (c Card) RatingPercent() int {
	return int(math.Round(c.RatingFraction * 100))
}

// Result is a rendered recommendation set.
type Result struct {
	Query   string `json:"query"`
	Message string `json:"message"`
	Cards   []Card `json:"items"`
}

// Presenter turns recommendations into display cards with posters.
type Presenter struct {
	recommender Recommender
	posters     poster.Fetcher
	logger      zerolog.Logger
}

// New creates a Presenter.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func New(rec Recommender, posters poster.Fetcher, logger zerolog.Logger) *Presenter {
	return &Presenter{
		recommender: rec,
		posters:     posters,
		logger:      logger.With().Str("component", "presenter").Logger(),
	}
}

// Present recommends the default number of movies for title.
func (p *Presenter) Present(ctx context.Context, title string) (*Result, error) {
	return p.PresentK(ctx, title, 0)
}

// PresentK recommends k movies for title and resolves their posters
// concurrently. The card order is the recommender's order.
func (p *Presenter) PresentK(ctx context.Context, title string, k int) (*Result, error) {
	if title == "" {
		return nil, ErrNoSelection
	}

	recs, err := p.recommender.Recommend(ctx, title, k)
	if err != nil {
		return nil, err
	}

	cards := make([]Card, len(recs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxPosterFetches)
	for i, rec := range recs {
		cards[i] = NewCard(rec)
		g.Go(func() error {
			cards[i].PosterURL = p.posters.FetchPoster(gctx, rec.Movie.ID)
			return nil
		})
	}
	_ = g.Wait() // fetchers never fail

	return &Result{
		Query:   title,
		Message: fmt.Sprintf("Here are %d movies similar to %s", len(cards), title),
		Cards:   cards,
	}, nil
}

// NewCard builds the display fields of rec; PosterURL is left empty.
func NewCard(rec recommend.Recommendation) Card {
	m := rec.Movie
	c := Card{
		MovieID: m.ID,
		Title:   m.Title,
		Year:    YearUnknown,
	}
	if m.Year != nil {
		c.Year = strconv.Itoa(*m.Year)
	}
	if !math.IsNaN(rec.Score) && !math.IsInf(rec.Score, 0) {
		s := rec.Score
		c.Score = &s
	}
	if r, ok := m.Rating(); ok {
		c.Rating = r
		c.HasRating = true
		c.RatingFraction = clamp(r/10, 0, 1)
	}
	c.RatingLabel = fmt.Sprintf("%.1f/10", c.Rating)
	return c
}

// Message maps an error from Present to the text shown to users.
func Message(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNoSelection):
		return MsgNoSelection
	case errors.Is(err, catalog.ErrNotFound):
		return MsgNotFound
	case errors.Is(err, catalog.ErrLoad):
		return MsgModelMissing
	default:
		return MsgInternal
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
