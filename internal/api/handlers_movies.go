// Cinematch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package api

import (
	"net/http"
	"strconv"

	"github.com/tomtom215/cinematch/internal/catalog"
	"github.com/tomtom215/cinematch/internal/presenter"
)

// MovieSummary is one entry of the movie list.
type MovieSummary struct {
	MovieID int    `json:"movie_id"`
	Title   string `json:"title"`
	Year    string `json:"year"`
}

// MoviesResponse is the data of GET /api/v1/movies.
type MoviesResponse struct {
	Items []MovieSummary `json:"items"`
	Count int            `json:"count"`
	Total int            `json:"total"`
}

// Movies handles GET /api/v1/movies?q=&limit=, the title list used by
// selectors and type-ahead clients. Results keep catalog order.
func (h *Handler) Movies(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	req, verr := parseMoviesRequest(r.URL.Query())
	if verr != nil {
		rw.ValidationError(verr)
		return
	}

	movies := h.catalog.Search(req.Query, req.effectiveLimit())
	items := make([]MovieSummary, len(movies))
	for i, m := range movies {
		items[i] = summarize(m)
	}

	rw.Success(MoviesResponse{
		Items: items,
		Count: len(items),
		Total: h.catalog.Len(),
	})
}

func summarize(m catalog.Movie) MovieSummary {
	year := presenter.YearUnknown
	if m.Year != nil {
		year = strconv.Itoa(*m.Year)
	}
	return MovieSummary{MovieID: m.ID, Title: m.Title, Year: year}
}
