// Cinematch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package catalog

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/goccy/go-json"
)

// jsonBundle mirrors the column-dictionary layout of the preprocessing
// output. Years are decoded as floats because dataframe exports write
// integer columns with missing values as floats.
type jsonBundle struct {
	Movies struct {
		MovieID     []int64    `json:"movie_id"`
		Title       []string   `json:"title"`
		Year        []*float64 `json:"year"`
		VoteAverage []*float64 `json:"vote_average"`
	} `json:"movies"`
	Similarity [][]float64 `json:"similarity"`
}

func loadJSON(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Source: path, Err: err}
	}
	defer f.Close()

	cat, err := decodeJSON(bufio.NewReader(f))
	if err != nil {
		return nil, &LoadError{Source: path, Err: err}
	}
	return cat, nil
}

// decodeJSON reads one JSON bundle from r.
func decodeJSON(r io.Reader) (*Catalog, error) {
	var b jsonBundle
	if err := json.NewDecoder(r).Decode(&b); err != nil {
		return nil, fmt.Errorf("decode json bundle: %w", err)
	}

	n := len(b.Movies.Title)
	cols := map[string]int{
		"movie_id":     len(b.Movies.MovieID),
		"year":         len(b.Movies.Year),
		"vote_average": len(b.Movies.VoteAverage),
	}
	for name, l := range cols {
		if l != n {
			return nil, fmt.Errorf("column %s has %d values, title has %d", name, l, n)
		}
	}

	movies := make([]Movie, n)
	for i := 0; i < n; i++ {
		year, err := integralYear(b.Movies.Year[i])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		movies[i] = Movie{
			ID:          int(b.Movies.MovieID[i]),
			Title:       b.Movies.Title[i],
			Year:        year,
			VoteAverage: b.Movies.VoteAverage[i],
		}
	}

	return New(movies, b.Similarity)
}

func integralYear(v *float64) (*int, error) {
	if v == nil {
		return nil, nil
	}
	f := *v
	if math.IsNaN(f) {
		return nil, nil
	}
	if math.IsInf(f, 0) || math.Trunc(f) != f {
		return nil, fmt.Errorf("year %v is not an integer", f)
	}
	y := int(f)
	return &y, nil
}
