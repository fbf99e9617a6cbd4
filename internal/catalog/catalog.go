// Cinematch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// Catalog is the immutable movie table plus similarity matrix.
// All methods are safe for concurrent use.
type Catalog struct {
	movies      []Movie
	matrix      [][]float64
	index       map[string]int
	lowerTitles []string
	duplicates  int
}

// New validates movies and matrix and builds the title index. The slices are
// retained; callers must not modify them afterwards.
func New(movies []Movie, matrix [][]float64) (*Catalog, error) {
	n := len(movies)
	if n == 0 {
		return nil, errors.New("catalog is empty")
	}
	if len(matrix) != n {
		return nil, fmt.Errorf("similarity matrix has %d rows, catalog has %d movies", len(matrix), n)
	}
	for i, row := range matrix {
		if len(row) != n {
			return nil, fmt.Errorf("similarity row %d has %d columns, want %d", i, len(row), n)
		}
	}

	c := &Catalog{
		movies:      movies,
		matrix:      matrix,
		index:       make(map[string]int, n),
		lowerTitles: make([]string, n),
	}
	for i, m := range movies {
		if m.Title == "" {
			return nil, fmt.Errorf("movie at row %d (id %d) has an empty title", i, m.ID)
		}
		if _, seen := c.index[m.Title]; seen {
			c.duplicates++
		} else {
			c.index[m.Title] = i
		}
		c.lowerTitles[i] = strings.ToLower(m.Title)
	}
	return c, nil
}

// Len returns the number of movies.
func (c *Catalog) Len() int {
	return len(c.movies)
}

// Duplicates returns how many rows share a title with an earlier row.
func (c *Catalog) Duplicates() int {
	return c.duplicates
}

// IndexOf returns the row of the first movie whose title equals title
// exactly. Unknown titles yield an error matching ErrNotFound.
func (c *Catalog) IndexOf(title string) (int, error) {
	if i, ok := c.index[title]; ok {
		return i, nil
	}
	return -1, fmt.Errorf("%w: %q", ErrNotFound, title)
}

// RecordAt returns the movie at row i. It panics when i is out of range;
// indexes come from IndexOf or from ranking a row of this catalog.
func (c *Catalog) RecordAt(i int) Movie {
	return c.movies[i]
}

// Row returns similarity row i, self entry included. The slice is shared
// and must be treated as read-only.
func (c *Catalog) Row(i int) []float64 {
	return c.matrix[i]
}

// Titles returns every title in catalog order, duplicates included.
func (c *Catalog) Titles() []string {
	titles := make([]string, len(c.movies))
	for i, m := range c.movies {
		titles[i] = m.Title
	}
	return titles
}

// Search returns movies whose title contains query, ignoring case, in
// catalog order. limit <= 0 means no limit. An empty query matches all.
func (c *Catalog) Search(query string, limit int) []Movie {
	q := strings.ToLower(strings.TrimSpace(query))

	var out []Movie
	for i, lt := range c.lowerTitles {
		if q != "" && !strings.Contains(lt, q) {
			continue
		}
		out = append(out, c.movies[i])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

// Movies returns a copy of the metadata table.
func (c *Catalog) Movies() []Movie {
	out := make([]Movie, len(c.movies))
	copy(out, c.movies)
	return out
}
