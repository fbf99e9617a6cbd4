// Cinematch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package catalog

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func intPtr(v int) *int {
	return &v
}

func floatPtr(v float64) *float64 {
	return &v
}

func identity(n int) [][]float64 {
	m := make([][]float64, n)
	for i := range m {
		m[i] = make([]float64, n)
		m[i][i] = 1
	}
	return m
}

func sampleMovies() []Movie {
	return []Movie{
		{ID: 19995, Title: "Avatar", Year: intPtr(2009), VoteAverage: floatPtr(7.2)},
		{ID: 285, Title: "Pirates of the Caribbean: At World's End", Year: intPtr(2007), VoteAverage: floatPtr(6.9)},
		{ID: 206647, Title: "Spectre", Year: intPtr(2015)},
		{ID: 49026, Title: "The Dark Knight Rises"},
	}
}

func TestNew_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		movies  []Movie
		matrix  [][]float64
		wantErr string
	}{
		{
			name:    "empty catalog",
			movies:  nil,
			matrix:  nil,
			wantErr: "catalog is empty",
		},
		{
			name:    "too few matrix rows",
			movies:  sampleMovies(),
			matrix:  identity(3),
			wantErr: "has 3 rows",
		},
		{
			name:    "short row",
			movies:  sampleMovies()[:2],
			matrix:  [][]float64{{1, 0}, {0}},
			wantErr: "similarity row 1 has 1 columns",
		},
		{
			name:    "empty title",
			movies:  []Movie{{ID: 1, Title: "A"}, {ID: 2}},
			matrix:  identity(2),
			wantErr: "empty title",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := New(tt.movies, tt.matrix)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want substring %q", err, tt.wantErr)
			}
		})
	}
}

func TestCatalog_IndexOf(t *testing.T) {
	t.Parallel()

	cat, err := New(sampleMovies(), identity(4))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	tests := []struct {
		title   string
		want    int
		wantErr bool
	}{
		{"Avatar", 0, false},
		{"Spectre", 2, false},
		{"The Dark Knight Rises", 3, false},
		{"avatar", -1, true},
		{"Avatar ", -1, true},
		{"", -1, true},
	}

	for _, tt := range tests {
		got, err := cat.IndexOf(tt.title)
		if tt.wantErr {
			if !errors.Is(err, ErrNotFound) {
				t.Errorf("IndexOf(%q) error = %v, want ErrNotFound", tt.title, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("IndexOf(%q) unexpected error: %v", tt.title, err)
			continue
		}
		if got != tt.want {
			t.Errorf("IndexOf(%q) = %d, want %d", tt.title, got, tt.want)
		}
	}
}

func TestCatalog_DuplicateTitlesResolveToFirst(t *testing.T) {
	t.Parallel()

	movies := []Movie{
		{ID: 1, Title: "The Host"},
		{ID: 2, Title: "Oldboy"},
		{ID: 3, Title: "The Host"},
		{ID: 4, Title: "The Host"},
	}
	cat, err := New(movies, identity(4))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if got := cat.Duplicates(); got != 2 {
		t.Errorf("Duplicates() = %d, want 2", got)
	}
	i, err := cat.IndexOf("The Host")
	if err != nil {
		t.Fatalf("IndexOf: %v", err)
	}
	if i != 0 {
		t.Errorf("IndexOf(The Host) = %d, want 0", i)
	}
	if got := len(cat.Titles()); got != 4 {
		t.Errorf("len(Titles()) = %d, want 4", got)
	}
}

func TestCatalog_Accessors(t *testing.T) {
	t.Parallel()

	matrix := [][]float64{
		{1, 0.5, 0.1, 0.2},
		{0.5, 1, 0.3, 0.4},
		{0.1, 0.3, 1, 0.6},
		{0.2, 0.4, 0.6, 1},
	}
	cat, err := New(sampleMovies(), matrix)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if cat.Len() != 4 {
		t.Errorf("Len() = %d, want 4", cat.Len())
	}
	if got := cat.RecordAt(2).ID; got != 206647 {
		t.Errorf("RecordAt(2).ID = %d, want 206647", got)
	}
	if got := cat.Row(2)[3]; got != 0.6 {
		t.Errorf("Row(2)[3] = %v, want 0.6", got)
	}

	titles := cat.Titles()
	titles[0] = "mutated"
	if cat.RecordAt(0).Title != "Avatar" {
		t.Error("Titles() must return a copy")
	}

	movies := cat.Movies()
	movies[1].Title = "mutated"
	if cat.RecordAt(1).Title == "mutated" {
		t.Error("Movies() must return a copy")
	}
}

func TestCatalog_Search(t *testing.T) {
	t.Parallel()

	cat, err := New(sampleMovies(), identity(4))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	tests := []struct {
		name  string
		query string
		limit int
		want  []string
	}{
		{"case insensitive", "the", 0, []string{"Pirates of the Caribbean: At World's End", "The Dark Knight Rises"}},
		{"limit", "the", 1, []string{"Pirates of the Caribbean: At World's End"}},
		{"empty query matches all", "", 0, []string{"Avatar", "Pirates of the Caribbean: At World's End", "Spectre", "The Dark Knight Rises"}},
		{"trimmed", "  SPECTRE ", 0, []string{"Spectre"}},
		{"no match", "zzz", 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := cat.Search(tt.query, tt.limit)
			if len(got) != len(tt.want) {
				t.Fatalf("Search(%q, %d) returned %d movies, want %d", tt.query, tt.limit, len(got), len(tt.want))
			}
			for i := range got {
				if got[i].Title != tt.want[i] {
					t.Errorf("result[%d] = %q, want %q", i, got[i].Title, tt.want[i])
				}
			}
		})
	}
}

func TestMovie_Rating(t *testing.T) {
	t.Parallel()

	nan := math.NaN()

	tests := []struct {
		name   string
		movie  Movie
		want   float64
		wantOK bool
	}{
		{"present", Movie{VoteAverage: floatPtr(7.5)}, 7.5, true},
		{"zero is a rating", Movie{VoteAverage: floatPtr(0)}, 0, true},
		{"absent", Movie{}, 0, false},
		{"nan", Movie{VoteAverage: &nan}, 0, false},
	}

	for _, tt := range tests {
		got, ok := tt.movie.Rating()
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("%s: Rating() = (%v, %v), want (%v, %v)", tt.name, got, ok, tt.want, tt.wantOK)
		}
	}

	if (Movie{}).HasYear() {
		t.Error("HasYear() = true for movie without year")
	}
	if !(Movie{Year: intPtr(1999)}).HasYear() {
		t.Error("HasYear() = false for movie with year")
	}
}
