// Cinematch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package catalog

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/parquet-go/parquet-go"
)

// File names inside a Parquet bundle directory.
const (
	MoviesFile     = "movies.parquet"
	SimilarityFile = "similarity.parquet"
)

type movieRow struct {
	MovieID     int64    `parquet:"movie_id"`
	Title       string   `parquet:"title"`
	Year        *int32   `parquet:"year,optional"`
	VoteAverage *float64 `parquet:"vote_average,optional"`
}

type similarityRow struct {
	Row    int32     `parquet:"row"`
	Scores []float64 `parquet:"scores"`
}

func loadParquet(dir string) (*Catalog, error) {
	mrows, err := readParquetFile[movieRow](filepath.Join(dir, MoviesFile))
	if err != nil {
		return nil, &LoadError{Source: dir, Err: err}
	}
	srows, err := readParquetFile[similarityRow](filepath.Join(dir, SimilarityFile))
	if err != nil {
		return nil, &LoadError{Source: dir, Err: err}
	}

	movies := make([]Movie, len(mrows))
	for i, r := range mrows {
		m := Movie{ID: int(r.MovieID), Title: r.Title}
		if r.Year != nil {
			y := int(*r.Year)
			m.Year = &y
		}
		if r.VoteAverage != nil && !math.IsNaN(*r.VoteAverage) {
			v := *r.VoteAverage
			m.VoteAverage = &v
		}
		movies[i] = m
	}

	matrix := make([][]float64, len(srows))
	for i, r := range srows {
		if int(r.Row) != i {
			return nil, loadErrorf(dir, "%s: row %d carries sequence number %d", SimilarityFile, i, r.Row)
		}
		matrix[i] = r.Scores
	}

	cat, err := New(movies, matrix)
	if err != nil {
		return nil, &LoadError{Source: dir, Err: err}
	}
	return cat, nil
}

func readParquetFile[T any](path string) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, err
	}

	pf, err := parquet.OpenFile(f, stat.Size())
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", filepath.Base(path), err)
	}

	pr := parquet.NewGenericReader[T](pf)
	defer pr.Close()

	rows := make([]T, pr.NumRows())
	read := 0
	for read < len(rows) {
		n, err := pr.Read(rows[read:])
		read += n
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", filepath.Base(path), err)
		}
		if n == 0 {
			break
		}
	}
	return rows[:read], nil
}

// WriteParquet writes c as a Parquet bundle into dir, creating it if needed.
func WriteParquet(dir string, c *Catalog) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	mrows := make([]movieRow, c.Len())
	for i, m := range c.movies {
		r := movieRow{MovieID: int64(m.ID), Title: m.Title}
		if m.Year != nil {
			y := int32(*m.Year)
			r.Year = &y
		}
		if v, ok := m.Rating(); ok {
			r.VoteAverage = &v
		}
		mrows[i] = r
	}
	if err := writeParquetFile(filepath.Join(dir, MoviesFile), mrows); err != nil {
		return err
	}

	srows := make([]similarityRow, c.Len())
	for i, row := range c.matrix {
		srows[i] = similarityRow{Row: int32(i), Scores: row}
	}
	return writeParquetFile(filepath.Join(dir, SimilarityFile), srows)
}

func writeParquetFile[T any](path string, rows []T) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	pw := parquet.NewGenericWriter[T](f, parquet.Compression(&parquet.Zstd))
	if _, err := pw.Write(rows); err != nil {
		_ = pw.Close()
		_ = f.Close()
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	if err := pw.Close(); err != nil {
		_ = f.Close()
		return fmt.Errorf("close %s: %w", filepath.Base(path), err)
	}
	return f.Close()
}
