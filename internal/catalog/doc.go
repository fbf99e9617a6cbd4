// Cinematch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Package catalog holds the movie metadata table and its precomputed N x N
similarity matrix.

A Catalog is built once at startup by Load and is read-only afterwards, so
it can be shared by any number of request goroutines without locking. Row i
of the movie table always corresponds to row and column i of the matrix.

# Bundle Formats

JSON bundle (a single .json file). Each metadata column is an array, and
null marks an absent value:

	{
	  "movies": {
	    "movie_id":     [19995, 285, 206647],
	    "title":        ["Avatar", "Pirates of the Caribbean: At World's End", "Spectre"],
	    "year":         [2009, 2007, null],
	    "vote_average": [7.2, 6.9, null]
	  },
	  "similarity": [[1.0, 0.2, 0.1], [0.2, 1.0, 0.3], [0.1, 0.3, 1.0]]
	}

Parquet bundle (a directory):
  - movies.parquet: movie_id int64, title string, year optional int32,
    vote_average optional double
  - similarity.parquet: row int32, scores repeated double, one row per
    matrix row

WriteParquet produces the Parquet bundle from a loaded Catalog;
cmd/catalogconv uses it to convert JSON bundles.

# Errors

Every load failure is a *LoadError and matches ErrLoad with errors.Is.
IndexOf reports unknown titles with an error matching ErrNotFound.

# Title Lookup

IndexOf is an exact, case-sensitive, whole-string match. When several rows
share a title the first row wins; Duplicates reports how many rows are
shadowed that way.
*/
package catalog
