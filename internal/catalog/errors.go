// Cinematch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package catalog

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a title has no row in the catalog.
	ErrNotFound = errors.New("movie not found in catalog")

	// ErrLoad matches every *LoadError.
	ErrLoad = errors.New("catalog load failed")
)

// LoadError reports a missing or malformed catalog bundle.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load catalog %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrLoad) true for any *LoadError.
func (e *LoadError) Is(target error) bool {
	return target == ErrLoad
}

func loadErrorf(source, format string, args ...any) *LoadError {
	return &LoadError{Source: source, Err: fmt.Errorf(format, args...)}
}
