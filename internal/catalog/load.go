// Cinematch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Format selects the bundle decoder.
type Format string

const (
	FormatAuto    Format = "auto"
	FormatJSON    Format = "json"
	FormatParquet Format = "parquet"
)

// Load reads a catalog bundle from path. With FormatAuto a directory is read
// as a Parquet bundle and a .json file as a JSON bundle.
func Load(path string, format Format, logger zerolog.Logger) (*Catalog, error) {
	start := time.Now()

	info, err := os.Stat(path)
	if err != nil {
		return nil, &LoadError{Source: path, Err: err}
	}

	if format == "" || format == FormatAuto {
		format, err = detectFormat(path, info)
		if err != nil {
			return nil, err
		}
	}

	var cat *Catalog
	switch format {
	case FormatJSON:
		if info.IsDir() {
			return nil, loadErrorf(path, "json bundle must be a file, got a directory")
		}
		cat, err = loadJSON(path)
	case FormatParquet:
		if !info.IsDir() {
			return nil, loadErrorf(path, "parquet bundle must be a directory")
		}
		cat, err = loadParquet(path)
	default:
		return nil, loadErrorf(path, "unknown catalog format %q", format)
	}
	if err != nil {
		return nil, err
	}

	if cat.Duplicates() > 0 {
		logger.Warn().
			Int("duplicates", cat.Duplicates()).
			Msg("Catalog has duplicate titles; lookups resolve to the first occurrence")
	}
	logger.Info().
		Str("path", path).
		Str("format", string(format)).
		Int("movies", cat.Len()).
		Dur("duration", time.Since(start)).
		Msg("Catalog loaded")

	return cat, nil
}

func detectFormat(path string, info os.FileInfo) (Format, error) {
	if info.IsDir() {
		return FormatParquet, nil
	}
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON, nil
	}
	return "", loadErrorf(path, "cannot detect catalog format; use a .json file or a parquet directory")
}
