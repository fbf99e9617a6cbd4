// Cinematch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

// Command catalogconv converts a JSON catalog bundle into the Parquet
// directory layout the server can load faster.
//
//	catalogconv -in models/catalog.json -out models/catalog.parquet
package main

import (
	"flag"
	"os"

	"github.com/tomtom215/cinematch/internal/catalog"
	"github.com/tomtom215/cinematch/internal/logging"
)

var (
	in       = flag.String("in", "models/catalog.json", "JSON catalog bundle to read")
	out      = flag.String("out", "models/catalog.parquet", "Directory to write the Parquet bundle into")
	logLevel = flag.String("log-level", "info", "Log level")
)

func main() {
	flag.Parse()

	logging.Init(logging.Config{Level: *logLevel, Format: "console"})
	logger := logging.WithComponent("catalogconv")

	cat, err := catalog.Load(*in, catalog.FormatJSON, logger)
	if err != nil {
		logger.Error().Err(err).Str("in", *in).Msg("Failed to read catalog")
		os.Exit(1)
	}

	if err := catalog.WriteParquet(*out, cat); err != nil {
		logger.Error().Err(err).Str("out", *out).Msg("Failed to write Parquet bundle")
		os.Exit(1)
	}

	// Round-trip so a broken bundle is caught here rather than at server start.
	check, err := catalog.Load(*out, catalog.FormatParquet, logger)
	if err != nil {
		logger.Error().Err(err).Str("out", *out).Msg("Written bundle failed to load")
		os.Exit(1)
	}
	if check.Len() != cat.Len() {
		logger.Error().Int("want", cat.Len()).Int("got", check.Len()).Msg("Written bundle has wrong movie count")
		os.Exit(1)
	}

	logger.Info().
		Int("movies", cat.Len()).
		Int("duplicates", cat.Duplicates()).
		Str("out", *out).
		Msg("Catalog converted")
}
