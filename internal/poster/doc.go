// Cinematch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Package poster resolves movie poster URLs from TMDB.

The pipeline is layered:

	Service        Fetcher; store lookup, singleflight, placeholder fallback
	  Store        memory (LRU with TTL) or redis
	  BreakerClient  gobreaker wrapper around any Source
	    TMDBClient   GET {api}/movie/{id}, outbound rate limit

Service.FetchPoster never fails. Any upstream, decode, breaker or timeout
error is logged and answered with the placeholder URL. The placeholder is
never written to the store, so a later request can still resolve the real
poster once TMDB recovers.

Without an API key the service has no Source and every lookup returns the
placeholder.
*/
package poster
