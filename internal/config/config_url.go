// Cinematch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package config

import (
	"fmt"
	"net/url"
)

// validateHTTPURL checks a service base URL: http(s) scheme, a host, and no
// query string. A path is allowed (TMDB uses /3 and /t/p/w500).
func validateHTTPURL(rawURL, fieldName string) error {
	parsedURL, err := validateAbsoluteURLParsed(rawURL, fieldName)
	if err != nil {
		return err
	}
	if parsedURL.RawQuery != "" {
		return fmt.Errorf("%s should not contain query parameters, remove: ?%s", fieldName, parsedURL.RawQuery)
	}
	return nil
}

// validateAbsoluteURL checks for an absolute http(s) URL. Query strings are
// allowed.
func validateAbsoluteURL(rawURL, fieldName string) error {
	_, err := validateAbsoluteURLParsed(rawURL, fieldName)
	return err
}

func validateAbsoluteURLParsed(rawURL, fieldName string) (*url.URL, error) {
	if rawURL == "" {
		return nil, fmt.Errorf("%s is required", fieldName)
	}
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("%s failed to parse URL: %w", fieldName, err)
	}
	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return nil, fmt.Errorf("%s scheme must be http or https, got: %s", fieldName, parsedURL.Scheme)
	}
	if parsedURL.Host == "" {
		return nil, fmt.Errorf("%s host is required", fieldName)
	}
	return parsedURL, nil
}
