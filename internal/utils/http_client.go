// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient instance
// with a default-configured underlying resty.Client.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}

// NewBackendClient returns an HTTPClient preconfigured for the hosted
// backend: base URL, per-request timeout and the API key sent both as the
// "apikey" header and as the default bearer token.
//
// Returns an error if rawURL is empty or is not an absolute URL.
//
// Example usage:
//
//	client, err := utils.NewBackendClient("https://xyz.example.co", key, 10*time.Second)
//	resp, err := client.R().Get("/rest/v1/profiles")
func NewBackendClient(rawURL, apiKey string, timeout time.Duration) (*HTTPClient, error) {
	baseURL, err := NormalizeBaseURL(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid backend url: %w", err)
	}

	client := NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("apikey", apiKey).
		SetAuthToken(apiKey)

	return client, nil
}

// NormalizeBaseURL trims whitespace and trailing slashes from raw and
// prepends "http://" when no scheme is given.
func NormalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", errors.New("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}
