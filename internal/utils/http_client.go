// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient("https://conversations.twilio.com/v1", 15*time.Second)
//	resp, err := client.R().Get("/Conversations")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient bound to baseURL.
//
// Every request made through the client is bounded by timeout (zero keeps
// resty's default of no timeout) and asks for a JSON response.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json")
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}

// WithBasicAuth sets the credentials sent with every request and returns
// the receiver for chaining.
func (c *HTTPClient) WithBasicAuth(username, password string) *HTTPClient {
	c.SetBasicAuth(username, password)
	return c
}
