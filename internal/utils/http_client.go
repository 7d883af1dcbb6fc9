// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/tls"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient(0)
//	resp, err := client.R().Get("https://valorant-api.com/v1/version")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an HTTPClient for public HTTPS endpoints. A zero
// timeout leaves the transport defaults in place.
func NewHTTPClient(timeout time.Duration) *HTTPClient {
	client := resty.New()
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	return &HTTPClient{Client: client}
}

// NewLoopbackHTTPClient creates an HTTPClient for the Riot Client's local
// API. The local service presents a self-signed certificate, so certificate
// verification is disabled for this client only; it must never be used for
// non-loopback hosts.
func NewLoopbackHTTPClient(timeout time.Duration) *HTTPClient {
	c := NewHTTPClient(timeout)
	c.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true}) //nolint:gosec // loopback self-signed cert
	return c
}
