// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Header is a single HTTP header name/value pair.
type Header struct {
	Name  string
	Value string
}

// AuthSession is the canonical, ordered header set used for authenticated
// calls to remote Riot services. It is assembled once per operation and
// discarded afterwards; nothing caches it.
type AuthSession struct {
	// Headers keeps insertion order: Authorization, entitlement JWT, client
	// version, client platform, content type.
	Headers []Header

	// Subject is the "sub" claim of the access token when it is a JWT.
	// Used for log context only, empty otherwise.
	Subject string
}

// Get returns the value of the first header named name.
func (s AuthSession) Get(name string) (string, bool) {
	for _, h := range s.Headers {
		if h.Name == name {
			return h.Value, true
		}
	}
	return "", false
}

// HeaderMap flattens the session into a map suitable for resty's SetHeaders.
func (s AuthSession) HeaderMap() map[string]string {
	out := make(map[string]string, len(s.Headers))
	for _, h := range s.Headers {
		out[h.Name] = h.Value
	}
	return out
}
