// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient(0)
	client2 := NewHTTPClient(0)

	require.NotNil(t, client1.Client)
	assert.NotSame(t, client1.Client, client2.Client)
}

func TestNewHTTPClient_Timeout(t *testing.T) {
	client := NewHTTPClient(3 * time.Second)
	assert.Equal(t, 3*time.Second, client.GetClient().Timeout)

	noTimeout := NewHTTPClient(0)
	assert.Zero(t, noTimeout.GetClient().Timeout)
}

// TestNewLoopbackHTTPClient_AcceptsSelfSigned verifies the loopback client can
// talk to a TLS server with an untrusted certificate while the public client
// refuses to.
func TestNewLoopbackHTTPClient_AcceptsSelfSigned(t *testing.T) {
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	resp, err := NewLoopbackHTTPClient(0).R().Get(srv.URL)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode())

	_, err = NewHTTPClient(0).R().Get(srv.URL)
	require.Error(t, err)
}
