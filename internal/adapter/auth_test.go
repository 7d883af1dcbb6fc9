// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"

	"github.com/MKhiriev/go-riot-switcher/internal/config"
	"github.com/MKhiriev/go-riot-switcher/internal/logger"
	"github.com/MKhiriev/go-riot-switcher/models"
	"github.com/go-chi/chi/v5"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPlatform = "cGxhdGZvcm0="

type fakeRiot struct {
	local   *httptest.Server
	version *httptest.Server

	entitlementStatus int
	entitlementBody   string
	versionStatus     int
	versionBody       string

	gotAuthorization string
	versionCalls     int
}

// newFakeRiot starts a self-signed TLS server for the local entitlement
// endpoint and a plain server for the public version endpoint.
func newFakeRiot(t *testing.T) *fakeRiot {
	t.Helper()
	f := &fakeRiot{
		entitlementStatus: http.StatusOK,
		entitlementBody:   `{"accessToken":"access-123","token":"entitlement-jwt","subject":"x"}`,
		versionStatus:     http.StatusOK,
		versionBody:       `{"status":200,"data":{"riotClientVersion":"release-09.01-shipping-12-2470587"}}`,
	}

	local := chi.NewRouter()
	local.Get(config.DefaultEntitlementPath, func(w http.ResponseWriter, r *http.Request) {
		f.gotAuthorization = r.Header.Get("Authorization")
		w.WriteHeader(f.entitlementStatus)
		_, _ = w.Write([]byte(f.entitlementBody))
	})
	f.local = httptest.NewTLSServer(local)
	t.Cleanup(f.local.Close)

	version := chi.NewRouter()
	version.Get("/v1/version", func(w http.ResponseWriter, _ *http.Request) {
		f.versionCalls++
		w.WriteHeader(f.versionStatus)
		_, _ = w.Write([]byte(f.versionBody))
	})
	f.version = httptest.NewServer(version)
	t.Cleanup(f.version.Close)

	return f
}

func (f *fakeRiot) port(t *testing.T) int {
	t.Helper()
	u, err := url.Parse(f.local.URL)
	require.NoError(t, err)
	port, err := strconv.Atoi(u.Port())
	require.NoError(t, err)
	return port
}

func (f *fakeRiot) authenticator(t *testing.T, password string) SessionAuthenticator {
	t.Helper()
	fsys := afero.NewMemMapFs()
	content := "Riot Client:4242:" + strconv.Itoa(f.port(t)) + ":" + password + ":https"
	require.NoError(t, afero.WriteFile(fsys, testLockfilePath, []byte(content), 0o644))

	cfg := config.ClientAdapter{
		LocalHost:       config.DefaultLocalHost,
		BasicAuthUser:   config.DefaultBasicAuthUser,
		EntitlementPath: config.DefaultEntitlementPath,
		VersionURL:      f.version.URL + "/v1/version",
		ClientPlatform:  testPlatform,
	}
	return NewSessionAuthenticator(NewLockFileReader(fsys, testLockfilePath, logger.Nop()), cfg, logger.Nop())
}

func TestBasicAuthHeader(t *testing.T) {
	want := "Basic " + base64.StdEncoding.EncodeToString([]byte("riot:p"))
	assert.Equal(t, want, BasicAuthHeader("riot", "p"))
	assert.Equal(t, "Basic cmlvdDpw", BasicAuthHeader("riot", "p"))
}

func TestAuthenticate_Success(t *testing.T) {
	f := newFakeRiot(t)
	a := f.authenticator(t, "p")

	session, err := a.Authenticate(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Basic cmlvdDpw", f.gotAuthorization)
	assert.Equal(t, []models.Header{
		{Name: HeaderAuthorization, Value: "Bearer access-123"},
		{Name: HeaderEntitlementsJWT, Value: "entitlement-jwt"},
		{Name: HeaderClientVersion, Value: "release-09.01-shipping-12-2470587"},
		{Name: HeaderClientPlatform, Value: testPlatform},
		{Name: HeaderContentType, Value: "application/json"},
	}, session.Headers)
	assert.Empty(t, session.Subject, "opaque access token has no subject")
}

func TestAuthenticate_SnakeCasePayloads(t *testing.T) {
	f := newFakeRiot(t)
	f.entitlementBody = `{"access_token":"a","token":"t"}`
	f.versionBody = `{"data":{"riot_client_version":"v1"}}`

	session, err := f.authenticator(t, "p").Authenticate(context.Background())
	require.NoError(t, err)

	v, _ := session.Get(HeaderAuthorization)
	assert.Equal(t, "Bearer a", v)
	v, _ = session.Get(HeaderClientVersion)
	assert.Equal(t, "v1", v)
}

func TestAuthenticate_EntitlementRejected(t *testing.T) {
	f := newFakeRiot(t)
	f.entitlementStatus = http.StatusForbidden
	f.entitlementBody = "bad credentials"

	_, err := f.authenticator(t, "wrong").Authenticate(context.Background())

	var apiErr *APIErrorResponse
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusForbidden, apiErr.Status)
	assert.Equal(t, "bad credentials", apiErr.Body)
	assert.Zero(t, f.versionCalls, "version lookup must not run after a failed entitlement exchange")
}

func TestAuthenticate_EntitlementMalformed(t *testing.T) {
	f := newFakeRiot(t)
	f.entitlementBody = `{"accessToken":`

	_, err := f.authenticator(t, "p").Authenticate(context.Background())
	assert.ErrorIs(t, err, ErrEncoding)
}

func TestAuthenticate_EntitlementMissingToken(t *testing.T) {
	f := newFakeRiot(t)
	f.entitlementBody = `{"accessToken":"a"}`

	_, err := f.authenticator(t, "p").Authenticate(context.Background())
	assert.ErrorIs(t, err, ErrEncoding)
}

func TestAuthenticate_VersionFailureFailsWholeHandshake(t *testing.T) {
	f := newFakeRiot(t)
	f.versionStatus = http.StatusServiceUnavailable
	f.versionBody = ""

	_, err := f.authenticator(t, "p").Authenticate(context.Background())

	var apiErr *APIErrorResponse
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusServiceUnavailable, apiErr.Status)
	assert.Equal(t, "Service Unavailable", apiErr.Body)
}

func TestAuthenticate_InvalidHeaderValue(t *testing.T) {
	f := newFakeRiot(t)
	f.entitlementBody = `{"accessToken":"a","token":"bad\nvalue"}`

	_, err := f.authenticator(t, "p").Authenticate(context.Background())
	assert.ErrorIs(t, err, ErrHeaderConstruction)
}

func TestAuthenticate_NoLockfile(t *testing.T) {
	cfg := config.ClientAdapter{LocalHost: "127.0.0.1", BasicAuthUser: "riot", EntitlementPath: "/x", VersionURL: "http://127.0.0.1:1", ClientPlatform: testPlatform}
	a := NewSessionAuthenticator(NewLockFileReader(afero.NewMemMapFs(), testLockfilePath, logger.Nop()), cfg, logger.Nop())

	_, err := a.Authenticate(context.Background())
	assert.ErrorIs(t, err, ErrLockfileNotFound)
}

func TestAuthenticate_LocalServiceDown(t *testing.T) {
	f := newFakeRiot(t)
	a := f.authenticator(t, "p")
	f.local.Close()

	_, err := a.Authenticate(context.Background())
	assert.ErrorIs(t, err, ErrNetworkFailure)
}

func TestBuildSession_ExtractsSubjectFromJWT(t *testing.T) {
	// header {"alg":"none"} . payload {"sub":"puuid-1"} . empty signature
	token := "eyJhbGciOiJub25lIn0.eyJzdWIiOiJwdXVpZC0xIn0."

	session, err := buildSession(token, "jwt", "v", testPlatform)
	require.NoError(t, err)
	assert.Equal(t, "puuid-1", session.Subject)
}

func TestBuildSession_EmptyValue(t *testing.T) {
	_, err := buildSession("a", "t", "", testPlatform)
	assert.ErrorIs(t, err, ErrHeaderConstruction)
}
