// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-riot-switcher/internal/config"
	"github.com/MKhiriev/go-riot-switcher/internal/logger"
	"github.com/MKhiriev/go-riot-switcher/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testFetchPath = "/playerPref/v3/getPreference/Ares.PlayerSettings"
	testStorePath = "/playerPref/v3/savePreference"
)

type fakePreferenceService struct {
	srv *httptest.Server

	stored     []byte
	storedAuth string
	fetchAuth  string

	fetchStatus int
	fetchBody   string
	storeStatus int
}

func newFakePreferenceService(t *testing.T) *fakePreferenceService {
	t.Helper()
	f := &fakePreferenceService{
		fetchStatus: http.StatusOK,
		fetchBody:   `{"type":"Ares.PlayerSettings","data":"eJzT","modified":1700000000}`,
		storeStatus: http.StatusOK,
	}

	r := chi.NewRouter()
	r.Get(testFetchPath, func(w http.ResponseWriter, r *http.Request) {
		f.fetchAuth = r.Header.Get(HeaderAuthorization)
		w.WriteHeader(f.fetchStatus)
		_, _ = w.Write([]byte(f.fetchBody))
	})
	r.Put(testStorePath, func(w http.ResponseWriter, r *http.Request) {
		f.storedAuth = r.Header.Get(HeaderAuthorization)
		f.stored, _ = io.ReadAll(r.Body)
		w.WriteHeader(f.storeStatus)
	})
	f.srv = httptest.NewServer(r)
	t.Cleanup(f.srv.Close)
	return f
}

func (f *fakePreferenceService) client() PreferenceClient {
	return NewPreferenceClient(config.ClientAdapter{
		PreferenceFetchURL: f.srv.URL + testFetchPath,
		PreferenceStoreURL: f.srv.URL + testStorePath,
	}, logger.Nop())
}

func testSession() models.AuthSession {
	return models.AuthSession{Headers: []models.Header{
		{Name: HeaderAuthorization, Value: "Bearer access"},
		{Name: HeaderEntitlementsJWT, Value: "jwt"},
		{Name: HeaderContentType, Value: "application/json"},
	}}
}

func TestPreferenceClient_Fetch(t *testing.T) {
	f := newFakePreferenceService(t)

	blob, err := f.client().Fetch(context.Background(), testSession())
	require.NoError(t, err)

	assert.Equal(t, f.fetchBody, string(blob))
	assert.Equal(t, "Bearer access", f.fetchAuth)
}

func TestPreferenceClient_FetchRejected(t *testing.T) {
	f := newFakePreferenceService(t)
	f.fetchStatus = http.StatusUnauthorized
	f.fetchBody = `{"errorCode":"BAD_CLAIMS"}`

	_, err := f.client().Fetch(context.Background(), testSession())

	var apiErr *APIErrorResponse
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Contains(t, apiErr.Error(), "BAD_CLAIMS")
}

func TestPreferenceClient_FetchNotJSON(t *testing.T) {
	f := newFakePreferenceService(t)
	f.fetchBody = "<html>"

	_, err := f.client().Fetch(context.Background(), testSession())
	assert.ErrorIs(t, err, ErrEncoding)
}

func TestPreferenceClient_StoreVerbatim(t *testing.T) {
	f := newFakePreferenceService(t)
	blob := models.PreferenceBlob(`{"type":"Ares.PlayerSettings", "data":"xyz"}`)

	status, err := f.client().Store(context.Background(), testSession(), blob)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, string(blob), string(f.stored), "blob must be sent byte for byte")
	assert.Equal(t, "Bearer access", f.storedAuth)
}

func TestPreferenceClient_StoreReturnsSuccessStatus(t *testing.T) {
	f := newFakePreferenceService(t)
	f.storeStatus = http.StatusNoContent

	status, err := f.client().Store(context.Background(), testSession(), models.PreferenceBlob(`{}`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, status)
}

func TestPreferenceClient_StoreRejected(t *testing.T) {
	f := newFakePreferenceService(t)
	f.storeStatus = http.StatusBadRequest

	status, err := f.client().Store(context.Background(), testSession(), models.PreferenceBlob(`{}`))

	var apiErr *APIErrorResponse
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "Bad Request", apiErr.Body)
	assert.Zero(t, status)
}

func TestPreferenceClient_StoreInvalidBlob(t *testing.T) {
	f := newFakePreferenceService(t)

	_, err := f.client().Store(context.Background(), testSession(), models.PreferenceBlob(`{not json`))
	assert.ErrorIs(t, err, ErrEncoding)
	assert.Nil(t, f.stored, "invalid blob must not reach the service")
}

func TestPreferenceClient_NetworkFailure(t *testing.T) {
	f := newFakePreferenceService(t)
	c := f.client()
	f.srv.Close()

	_, err := c.Fetch(context.Background(), testSession())
	assert.ErrorIs(t, err, ErrNetworkFailure)
}
