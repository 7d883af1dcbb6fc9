// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-riot-switcher/internal/config"
	"github.com/MKhiriev/go-riot-switcher/internal/logger"
	"github.com/MKhiriev/go-riot-switcher/internal/utils"
	"github.com/MKhiriev/go-riot-switcher/models"
)

type httpPreferenceClient struct {
	client   *utils.HTTPClient
	fetchURL string
	storeURL string
	logger   *logger.Logger
}

// NewPreferenceClient constructs the HTTP [PreferenceClient] for the remote
// player preference service.
func NewPreferenceClient(cfg config.ClientAdapter, log *logger.Logger) PreferenceClient {
	return &httpPreferenceClient{
		client:   utils.NewHTTPClient(cfg.RequestTimeout),
		fetchURL: cfg.PreferenceFetchURL,
		storeURL: cfg.PreferenceStoreURL,
		logger:   log,
	}
}

func (p *httpPreferenceClient) Fetch(ctx context.Context, session models.AuthSession) (models.PreferenceBlob, error) {
	resp, err := p.client.R().
		SetContext(ctx).
		SetHeaders(session.HeaderMap()).
		Get(p.fetchURL)
	if err != nil {
		p.logger.Err(err).Str("func", "httpPreferenceClient.Fetch").Msg("fetch preferences request failed")
		return nil, fmt.Errorf("%w: fetch preferences: %w", ErrNetworkFailure, err)
	}
	if err = mapHTTPError(resp); err != nil {
		p.logger.Warn().Str("func", "httpPreferenceClient.Fetch").Int("status", resp.StatusCode()).Msg("fetch preferences rejected")
		return nil, err
	}

	blob := models.PreferenceBlob(append([]byte(nil), resp.Body()...))
	if !blob.Valid() {
		return nil, fmt.Errorf("%w: preference response is not json", ErrEncoding)
	}

	return blob, nil
}

func (p *httpPreferenceClient) Store(ctx context.Context, session models.AuthSession, blob models.PreferenceBlob) (int, error) {
	if !blob.Valid() {
		return 0, fmt.Errorf("%w: preference blob is not json", ErrEncoding)
	}

	resp, err := p.client.R().
		SetContext(ctx).
		SetHeaders(session.HeaderMap()).
		SetBody([]byte(blob)).
		Put(p.storeURL)
	if err != nil {
		p.logger.Err(err).Str("func", "httpPreferenceClient.Store").Msg("store preferences request failed")
		return 0, fmt.Errorf("%w: store preferences: %w", ErrNetworkFailure, err)
	}
	if err = mapHTTPError(resp); err != nil {
		p.logger.Warn().Str("func", "httpPreferenceClient.Store").Int("status", resp.StatusCode()).Msg("store preferences rejected")
		return 0, err
	}

	return resp.StatusCode(), nil
}
