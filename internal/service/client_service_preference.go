// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-riot-switcher/internal/adapter"
	"github.com/MKhiriev/go-riot-switcher/internal/logger"
	"github.com/MKhiriev/go-riot-switcher/internal/store"
	"github.com/MKhiriev/go-riot-switcher/models"
)

type clientPreferenceService struct {
	lockfile      adapter.LockFileReader
	authenticator adapter.SessionAuthenticator
	preferences   adapter.PreferenceClient
	profiles      store.PreferenceProfileRepository

	now    func() time.Time
	logger *logger.Logger
}

func NewClientPreferenceService(adapters *adapter.ClientAdapters, storages *store.ClientStorages, log *logger.Logger) ClientPreferenceService {
	return &clientPreferenceService{
		lockfile:      adapters.LockFile,
		authenticator: adapters.Authenticator,
		preferences:   adapters.Preferences,
		profiles:      storages.Profiles,
		now:           time.Now,
		logger:        log,
	}
}

func (s *clientPreferenceService) Fetch(ctx context.Context) (models.PreferenceBlob, error) {
	session, err := s.authenticator.Authenticate(ctx)
	if err != nil {
		return nil, fmt.Errorf("authenticate: %w", err)
	}

	blob, err := s.preferences.Fetch(ctx, session)
	if err != nil {
		return nil, fmt.Errorf("fetch preferences: %w", err)
	}
	return blob, nil
}

func (s *clientPreferenceService) Push(ctx context.Context, blob models.PreferenceBlob) (int, error) {
	session, err := s.authenticator.Authenticate(ctx)
	if err != nil {
		return 0, fmt.Errorf("authenticate: %w", err)
	}

	status, err := s.preferences.Store(ctx, session, blob)
	if err != nil {
		return 0, fmt.Errorf("store preferences: %w", err)
	}

	s.logger.Info().
		Str("func", "clientPreferenceService.Push").
		Str("subject", session.Subject).
		Int("status", status).
		Msg("preferences pushed")
	return status, nil
}

func (s *clientPreferenceService) SaveProfile(ctx context.Context, name string) (models.PreferenceProfile, error) {
	if strings.TrimSpace(name) == "" {
		return models.PreferenceProfile{}, ErrEmptyProfileName
	}

	blob, err := s.Fetch(ctx)
	if err != nil {
		return models.PreferenceProfile{}, err
	}

	profile := models.PreferenceProfile{Name: name, Blob: blob, SavedAt: s.now().UTC()}
	if err = s.profiles.SaveProfile(ctx, profile); err != nil {
		return models.PreferenceProfile{}, fmt.Errorf("save profile %q: %w", name, err)
	}
	return profile, nil
}

func (s *clientPreferenceService) LoadProfile(ctx context.Context, name string) (int, error) {
	if strings.TrimSpace(name) == "" {
		return 0, ErrEmptyProfileName
	}

	profile, err := s.profiles.GetProfile(ctx, name)
	if err != nil {
		return 0, fmt.Errorf("get profile %q: %w", name, err)
	}

	return s.Push(ctx, profile.Blob)
}

func (s *clientPreferenceService) ListProfiles(ctx context.Context) ([]models.PreferenceProfile, error) {
	return s.profiles.ListProfiles(ctx)
}

func (s *clientPreferenceService) DeleteProfile(ctx context.Context, name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyProfileName
	}
	if err := s.profiles.DeleteProfile(ctx, name); err != nil {
		return fmt.Errorf("delete profile %q: %w", name, err)
	}
	return nil
}

func (s *clientPreferenceService) ExportProfile(ctx context.Context, name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", ErrEmptyProfileName
	}

	profile, err := s.profiles.GetProfile(ctx, name)
	if err != nil {
		return "", fmt.Errorf("get profile %q: %w", name, err)
	}

	var out bytes.Buffer
	if err = json.Indent(&out, profile.Blob, "", "  "); err != nil {
		return "", fmt.Errorf("%w: profile %q: %w", adapter.ErrEncoding, name, err)
	}
	return out.String(), nil
}

func (s *clientPreferenceService) IsClientRunning() bool {
	return s.lockfile.Exists()
}
