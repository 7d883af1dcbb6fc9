// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-riot-switcher/internal/logger"
	"github.com/MKhiriev/go-riot-switcher/internal/store"
	"github.com/MKhiriev/go-riot-switcher/models"
)

type clientAccountService struct {
	snapshots store.AccountSnapshotStore
	marker    store.ActiveAccountMarker
	logger    *logger.Logger
}

// NewClientAccountService builds the [ClientAccountService] over the snapshot
// store and the active account marker of storages.
func NewClientAccountService(storages *store.ClientStorages, log *logger.Logger) ClientAccountService {
	return &clientAccountService{
		snapshots: storages.Snapshots,
		marker:    storages.Marker,
		logger:    log,
	}
}

func (s *clientAccountService) List(ctx context.Context) ([]string, error) {
	names, err := s.snapshots.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	return names, nil
}

func (s *clientAccountService) SaveCurrent(ctx context.Context, name string) (models.AccountSnapshot, error) {
	if strings.TrimSpace(name) == "" {
		return models.AccountSnapshot{}, ErrEmptyAccountName
	}
	if !s.snapshots.LiveRootExists() {
		return models.AccountSnapshot{}, ErrClientNotInstalled
	}

	snapshot, err := s.snapshots.Save(ctx, name)
	if err != nil {
		return models.AccountSnapshot{}, fmt.Errorf("save account %q: %w", name, err)
	}

	if err = s.marker.Set(ctx, name); err != nil {
		return models.AccountSnapshot{}, fmt.Errorf("mark account %q active: %w", name, err)
	}

	return snapshot, nil
}

func (s *clientAccountService) Switch(ctx context.Context, target string) (models.SwitchResult, error) {
	if strings.TrimSpace(target) == "" {
		return models.SwitchResult{}, ErrEmptyAccountName
	}

	ok, err := s.snapshots.Exists(ctx, target)
	if err != nil {
		return models.SwitchResult{}, fmt.Errorf("check account %q: %w", target, err)
	}
	if !ok {
		return models.SwitchResult{}, store.ErrAccountNotFound
	}

	result := models.SwitchResult{
		Target:   target,
		Outgoing: saveOutgoing(ctx, s.snapshots, s.marker, target, s.logger),
	}

	if err = s.snapshots.Restore(ctx, target); err != nil {
		s.logger.Err(err).
			Str("func", "clientAccountService.Switch").
			Str("target", target).
			Msg("failed to restore account")
		return result, fmt.Errorf("restore account %q: %w", target, err)
	}

	if err = s.marker.Set(ctx, target); err != nil {
		return result, fmt.Errorf("mark account %q active: %w", target, err)
	}

	s.logger.Info().
		Str("func", "clientAccountService.Switch").
		Str("target", target).
		Str("outgoing", result.Outgoing.Account).
		Stringer("outgoing_status", result.Outgoing.Status).
		Msg("account switched")

	return result, nil
}

func (s *clientAccountService) Delete(ctx context.Context, name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyAccountName
	}

	if err := s.snapshots.Delete(ctx, name); err != nil {
		return fmt.Errorf("delete account %q: %w", name, err)
	}

	active, err := s.marker.Get(ctx)
	if err != nil {
		return fmt.Errorf("read active account: %w", err)
	}
	if active == name {
		if err = s.marker.Clear(ctx); err != nil {
			return fmt.Errorf("clear active account: %w", err)
		}
	}

	return nil
}

func (s *clientAccountService) Active(ctx context.Context) (string, error) {
	return s.marker.Get(ctx)
}

// saveOutgoing snapshots the marked account unless it is empty or equals
// target. Failures are logged and reported in the outcome, never returned.
func saveOutgoing(ctx context.Context, snapshots store.AccountSnapshotStore, marker store.ActiveAccountMarker, target string, log *logger.Logger) models.SaveOutcome {
	current, err := marker.Get(ctx)
	if err != nil {
		log.Warn().Err(err).Str("func", "saveOutgoing").Msg("failed to read active account marker")
		return models.SaveOutcome{Status: models.SaveFailed, Err: err}
	}
	if current == "" || current == target {
		return models.SaveOutcome{Account: current, Status: models.SaveSkipped}
	}

	if _, err = snapshots.Save(ctx, current); err != nil {
		log.Warn().Err(err).
			Str("func", "saveOutgoing").
			Str("account", current).
			Msg("failed to save outgoing account state")
		return models.SaveOutcome{Account: current, Status: models.SaveFailed, Err: err}
	}

	return models.SaveOutcome{Account: current, Status: models.Saved}
}
