// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-riot-switcher/internal/config"
	"github.com/MKhiriev/go-riot-switcher/internal/logger"
	"github.com/MKhiriev/go-riot-switcher/internal/process"
	"github.com/MKhiriev/go-riot-switcher/internal/store"
	"github.com/MKhiriev/go-riot-switcher/models"
)

// newAccountDelay is the pause between clearing the session paths and
// launching the client.
const newAccountDelay = time.Second

type clientControlService struct {
	process   process.Controller
	snapshots store.AccountSnapshotStore
	marker    store.ActiveAccountMarker

	executable      string
	processNames    []string
	restartDelay    time.Duration
	newAccountDelay time.Duration

	logger *logger.Logger
}

func NewClientControlService(cfg config.ClientInstall, controller process.Controller, storages *store.ClientStorages, log *logger.Logger) ClientControlService {
	return &clientControlService{
		process:         controller,
		snapshots:       storages.Snapshots,
		marker:          storages.Marker,
		executable:      cfg.ExecutablePath,
		processNames:    cfg.ProcessNames,
		restartDelay:    cfg.RestartDelay,
		newAccountDelay: newAccountDelay,
		logger:          log,
	}
}

func (s *clientControlService) Restart(ctx context.Context) error {
	if err := s.process.Terminate(ctx, s.processNames...); err != nil {
		return fmt.Errorf("terminate client: %w", err)
	}
	if err := wait(ctx, s.restartDelay); err != nil {
		return err
	}
	if err := s.process.Launch(ctx, s.executable); err != nil {
		return fmt.Errorf("launch client: %w", err)
	}
	return nil
}

func (s *clientControlService) LaunchForNewAccount(ctx context.Context) (models.SaveOutcome, error) {
	if err := s.process.Terminate(ctx, s.processNames...); err != nil {
		return models.SaveOutcome{}, fmt.Errorf("terminate client: %w", err)
	}

	// Empty target: any marked account is saved before its session goes.
	outgoing := saveOutgoing(ctx, s.snapshots, s.marker, "", s.logger)

	if err := s.snapshots.ClearLive(ctx); err != nil {
		s.logger.Warn().Err(err).
			Str("func", "clientControlService.LaunchForNewAccount").
			Msg("failed to clear some live session paths")
	}
	if err := s.marker.Clear(ctx); err != nil {
		return outgoing, fmt.Errorf("clear active account: %w", err)
	}

	if err := wait(ctx, s.newAccountDelay); err != nil {
		return outgoing, err
	}
	if err := s.process.Launch(ctx, s.executable); err != nil {
		return outgoing, fmt.Errorf("launch client: %w", err)
	}
	return outgoing, nil
}

// wait blocks for d or until ctx is done.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
