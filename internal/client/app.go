// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-riot-switcher/internal/logger"
	"github.com/MKhiriev/go-riot-switcher/internal/tui"
)

// UI is the blocking front end driven by App.
type UI interface {
	Run(ctx context.Context) error
}

// BackgroundWorkers is started before the UI and stopped after it exits.
type BackgroundWorkers interface {
	Run(ctx context.Context)
	Stop()
}

type App struct {
	ui       UI
	workers  BackgroundWorkers
	storages io.Closer
	logger   *logger.Logger
}

func NewApp(ui UI, workers BackgroundWorkers, storages io.Closer, log *logger.Logger) (*App, error) {
	if ui == nil {
		return nil, errors.New("client app: ui is nil")
	}
	return &App{ui: ui, workers: workers, storages: storages, logger: log}, nil
}

// Run blocks until the UI exits or a stop signal arrives. A quit requested by
// the user is not an error.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	if a.workers != nil {
		a.workers.Run(ctx)
	}

	a.logger.Info().Msg("switcher started")
	err := a.ui.Run(ctx)

	if a.workers != nil {
		a.workers.Stop()
	}
	if a.storages != nil {
		if closeErr := a.storages.Close(); closeErr != nil {
			a.logger.Err(closeErr).Str("func", "App.Run").Msg("error closing storages")
		}
	}

	if err == nil || errors.Is(err, tui.ErrUserQuit) || errors.Is(err, context.Canceled) {
		a.logger.Info().Msg("switcher stopped")
		return nil
	}
	return fmt.Errorf("run ui: %w", err)
}
