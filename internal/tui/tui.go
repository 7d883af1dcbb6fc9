// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal front end of the switcher. It is a single
// bubbletea program with an accounts tab and a preference profiles tab; all
// work is delegated to the service layer.
package tui

import (
	"context"

	"github.com/MKhiriev/go-riot-switcher/internal/logger"
	"github.com/MKhiriev/go-riot-switcher/internal/service"
	"github.com/MKhiriev/go-riot-switcher/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, log *logger.Logger) *TUI {
	return &TUI{services: services, buildInfo: buildInfo, logger: log}
}

// Run blocks until the program exits. A quit requested from the keyboard is
// reported as ErrUserQuit.
func (t *TUI) Run(ctx context.Context) error {
	model := newMainLoopModel(ctx, t.services, t.buildInfo)
	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		t.logger.Err(err).Str("func", "TUI.Run").Msg("tui program failed")
		return err
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}
