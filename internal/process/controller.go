// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package process starts and stops the Riot Client executables.
package process

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"runtime"

	"github.com/MKhiriev/go-riot-switcher/internal/logger"
)

//go:generate mockgen -source=controller.go -destination=../mock/process_mock.go -package=mock

// ErrLaunch is returned when the client executable cannot be started.
var ErrLaunch = errors.New("failed to launch client")

// Controller terminates and launches external processes.
type Controller interface {
	// Terminate force-kills every process whose image name is in names.
	// Names that match no running process are not an error.
	Terminate(ctx context.Context, names ...string) error
	// Launch starts the executable at path without waiting for it.
	Launch(ctx context.Context, path string) error
}

// CommandRunner runs a command to completion and returns its combined
// output.
type CommandRunner func(ctx context.Context, name string, args ...string) ([]byte, error)

func runCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).CombinedOutput()
}

type execController struct {
	goos   string
	run    CommandRunner
	logger *logger.Logger
}

// NewController returns the os/exec based [Controller] for the current OS.
func NewController(log *logger.Logger) Controller {
	return &execController{goos: runtime.GOOS, run: runCommand, logger: log}
}

// NewControllerWithRunner is NewController with an explicit target OS and
// command runner.
func NewControllerWithRunner(goos string, run CommandRunner, log *logger.Logger) Controller {
	return &execController{goos: goos, run: run, logger: log}
}

// killCommand returns the force-kill command for one image name.
func (c *execController) killCommand(name string) (string, []string) {
	if c.goos == "windows" {
		return "taskkill", []string{"/F", "/IM", name}
	}
	return "pkill", []string{"-x", name}
}

func (c *execController) Terminate(ctx context.Context, names ...string) error {
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return err
		}

		cmd, args := c.killCommand(name)
		out, err := c.run(ctx, cmd, args...)
		if err != nil {
			// The kill tools exit non-zero when nothing matched.
			c.logger.Debug().
				Str("func", "execController.Terminate").
				Str("process", name).
				Str("output", string(out)).
				Err(err).
				Msg("process not terminated")
			continue
		}
		c.logger.Info().Str("func", "execController.Terminate").Str("process", name).Msg("process terminated")
	}
	return nil
}

func (c *execController) Launch(ctx context.Context, path string) error {
	// The client must outlive ctx, so it is not bound to it.
	cmd := exec.Command(path)
	if err := cmd.Start(); err != nil {
		c.logger.Err(err).Str("func", "execController.Launch").Str("path", path).Msg("failed to start client")
		return fmt.Errorf("%w: %w", ErrLaunch, err)
	}

	c.logger.Info().Str("func", "execController.Launch").Str("path", path).Int("pid", cmd.Process.Pid).Msg("client launched")
	return cmd.Process.Release()
}
