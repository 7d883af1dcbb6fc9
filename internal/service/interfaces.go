// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-riot-switcher/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// ClientAccountService manages saved account snapshots and switches the live
// client installation between them.
type ClientAccountService interface {
	// List returns the saved account names, sorted.
	List(ctx context.Context) ([]string, error)

	// SaveCurrent snapshots the live installation under name and marks name
	// as the active account.
	// Returns ErrEmptyAccountName for a blank name and ErrClientNotInstalled
	// when the installation directory does not exist.
	SaveCurrent(ctx context.Context, name string) (models.AccountSnapshot, error)

	// Switch makes target the active account. The currently marked account,
	// if any and different from target, is saved first; a failure of that
	// save is reported in the result but does not stop the switch. target is
	// restored even when it is already active.
	// Returns store.ErrAccountNotFound without touching anything when target
	// has no snapshot.
	Switch(ctx context.Context, target string) (models.SwitchResult, error)

	// Delete removes the snapshot of name and clears the marker if it named
	// that account.
	Delete(ctx context.Context, name string) error

	// Active returns the marked account, or "" if none.
	Active(ctx context.Context) (string, error)
}

// ClientPreferenceService synchronises the remote player preferences and
// manages locally saved preference profiles. Every remote call performs a
// fresh handshake with the running client.
type ClientPreferenceService interface {
	// Fetch returns the current remote preference blob.
	Fetch(ctx context.Context) (models.PreferenceBlob, error)

	// Push uploads blob and returns the remote success status code.
	Push(ctx context.Context, blob models.PreferenceBlob) (int, error)

	// SaveProfile fetches the remote preferences and stores them under name,
	// replacing an existing profile with the same name.
	SaveProfile(ctx context.Context, name string) (models.PreferenceProfile, error)

	// LoadProfile pushes the stored profile to the remote service and returns
	// the remote status code.
	LoadProfile(ctx context.Context, name string) (int, error)

	ListProfiles(ctx context.Context) ([]models.PreferenceProfile, error)
	DeleteProfile(ctx context.Context, name string) error

	// ExportProfile returns the stored blob as indented JSON.
	ExportProfile(ctx context.Context, name string) (string, error)

	// IsClientRunning reports whether the client lock file is present.
	IsClientRunning() bool
}

// ClientControlService stops and starts the Riot Client.
type ClientControlService interface {
	// Restart terminates the client processes, waits the configured delay and
	// launches the client again.
	Restart(ctx context.Context) error

	// LaunchForNewAccount terminates the client, saves the marked account,
	// clears the live session paths and the marker, then launches the client
	// so a different account can sign in. The outgoing save is reported the
	// same way as for a switch.
	LaunchForNewAccount(ctx context.Context) (models.SaveOutcome, error)
}

// ClientStatusJob periodically probes whether the client is running.
type ClientStatusJob interface {
	// Start probes once immediately and then every interval, defaulting to
	// 5 seconds if interval is zero or negative. Any previously running job is
	// stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()

	// Running returns the result of the latest probe.
	Running() bool

	// Updates delivers the latest probe result whenever it changes. Only the
	// most recent unread value is kept.
	Updates() <-chan bool
}
