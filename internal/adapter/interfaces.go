// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer access to the running Riot Client
// and to the remote Riot services.
//
// The package has three layers, each consuming the previous one:
//   - [LockFileReader] reads the lock file of a running client;
//   - [SessionAuthenticator] exchanges the lock file credentials for an
//     [models.AuthSession] through the local entitlement endpoint and the
//     public version endpoint;
//   - [PreferenceClient] fetches and stores the player preference blob with
//     that session.
//
// Errors are reported as sentinels defined in errors.go so callers can use
// [errors.Is]; rejected HTTP calls surface as [*APIErrorResponse].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-riot-switcher/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// LockFileReader locates and parses the lock file published by a running
// Riot Client.
type LockFileReader interface {
	// Locate reads the lock file and returns the port and password fields.
	// Returns [ErrLockfileNotFound] when the file is absent and
	// [ErrMalformedLockfile] when it has fewer than four fields.
	Locate(ctx context.Context) (models.LockFileCredentials, error)

	// Exists reports whether the lock file is present. It is an advisory
	// "client is running" probe: the file can outlive the process briefly.
	Exists() bool
}

// SessionAuthenticator derives a fresh [models.AuthSession] from the running
// client. Every call repeats the full handshake; nothing is cached.
type SessionAuthenticator interface {
	Authenticate(ctx context.Context) (models.AuthSession, error)
}

// PreferenceClient reads and writes the opaque player preference blob on the
// remote preference service.
type PreferenceClient interface {
	// Fetch returns the current preference blob.
	Fetch(ctx context.Context, session models.AuthSession) (models.PreferenceBlob, error)

	// Store uploads blob verbatim and returns the success status code.
	Store(ctx context.Context, session models.AuthSession, blob models.PreferenceBlob) (int, error)
}
