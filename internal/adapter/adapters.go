// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"github.com/MKhiriev/go-riot-switcher/internal/config"
	"github.com/MKhiriev/go-riot-switcher/internal/logger"
	"github.com/spf13/afero"
)

// ClientAdapters groups the transport components built from one config.
type ClientAdapters struct {
	LockFile      LockFileReader
	Authenticator SessionAuthenticator
	Preferences   PreferenceClient
}

// NewClientAdapters wires the lock file reader into the authenticator and
// builds the preference client.
func NewClientAdapters(cfg *config.ClientConfig, fsys afero.Fs, log *logger.Logger) *ClientAdapters {
	lockfile := NewLockFileReader(fsys, cfg.Client.LockfilePath, log)
	return &ClientAdapters{
		LockFile:      lockfile,
		Authenticator: NewSessionAuthenticator(lockfile, cfg.Adapter, log),
		Preferences:   NewPreferenceClient(cfg.Adapter, log),
	}
}
