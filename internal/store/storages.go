// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-riot-switcher/internal/config"
	"github.com/MKhiriev/go-riot-switcher/internal/logger"
	"github.com/MKhiriev/go-riot-switcher/internal/utils"
	"github.com/spf13/afero"
)

// ClientStorages groups the switcher's stores into a single value that can be
// passed to the service layer.
type ClientStorages struct {
	// Snapshots keeps per-account copies of the managed paths.
	Snapshots AccountSnapshotStore
	// Marker records the account currently occupying the live installation.
	Marker ActiveAccountMarker
	// Profiles is the SQLite-backed preference profile repository.
	Profiles PreferenceProfileRepository

	db *DB
}

// NewClientStorages initialises the storage layer:
//  1. Opens the SQLite database at cfg.Storage.DB.DSN and runs migrations.
//  2. Builds the snapshot store and marker on fsys, rooted at
//     cfg.Storage.Snapshots.Dir, restoring into cfg.Client.InstallDir.
func NewClientStorages(cfg *config.ClientConfig, fsys afero.Fs, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.Storage.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	root := cfg.Storage.Snapshots.Dir
	return &ClientStorages{
		Snapshots: NewAccountSnapshotStore(fsys, root, cfg.Client.InstallDir, cfg.Client.ManagedPaths, utils.NewUUIDGenerator(), logger),
		Marker:    NewActiveAccountMarker(fsys, root, logger),
		Profiles:  NewPreferenceProfileRepository(db, logger),
		db:        db,
	}, nil
}

// Close releases the database connection.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
