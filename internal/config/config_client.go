// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/MKhiriev/go-riot-switcher/models"
)

// ClientApp holds application-level runtime settings.
type ClientApp struct {
	// DataDir is the application-local storage directory.
	DataDir string
}

// ClientInstall describes the local Riot Client installation.
type ClientInstall struct {
	InstallDir     string
	LockfilePath   string
	ExecutablePath string
	ProcessNames   []string
	ManagedPaths   models.ManagedPathSet
	RestartDelay   time.Duration
}

// ClientAdapter holds endpoint settings used by the transport layer.
type ClientAdapter struct {
	LocalHost          string
	BasicAuthUser      string
	EntitlementPath    string
	VersionURL         string
	PreferenceFetchURL string
	PreferenceStoreURL string
	ClientPlatform     string
	// RequestTimeout is zero when no explicit timeout is configured.
	RequestTimeout time.Duration
}

// ClientDB contains the profile database settings.
type ClientDB struct {
	// DSN is the SQLite file path.
	DSN string
}

// ClientSnapshots contains the account snapshot store settings.
type ClientSnapshots struct {
	// Dir is the store root.
	Dir string
}

// ClientStorage groups storage backend settings.
type ClientStorage struct {
	DB        ClientDB
	Snapshots ClientSnapshots
}

// ClientWorkers contains background job settings.
type ClientWorkers struct {
	// StatusInterval defines how often the client-running probe runs.
	StatusInterval time.Duration
}

// ClientConfig is the validated runtime configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Client  ClientInstall
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
}

// GetClientConfig builds and validates the runtime config from the merged
// structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := NewClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

// NewClientConfig maps the structured config into a [ClientConfig], deriving
// the database and snapshot locations from the data directory when they are
// not set explicitly.
func NewClientConfig(cfg *StructuredConfig) *ClientConfig {
	dsn := cfg.Storage.DB.DSN
	if dsn == "" && cfg.App.DataDir != "" {
		dsn = filepath.Join(cfg.App.DataDir, dbFileName)
	}
	snapshotsDir := cfg.Storage.Snapshots.Dir
	if snapshotsDir == "" && cfg.App.DataDir != "" {
		snapshotsDir = filepath.Join(cfg.App.DataDir, snapshotsDirName)
	}

	return &ClientConfig{
		App: ClientApp{
			DataDir: cfg.App.DataDir,
		},
		Client: ClientInstall{
			InstallDir:     cfg.Client.InstallDir,
			LockfilePath:   cfg.Client.LockfilePath,
			ExecutablePath: cfg.Client.ExecutablePath,
			ProcessNames:   cfg.Client.ProcessNames,
			ManagedPaths:   models.ManagedPathSet(cfg.Client.ManagedPaths),
			RestartDelay:   cfg.Client.RestartDelay,
		},
		Adapter: ClientAdapter{
			LocalHost:          cfg.Adapter.LocalHost,
			BasicAuthUser:      cfg.Adapter.BasicAuthUser,
			EntitlementPath:    cfg.Adapter.EntitlementPath,
			VersionURL:         cfg.Adapter.VersionURL,
			PreferenceFetchURL: cfg.Adapter.PreferenceFetchURL,
			PreferenceStoreURL: cfg.Adapter.PreferenceStoreURL,
			ClientPlatform:     cfg.Adapter.ClientPlatform,
			RequestTimeout:     cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB:        ClientDB{DSN: dsn},
			Snapshots: ClientSnapshots{Dir: snapshotsDir},
		},
		Workers: ClientWorkers{StatusInterval: cfg.Workers.StatusInterval},
	}
}

// EnsureDataDir creates the application data directory and the snapshot
// store root if they do not exist yet.
func (cfg *ClientConfig) EnsureDataDir() error {
	for _, dir := range []string{cfg.App.DataDir, cfg.Storage.Snapshots.Dir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create data dir %q: %w", dir, err)
		}
	}
	return nil
}
