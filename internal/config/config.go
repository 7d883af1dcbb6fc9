// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "SWITCHER_"

// StructuredConfig is the top-level configuration container. It aggregates
// all sub-configurations and is populated by merging flags, environment
// variables, an optional JSON file, and defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings.
	App App `envPrefix:"APP_"`

	// Client describes the local Riot Client installation.
	Client Client `envPrefix:"CLIENT_"`

	// Adapter holds endpoints and timeouts for the local and remote APIs.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the profile database and snapshot directory settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds configuration for background jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Env: SWITCHER_CONFIG
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// DataDir is the application-local directory holding the log file, the
	// profile database and, by default, account snapshots.
	// Env: SWITCHER_APP_DATA_DIR
	DataDir string `env:"DATA_DIR"`
}

// Client describes where the Riot Client lives on this machine and how to
// control it.
type Client struct {
	// InstallDir is the live client data root whose managed paths are
	// snapshotted (e.g. %LOCALAPPDATA%/Riot Games/Riot Client).
	// Env: SWITCHER_CLIENT_INSTALL_DIR
	InstallDir string `env:"INSTALL_DIR"`

	// LockfilePath is the lock file written by a running client.
	// Env: SWITCHER_CLIENT_LOCKFILE_PATH
	LockfilePath string `env:"LOCKFILE_PATH"`

	// ExecutablePath is launched on restart.
	// Env: SWITCHER_CLIENT_EXECUTABLE_PATH
	ExecutablePath string `env:"EXECUTABLE_PATH"`

	// ProcessNames are terminated before a restart.
	// Env: SWITCHER_CLIENT_PROCESS_NAMES (comma separated)
	ProcessNames []string `env:"PROCESS_NAMES" envSeparator:","`

	// ManagedPaths are the installation-relative paths saved per account.
	// Env: SWITCHER_CLIENT_MANAGED_PATHS (comma separated)
	ManagedPaths []string `env:"MANAGED_PATHS" envSeparator:","`

	// RestartDelay is how long to wait between terminating and relaunching.
	// Env: SWITCHER_CLIENT_RESTART_DELAY
	RestartDelay time.Duration `env:"RESTART_DELAY"`
}

// Adapter holds endpoint settings for the local client API and the remote
// Riot services.
type Adapter struct {
	// LocalHost is the loopback host of the local client API.
	// Env: SWITCHER_ADAPTER_LOCAL_HOST
	LocalHost string `env:"LOCAL_HOST"`

	// BasicAuthUser is the fixed user name paired with the lock file password.
	// Env: SWITCHER_ADAPTER_BASIC_AUTH_USER
	BasicAuthUser string `env:"BASIC_AUTH_USER"`

	// EntitlementPath is the local entitlement endpoint path.
	// Env: SWITCHER_ADAPTER_ENTITLEMENT_PATH
	EntitlementPath string `env:"ENTITLEMENT_PATH"`

	// VersionURL is the public client version endpoint.
	// Env: SWITCHER_ADAPTER_VERSION_URL
	VersionURL string `env:"VERSION_URL"`

	// PreferenceFetchURL is the remote endpoint returning player preferences.
	// Env: SWITCHER_ADAPTER_PREFERENCE_FETCH_URL
	PreferenceFetchURL string `env:"PREFERENCE_FETCH_URL"`

	// PreferenceStoreURL is the remote endpoint accepting player preferences.
	// Env: SWITCHER_ADAPTER_PREFERENCE_STORE_URL
	PreferenceStoreURL string `env:"PREFERENCE_STORE_URL"`

	// ClientPlatform is the opaque X-Riot-ClientPlatform descriptor.
	// Env: SWITCHER_ADAPTER_CLIENT_PLATFORM
	ClientPlatform string `env:"CLIENT_PLATFORM"`

	// RequestTimeout bounds a single outbound request. Zero means no
	// timeout beyond the transport defaults.
	// Env: SWITCHER_ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the persistence settings.
type Storage struct {
	// DB holds the preference profile database settings.
	DB DB `envPrefix:"DB_"`

	// Snapshots holds the account snapshot store settings.
	Snapshots Snapshots `envPrefix:"SNAPSHOTS_"`
}

// DB holds connection settings for the SQLite profile database.
type DB struct {
	// DSN is the SQLite file path. Defaults to <data dir>/switcher.db.
	// Env: SWITCHER_STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Snapshots holds settings for the account snapshot store.
type Snapshots struct {
	// Dir is the store root. Defaults to <data dir>/switcher_profiles.
	// Env: SWITCHER_STORAGE_SNAPSHOTS_DIR
	Dir string `env:"DIR"`
}

// Workers holds configuration for background jobs.
type Workers struct {
	// StatusInterval is how often the client-running probe is repeated.
	// Env: SWITCHER_WORKERS_STATUS_INTERVAL
	StatusInterval time.Duration `env:"STATUS_INTERVAL"`
}

// GetStructuredConfig loads and merges the configuration from the process
// arguments, the environment, an optional JSON file, and defaults.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(os.Args[1:]).
		withEnv().
		withJSON().
		withDefaults().
		build()
}
