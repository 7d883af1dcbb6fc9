// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/MKhiriev/go-riot-switcher/models"
)

// Well-known Riot endpoints and constants.
const (
	DefaultLocalHost          = "127.0.0.1"
	DefaultBasicAuthUser      = "riot"
	DefaultEntitlementPath    = "/entitlements/v1/token"
	DefaultVersionURL         = "https://valorant-api.com/v1/version"
	DefaultPreferenceFetchURL = "https://player-preferences-usw2.pp.sgp.pvp.net/playerPref/v3/getPreference/Ares.PlayerSettings"
	DefaultPreferenceStoreURL = "https://player-preferences-usw2.pp.sgp.pvp.net/playerPref/v3/savePreference"

	// DefaultClientPlatform is the base64 JSON platform descriptor expected in
	// the X-Riot-ClientPlatform header.
	DefaultClientPlatform = "ew0KCSJwbGF0Zm9ybVR5cGUiOiAiUEMiLA0KCSJwbGF0Zm9ybU9TIjogIldpbmRvd3MiLA0KCSJwbGF0Zm9ybU9TVmVyc2lvbiI6ICIxMC4wLjE5MDQyLjEuMjU2LjY0Yml0IiwNCgkicGxhdGZvcm1DaGlwc2V0IjogIlVua25vd24iDQp9"

	DefaultExecutablePath = `C:\Riot Games\Riot Client\RiotClientServices.exe`
	DefaultRestartDelay   = 3 * time.Second
	DefaultStatusInterval = 5 * time.Second

	appDirName       = "go-riot-switcher"
	dbFileName       = "switcher.db"
	snapshotsDirName = "switcher_profiles"
)

// DefaultProcessNames are the executables terminated before a restart.
var DefaultProcessNames = []string{
	"RiotClientServices.exe",
	"RiotClient.exe",
	"VALORANT.exe",
	"LeagueofLegends.exe",
}

// localDataDir resolves the per-user local data directory: LOCALAPPDATA on
// Windows, the user config dir elsewhere.
func localDataDir() string {
	if dir := os.Getenv("LOCALAPPDATA"); dir != "" {
		return dir
	}
	if dir, err := os.UserConfigDir(); err == nil {
		return dir
	}
	return "."
}

// DefaultInstallDir returns the conventional live Riot Client data root.
func DefaultInstallDir() string {
	return filepath.Join(localDataDir(), "Riot Games", "Riot Client")
}

// DefaultLockfilePath returns the conventional lock file location.
func DefaultLockfilePath() string {
	return filepath.Join(DefaultInstallDir(), "Config", "lockfile")
}

// DefaultDataDir returns the application-local storage directory.
func DefaultDataDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, appDirName)
	}
	return filepath.Join(localDataDir(), appDirName)
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			DataDir: DefaultDataDir(),
		},
		Client: Client{
			InstallDir:     DefaultInstallDir(),
			LockfilePath:   DefaultLockfilePath(),
			ExecutablePath: DefaultExecutablePath,
			ProcessNames:   append([]string(nil), DefaultProcessNames...),
			ManagedPaths:   append([]string(nil), models.DefaultManagedPaths...),
			RestartDelay:   DefaultRestartDelay,
		},
		Adapter: Adapter{
			LocalHost:          DefaultLocalHost,
			BasicAuthUser:      DefaultBasicAuthUser,
			EntitlementPath:    DefaultEntitlementPath,
			VersionURL:         DefaultVersionURL,
			PreferenceFetchURL: DefaultPreferenceFetchURL,
			PreferenceStoreURL: DefaultPreferenceStoreURL,
			ClientPlatform:     DefaultClientPlatform,
		},
		Workers: Workers{
			StatusInterval: DefaultStatusInterval,
		},
	}
}
