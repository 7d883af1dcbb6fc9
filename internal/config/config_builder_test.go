// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_FirstSourceWins verifies the precedence: flags over env over
// JSON over defaults.
func TestBuild_FirstSourceWins(t *testing.T) {
	t.Setenv("SWITCHER_APP_DATA_DIR", "/from-env")
	t.Setenv("SWITCHER_STORAGE_DB_DSN", "/from-env/db")
	json := writeTempFile(t, `{"storage":{"db":{"dsn":"/from-json/db"},"snapshots":{"dir":"/from-json/s"}}}`)

	cfg, err := newConfigBuilder().
		withFlags([]string{"-data-dir", "/from-flags", "-c", json}).
		withEnv().
		withJSON().
		withDefaults().
		build()
	require.NoError(t, err)

	assert.Equal(t, "/from-flags", cfg.App.DataDir)
	assert.Equal(t, "/from-env/db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/from-json/s", cfg.Storage.Snapshots.Dir)
	assert.Equal(t, DefaultVersionURL, cfg.Adapter.VersionURL)
	assert.Equal(t, DefaultStatusInterval, cfg.Workers.StatusInterval)
	assert.Equal(t, DefaultProcessNames, cfg.Client.ProcessNames)
}

func TestBuild_JSONErrorIsCollected(t *testing.T) {
	cfg, err := newConfigBuilder().
		withFlags([]string{"-c", "/definitely/not/here.json"}).
		withJSON().
		build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestBuild_FlagErrorIsCollected(t *testing.T) {
	_, err := newConfigBuilder().withFlags([]string{"-bogus"}).build()
	require.Error(t, err)
}

func TestDefaultConfig_UsesLocalAppData(t *testing.T) {
	t.Setenv("LOCALAPPDATA", "/local")

	cfg := defaultConfig()
	assert.Contains(t, cfg.Client.InstallDir, "Riot Client")
	assert.Contains(t, cfg.Client.LockfilePath, "lockfile")
	assert.Equal(t, DefaultRestartDelay, cfg.Client.RestartDelay)
	assert.Equal(t, 3*time.Second, cfg.Client.RestartDelay)
	assert.Len(t, cfg.Client.ManagedPaths, 3)
}
