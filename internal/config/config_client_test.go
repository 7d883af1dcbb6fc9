// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validStructured(dataDir string) *StructuredConfig {
	cfg := defaultConfig()
	cfg.App.DataDir = dataDir
	return cfg
}

func TestNewClientConfig_DerivesStorage(t *testing.T) {
	cfg := NewClientConfig(validStructured("/data"))

	assert.Equal(t, filepath.Join("/data", "switcher.db"), cfg.Storage.DB.DSN)
	assert.Equal(t, filepath.Join("/data", "switcher_profiles"), cfg.Storage.Snapshots.Dir)
	require.NoError(t, cfg.validate())
}

func TestNewClientConfig_KeepsExplicitStorage(t *testing.T) {
	s := validStructured("/data")
	s.Storage.DB.DSN = "/elsewhere/p.db"
	s.Storage.Snapshots.Dir = "/elsewhere/s"

	cfg := NewClientConfig(s)
	assert.Equal(t, "/elsewhere/p.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/elsewhere/s", cfg.Storage.Snapshots.Dir)
}

func TestClientConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *ClientConfig)
		want   error
	}{
		{"no data dir", func(c *ClientConfig) { c.App.DataDir = "" }, ErrInvalidAppConfigs},
		{"no install dir", func(c *ClientConfig) { c.Client.InstallDir = "" }, ErrInvalidClientConfigs},
		{"no managed paths", func(c *ClientConfig) { c.Client.ManagedPaths = nil }, ErrInvalidClientConfigs},
		{"duplicate leaf", func(c *ClientConfig) { c.Client.ManagedPaths = []string{"a/Config", "b/Config"} }, ErrInvalidClientConfigs},
		{"escaping path", func(c *ClientConfig) { c.Client.ManagedPaths = []string{"../Config"} }, ErrInvalidClientConfigs},
		{"bad url", func(c *ClientConfig) { c.Adapter.VersionURL = "not a url" }, ErrInvalidAdapterConfigs},
		{"no platform", func(c *ClientConfig) { c.Adapter.ClientPlatform = "" }, ErrInvalidAdapterConfigs},
		{"memory dsn", func(c *ClientConfig) { c.Storage.DB.DSN = ":memory:" }, ErrInvalidStorageConfigs},
		{"no snapshots", func(c *ClientConfig) { c.Storage.Snapshots.Dir = "" }, ErrInvalidStorageConfigs},
		{"zero interval", func(c *ClientConfig) { c.Workers.StatusInterval = 0 }, ErrInvalidWorkerConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewClientConfig(validStructured("/data"))
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.validate(), tt.want)
		})
	}
}

func TestClientConfig_EnsureDataDir(t *testing.T) {
	root := t.TempDir()
	cfg := NewClientConfig(validStructured(filepath.Join(root, "app")))

	require.NoError(t, cfg.EnsureDataDir())

	for _, dir := range []string{cfg.App.DataDir, cfg.Storage.Snapshots.Dir} {
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}
