// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
)

func (cfg *ClientConfig) validate() error {
	if cfg.App.DataDir == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Client.InstallDir == "" || cfg.Client.LockfilePath == "" || cfg.Client.ExecutablePath == "" {
		return ErrInvalidClientConfigs
	}
	if err := validateManagedPaths(cfg.Client.ManagedPaths); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidClientConfigs, err)
	}

	if cfg.Adapter.LocalHost == "" || cfg.Adapter.BasicAuthUser == "" ||
		cfg.Adapter.EntitlementPath == "" || cfg.Adapter.ClientPlatform == "" {
		return ErrInvalidAdapterConfigs
	}
	for _, raw := range []string{cfg.Adapter.VersionURL, cfg.Adapter.PreferenceFetchURL, cfg.Adapter.PreferenceStoreURL} {
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%w: bad url %q", ErrInvalidAdapterConfigs, raw)
		}
	}

	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}
	if cfg.Storage.Snapshots.Dir == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Workers.StatusInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func validateManagedPaths(paths []string) error {
	if len(paths) == 0 {
		return fmt.Errorf("no managed paths")
	}

	seen := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		clean := filepath.Clean(filepath.FromSlash(p))
		if p == "" || filepath.IsAbs(clean) || strings.HasPrefix(clean, "..") {
			return fmt.Errorf("managed path %q must be relative to the install dir", p)
		}
		leaf := filepath.Base(clean)
		if _, dup := seen[leaf]; dup {
			return fmt.Errorf("duplicate managed leaf %q", leaf)
		}
		seen[leaf] = struct{}{}
	}
	return nil
}
