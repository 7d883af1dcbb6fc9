// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the shape of the JSON
// config file.
type StructuredJSONConfig struct {
	App struct {
		DataDir string `json:"data_dir"`
	} `json:"app,omitempty"`

	Client struct {
		InstallDir     string   `json:"install_dir"`
		LockfilePath   string   `json:"lockfile_path"`
		ExecutablePath string   `json:"executable_path"`
		ProcessNames   []string `json:"process_names"`
		ManagedPaths   []string `json:"managed_paths"`
		RestartDelay   Duration `json:"restart_delay"`
	} `json:"client,omitempty"`

	Adapter struct {
		LocalHost          string   `json:"local_host"`
		BasicAuthUser      string   `json:"basic_auth_user"`
		EntitlementPath    string   `json:"entitlement_path"`
		VersionURL         string   `json:"version_url"`
		PreferenceFetchURL string   `json:"preference_fetch_url"`
		PreferenceStoreURL string   `json:"preference_store_url"`
		ClientPlatform     string   `json:"client_platform"`
		RequestTimeout     Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
		Snapshots struct {
			Dir string `json:"dir"`
		} `json:"snapshots,omitempty"`
	} `json:"storage,omitempty"`

	Workers struct {
		StatusInterval Duration `json:"status_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			DataDir: jsonCfg.App.DataDir,
		},
		Client: Client{
			InstallDir:     jsonCfg.Client.InstallDir,
			LockfilePath:   jsonCfg.Client.LockfilePath,
			ExecutablePath: jsonCfg.Client.ExecutablePath,
			ProcessNames:   jsonCfg.Client.ProcessNames,
			ManagedPaths:   jsonCfg.Client.ManagedPaths,
			RestartDelay:   time.Duration(jsonCfg.Client.RestartDelay),
		},
		Adapter: Adapter{
			LocalHost:          jsonCfg.Adapter.LocalHost,
			BasicAuthUser:      jsonCfg.Adapter.BasicAuthUser,
			EntitlementPath:    jsonCfg.Adapter.EntitlementPath,
			VersionURL:         jsonCfg.Adapter.VersionURL,
			PreferenceFetchURL: jsonCfg.Adapter.PreferenceFetchURL,
			PreferenceStoreURL: jsonCfg.Adapter.PreferenceStoreURL,
			ClientPlatform:     jsonCfg.Adapter.ClientPlatform,
			RequestTimeout:     time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Storage: Storage{
			DB:        DB{DSN: jsonCfg.Storage.DB.DSN},
			Snapshots: Snapshots{Dir: jsonCfg.Storage.Snapshots.Dir},
		},
		Workers: Workers{
			StatusInterval: time.Duration(jsonCfg.Workers.StatusInterval),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
