// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"time"
)

// ParseFlags parses the switcher command-line flags from args.
//
// Flags:
//
//	-c/-config json file path with configs
//	-data-dir application data directory
//	-install-dir live Riot Client data root
//	-lockfile Riot Client lock file path
//	-exe Riot Client executable path
//	-d profile database DSN
//	-snapshots-dir account snapshot store root
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-restart-delay delay between terminate and relaunch
//	-status-interval client status probe interval
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("switcher", flag.ContinueOnError)

	var (
		jsonConfigPath string
		dataDir        string
		installDir     string
		lockfilePath   string
		executablePath string
		databaseDSN    string
		snapshotsDir   string
		requestTimeout time.Duration
		restartDelay   time.Duration
		statusInterval time.Duration
	)

	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&dataDir, "data-dir", "", "Application data directory")
	fs.StringVar(&installDir, "install-dir", "", "Riot Client data root")
	fs.StringVar(&lockfilePath, "lockfile", "", "Riot Client lock file path")
	fs.StringVar(&executablePath, "exe", "", "Riot Client executable path")
	fs.StringVar(&databaseDSN, "d", "", "Profile database DSN")
	fs.StringVar(&snapshotsDir, "snapshots-dir", "", "Account snapshot store root")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&restartDelay, "restart-delay", 0, "Delay between terminating and relaunching the client")
	fs.DurationVar(&statusInterval, "status-interval", 0, "Client status probe interval")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			DataDir: dataDir,
		},
		Client: Client{
			InstallDir:     installDir,
			LockfilePath:   lockfilePath,
			ExecutablePath: executablePath,
			RestartDelay:   restartDelay,
		},
		Adapter: Adapter{
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB:        DB{DSN: databaseDSN},
			Snapshots: Snapshots{Dir: snapshotsDir},
		},
		Workers: Workers{
			StatusInterval: statusInterval,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
