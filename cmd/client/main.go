// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-riot-switcher/internal/adapter"
	"github.com/MKhiriev/go-riot-switcher/internal/client"
	"github.com/MKhiriev/go-riot-switcher/internal/config"
	"github.com/MKhiriev/go-riot-switcher/internal/logger"
	"github.com/MKhiriev/go-riot-switcher/internal/process"
	"github.com/MKhiriev/go-riot-switcher/internal/service"
	"github.com/MKhiriev/go-riot-switcher/internal/store"
	"github.com/MKhiriev/go-riot-switcher/internal/tui"
	"github.com/MKhiriev/go-riot-switcher/internal/workers"
	"github.com/MKhiriev/go-riot-switcher/models"
	"github.com/spf13/afero"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewLogger("go-riot-switcher").Fatal().Err(err).Msg("error getting configs")
	}
	if err = cfg.EnsureDataDir(); err != nil {
		logger.NewLogger("go-riot-switcher").Fatal().Err(err).Msg("error creating data dir")
	}

	log := logger.NewClientLogger("go-riot-switcher", cfg.App.DataDir)
	log.Debug().Any("config", cfg).Msg("received configs")

	fsys := afero.NewOsFs()

	adapters := adapter.NewClientAdapters(cfg, fsys, log)

	storages, err := store.NewClientStorages(cfg, fsys, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create client storages")
	}

	services := service.NewClientServices(cfg, storages, adapters, process.NewController(log), log)

	bg := workers.NewWorkers(workers.NewStatusWorker(services.StatusJob, cfg.Workers.StatusInterval))

	app, err := client.NewApp(tui.New(services, buildInfo, log), bg, storages, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
