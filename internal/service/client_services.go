// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-riot-switcher/internal/adapter"
	"github.com/MKhiriev/go-riot-switcher/internal/config"
	"github.com/MKhiriev/go-riot-switcher/internal/logger"
	"github.com/MKhiriev/go-riot-switcher/internal/process"
	"github.com/MKhiriev/go-riot-switcher/internal/store"
)

type ClientServices struct {
	AccountService    ClientAccountService
	PreferenceService ClientPreferenceService
	ControlService    ClientControlService
	StatusJob         ClientStatusJob
}

func NewClientServices(cfg *config.ClientConfig, storages *store.ClientStorages, adapters *adapter.ClientAdapters, controller process.Controller, log *logger.Logger) *ClientServices {
	return &ClientServices{
		AccountService:    NewClientAccountService(storages, log),
		PreferenceService: NewClientPreferenceService(adapters, storages, log),
		ControlService:    NewClientControlService(cfg.Client, controller, storages, log),
		StatusJob:         NewClientStatusJob(adapters.LockFile, log),
	}
}
