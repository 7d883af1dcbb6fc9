// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/MKhiriev/go-riot-switcher/models"

type accountsLoadedMsg struct {
	names  []string
	active string
	err    error
}

type profilesLoadedMsg struct {
	profiles []models.PreferenceProfile
	err      error
}

type accountSavedMsg struct {
	snapshot models.AccountSnapshot
	err      error
}

type switchDoneMsg struct {
	target string
	result models.SwitchResult
	err    error
}

type accountDeletedMsg struct {
	name string
	err  error
}

type profileSavedMsg struct {
	profile models.PreferenceProfile
	err     error
}

type profileLoadedMsg struct {
	name   string
	status int
	err    error
}

type profileDeletedMsg struct {
	name string
	err  error
}

type profileExportedMsg struct {
	name string
	json string
	err  error
}

type clientRestartedMsg struct {
	err error
}

type newAccountLaunchedMsg struct {
	outgoing models.SaveOutcome
	err      error
}

type clientStatusMsg struct {
	running bool
}
