// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-riot-switcher/internal/adapter"
	"github.com/MKhiriev/go-riot-switcher/internal/process"
	"github.com/MKhiriev/go-riot-switcher/internal/service"
	"github.com/MKhiriev/go-riot-switcher/internal/store"
)

var ErrUserQuit = errors.New("user quit")

func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	var apiErr *adapter.APIErrorResponse
	switch {
	case errors.Is(err, service.ErrEmptyAccountName):
		return "Please enter an account name"
	case errors.Is(err, service.ErrEmptyProfileName):
		return "Please enter a profile name"
	case errors.Is(err, service.ErrClientNotInstalled):
		return "Riot Client installation not found"
	case errors.Is(err, adapter.ErrLockfileNotFound):
		return "Riot Client is not running"
	case errors.Is(err, adapter.ErrMalformedLockfile):
		return "Riot Client lock file could not be parsed"
	case errors.Is(err, store.ErrAccountNotFound):
		return "Account not found"
	case errors.Is(err, store.ErrProfileNotFound):
		return "Profile not found"
	case errors.Is(err, process.ErrLaunch):
		return "Could not start the Riot Client"
	case errors.As(err, &apiErr):
		body := strings.TrimSpace(apiErr.Body)
		if body == "" {
			return fmt.Sprintf("Service answered with status %d", apiErr.Status)
		}
		return fmt.Sprintf("Service answered with status %d: %s", apiErr.Status, fitText(body, 120))
	case errors.Is(err, adapter.ErrNetworkFailure):
		return humanizeServerUnavailableError(err)
	}

	return err.Error()
}

func humanizeServerUnavailableError(err error) string {
	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Network is unavailable or the service is down"
	}

	return err.Error()
}
