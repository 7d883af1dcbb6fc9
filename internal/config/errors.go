// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates a missing data directory.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidClientConfigs indicates missing installation paths or an
	// unusable managed path set (empty, absolute, or duplicate leaf names).
	ErrInvalidClientConfigs = errors.New("invalid client configuration")
	// ErrInvalidAdapterConfigs indicates a missing or malformed endpoint.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates an empty or in-memory DSN, or a
	// missing snapshot directory.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidWorkerConfigs indicates a non-positive status interval.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
