// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrEmptyAccountName   = errors.New("account name is empty")
	ErrEmptyProfileName   = errors.New("profile name is empty")
	ErrClientNotInstalled = errors.New("riot client installation not found")
)
