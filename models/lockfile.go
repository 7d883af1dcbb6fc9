// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// LockFileCredentials holds the connection parameters published by a running
// Riot Client in its lock file. The record is re-read on every authentication
// attempt and is never persisted.
type LockFileCredentials struct {
	// Port is the loopback port of the local client API.
	Port int
	// Password is the Basic-auth password for the local client API.
	Password string
}
