// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive switcher runtime.
//
// It wires the terminal UI, the background status worker, and the storage
// lifecycle into a single process that exits on user quit or on SIGINT,
// SIGTERM and SIGQUIT.
package client
