// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for the switcher.
//
// Configuration is assembled from several sources. For every field the first
// source that supplies a non-zero value wins:
//  1. Command-line flags
//  2. Environment variables (prefix SWITCHER_)
//  3. JSON config file (path from -c/-config or SWITCHER_CONFIG)
//  4. Built-in defaults derived from the user's local data directories
//
// The main entry points are [GetStructuredConfig] for the raw merged view and
// [GetClientConfig] for the validated runtime configuration.
package config
