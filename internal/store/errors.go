// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by the stores. Callers should use [errors.Is] to
// match against these values.
var (
	// ErrAccountNotFound is returned when no snapshot directory exists for
	// the requested account name.
	ErrAccountNotFound = errors.New("account snapshot not found")

	// ErrProfileNotFound is returned when no preference profile with the
	// requested name is stored.
	ErrProfileNotFound = errors.New("preference profile not found")

	// ErrIO wraps filesystem failures of the snapshot store and the marker.
	ErrIO = errors.New("snapshot store i/o error")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when squirrel fails to render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT or DELETE
	// fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan preference profile row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan preference profile rows")
)
