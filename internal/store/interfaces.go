// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-riot-switcher/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// AccountSnapshotStore keeps one snapshot directory per named account under
// the store root and copies the managed paths of the live installation in
// and out of it. Account names are used verbatim as a path segment.
type AccountSnapshotStore interface {
	// List returns the names of every account directory in the store root,
	// sorted. A missing root yields an empty list.
	List(ctx context.Context) ([]string, error)

	// Save copies every managed path present in the live installation into
	// the account directory, replacing earlier copies of the same leaf.
	// Absent live paths are skipped.
	Save(ctx context.Context, name string) (models.AccountSnapshot, error)

	// Restore replaces the live managed paths with the leaves present in the
	// account snapshot. Either every leaf is swapped in or the live
	// installation is left as it was. Returns [ErrAccountNotFound] without
	// touching anything when the snapshot does not exist.
	Restore(ctx context.Context, name string) error

	// Delete removes the account directory. Returns [ErrAccountNotFound] if
	// it is missing or not a directory.
	Delete(ctx context.Context, name string) error

	Exists(ctx context.Context, name string) (bool, error)

	// ClearLive removes every managed path from the live installation.
	ClearLive(ctx context.Context) error

	// LiveRootExists reports whether the client installation directory exists.
	LiveRootExists() bool
}

// ActiveAccountMarker persists the name of the account whose state currently
// occupies the live installation.
type ActiveAccountMarker interface {
	// Get returns the marked account, or "" when no marker is recorded.
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, name string) error
	Clear(ctx context.Context) error
}

// PreferenceProfileRepository stores named copies of the remote preference
// blob in the local database.
type PreferenceProfileRepository interface {
	// SaveProfile inserts the profile or overwrites the one with the same name.
	SaveProfile(ctx context.Context, profile models.PreferenceProfile) error
	// GetProfile returns [ErrProfileNotFound] for an unknown name.
	GetProfile(ctx context.Context, name string) (models.PreferenceProfile, error)
	// ListProfiles returns profile names and save times ordered by name.
	// Blobs are not loaded.
	ListProfiles(ctx context.Context) ([]models.PreferenceProfile, error)
	DeleteProfile(ctx context.Context, name string) error
}
