// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	"github.com/MKhiriev/go-riot-switcher/models"
	"github.com/stretchr/testify/require"
)

func TestBuildProfileQueries(t *testing.T) {
	tests := []struct {
		name       string
		build      func() (string, []any, error)
		contains   []string
		argsLength int
	}{
		{
			name: "upsert",
			build: func() (string, []any, error) {
				return buildUpsertProfileQuery(models.PreferenceProfile{Name: "main", Blob: models.PreferenceBlob(`{}`), SavedAt: savedAt})
			},
			contains:   []string{"insert into preference_profiles", "on conflict(name) do update"},
			argsLength: 3,
		},
		{
			name:       "get",
			build:      func() (string, []any, error) { return buildGetProfileQuery("main") },
			contains:   []string{"select name, blob, saved_at", "where name = ?"},
			argsLength: 1,
		},
		{
			name:       "list",
			build:      buildListProfilesQuery,
			contains:   []string{"select name, saved_at", "order by name"},
			argsLength: 0,
		},
		{
			name:       "delete",
			build:      func() (string, []any, error) { return buildDeleteProfileQuery("main") },
			contains:   []string{"delete from preference_profiles", "where name = ?"},
			argsLength: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := tt.build()
			require.NoError(t, err)

			q := strings.ToLower(query)
			for _, c := range tt.contains {
				require.Contains(t, q, c)
			}
			// sqlite placeholders only
			require.NotContains(t, query, "$1")
			require.Len(t, args, tt.argsLength)
		})
	}
}
