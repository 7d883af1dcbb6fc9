// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-riot-switcher/models"
)

const profilesTable = "preference_profiles"

// psql renders SQLite "?" placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildUpsertProfileQuery(p models.PreferenceProfile) (string, []any, error) {
	return psql.Insert(profilesTable).
		Columns("name", "blob", "saved_at").
		Values(p.Name, string(p.Blob), p.SavedAt.UTC()).
		Suffix("ON CONFLICT(name) DO UPDATE SET blob = excluded.blob, saved_at = excluded.saved_at").
		ToSql()
}

func buildGetProfileQuery(name string) (string, []any, error) {
	return psql.Select("name", "blob", "saved_at").
		From(profilesTable).
		Where(sq.Eq{"name": name}).
		ToSql()
}

func buildListProfilesQuery() (string, []any, error) {
	return psql.Select("name", "saved_at").
		From(profilesTable).
		OrderBy("name").
		ToSql()
}

func buildDeleteProfileQuery(name string) (string, []any, error) {
	return psql.Delete(profilesTable).
		Where(sq.Eq{"name": name}).
		ToSql()
}
