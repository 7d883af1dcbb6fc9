// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-riot-switcher/internal/config"
	"github.com/MKhiriev/go-riot-switcher/internal/logger"
	"github.com/MKhiriev/go-riot-switcher/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func newTestRepo(db *sql.DB) PreferenceProfileRepository {
	return NewPreferenceProfileRepository(&DB{DB: db, logger: logger.Nop()}, logger.Nop())
}

func quoted(t *testing.T, build func() (string, []any, error)) string {
	t.Helper()
	q, _, err := build()
	require.NoError(t, err)
	return regexp.QuoteMeta(q)
}

var savedAt = time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)

func TestPreferenceProfileRepository_SaveProfile(t *testing.T) {
	db, mock := newTestDB(t)
	p := models.PreferenceProfile{Name: "main", Blob: models.PreferenceBlob(`{"data":"x"}`), SavedAt: savedAt}

	mock.ExpectExec(quoted(t, func() (string, []any, error) { return buildUpsertProfileQuery(p) })).
		WithArgs("main", `{"data":"x"}`, savedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, newTestRepo(db).SaveProfile(context.Background(), p))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPreferenceProfileRepository_SaveProfileError(t *testing.T) {
	db, mock := newTestDB(t)
	p := models.PreferenceProfile{Name: "main", Blob: models.PreferenceBlob(`{}`), SavedAt: savedAt}

	mock.ExpectExec(quoted(t, func() (string, []any, error) { return buildUpsertProfileQuery(p) })).
		WillReturnError(errors.New("disk I/O error"))

	err := newTestRepo(db).SaveProfile(context.Background(), p)
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestPreferenceProfileRepository_GetProfile(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectQuery(quoted(t, func() (string, []any, error) { return buildGetProfileQuery("main") })).
		WithArgs("main").
		WillReturnRows(sqlmock.NewRows([]string{"name", "blob", "saved_at"}).AddRow("main", `{"data":"x"}`, savedAt))

	got, err := newTestRepo(db).GetProfile(context.Background(), "main")
	require.NoError(t, err)
	assert.Equal(t, "main", got.Name)
	assert.Equal(t, `{"data":"x"}`, string(got.Blob))
	assert.True(t, savedAt.Equal(got.SavedAt))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPreferenceProfileRepository_GetProfileNotFound(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectQuery(quoted(t, func() (string, []any, error) { return buildGetProfileQuery("ghost") })).
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{"name", "blob", "saved_at"}))

	_, err := newTestRepo(db).GetProfile(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestPreferenceProfileRepository_ListProfiles(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectQuery(quoted(t, buildListProfilesQuery)).
		WillReturnRows(sqlmock.NewRows([]string{"name", "saved_at"}).
			AddRow("aim", savedAt).
			AddRow("main", savedAt.Add(time.Hour)))

	got, err := newTestRepo(db).ListProfiles(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "aim", got[0].Name)
	assert.Equal(t, "main", got[1].Name)
	assert.Nil(t, got[0].Blob)
}

func TestPreferenceProfileRepository_ListProfilesEmpty(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectQuery(quoted(t, buildListProfilesQuery)).
		WillReturnRows(sqlmock.NewRows([]string{"name", "saved_at"}))

	got, err := newTestRepo(db).ListProfiles(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestPreferenceProfileRepository_ListProfilesQueryError(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectQuery(quoted(t, buildListProfilesQuery)).WillReturnError(errors.New("locked"))

	_, err := newTestRepo(db).ListProfiles(context.Background())
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestPreferenceProfileRepository_DeleteProfile(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		wantErr  error
	}{
		{name: "deleted", affected: 1},
		{name: "missing", affected: 0, wantErr: ErrProfileNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newTestDB(t)
			mock.ExpectExec(quoted(t, func() (string, []any, error) { return buildDeleteProfileQuery("main") })).
				WithArgs("main").
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			err := newTestRepo(db).DeleteProfile(context.Background(), "main")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestPreferenceProfileRepository_SQLite(t *testing.T) {
	dir := t.TempDir()
	db, err := NewConnectSQLite(context.Background(), config.ClientDB{DSN: filepath.Join(dir, "nested", "switcher.db")}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.Migrate())

	repo := NewPreferenceProfileRepository(db, logger.Nop())
	ctx := context.Background()

	require.NoError(t, repo.SaveProfile(ctx, models.PreferenceProfile{Name: "main", Blob: models.PreferenceBlob(`{"v":1}`), SavedAt: savedAt}))
	require.NoError(t, repo.SaveProfile(ctx, models.PreferenceProfile{Name: "main", Blob: models.PreferenceBlob(`{"v":2}`), SavedAt: savedAt.Add(time.Minute)}))
	require.NoError(t, repo.SaveProfile(ctx, models.PreferenceProfile{Name: "aim", Blob: models.PreferenceBlob(`{}`), SavedAt: savedAt}))

	got, err := repo.GetProfile(ctx, "main")
	require.NoError(t, err)
	assert.Equal(t, `{"v":2}`, string(got.Blob), "save overwrites by name")

	list, err := repo.ListProfiles(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "aim", list[0].Name)

	require.NoError(t, repo.DeleteProfile(ctx, "aim"))
	assert.ErrorIs(t, repo.DeleteProfile(ctx, "aim"), ErrProfileNotFound)
	_, err = repo.GetProfile(ctx, "aim")
	assert.ErrorIs(t, err, ErrProfileNotFound)
}
