// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-riot-switcher/internal/logger"
	"github.com/MKhiriev/go-riot-switcher/models"
)

type preferenceProfileRepository struct {
	*DB
	logger *logger.Logger
}

func NewPreferenceProfileRepository(db *DB, logger *logger.Logger) PreferenceProfileRepository {
	return &preferenceProfileRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *preferenceProfileRepository) SaveProfile(ctx context.Context, profile models.PreferenceProfile) error {
	query, args, err := buildUpsertProfileQuery(profile)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).
			Str("func", "preferenceProfileRepository.SaveProfile").
			Str("profile", profile.Name).
			Msg("failed to upsert preference profile")
		return fmt.Errorf("%w: save profile %q: %w", ErrExecutingStatement, profile.Name, err)
	}

	return nil
}

func (r *preferenceProfileRepository) GetProfile(ctx context.Context, name string) (models.PreferenceProfile, error) {
	query, args, err := buildGetProfileQuery(name)
	if err != nil {
		return models.PreferenceProfile{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		profile models.PreferenceProfile
		blob    string
	)
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(&profile.Name, &blob, &profile.SavedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.PreferenceProfile{}, ErrProfileNotFound
		}
		r.logger.Err(err).
			Str("func", "preferenceProfileRepository.GetProfile").
			Str("profile", name).
			Msg("failed to scan preference profile row")
		return models.PreferenceProfile{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	profile.Blob = models.PreferenceBlob(blob)

	return profile, nil
}

func (r *preferenceProfileRepository) ListProfiles(ctx context.Context) ([]models.PreferenceProfile, error) {
	query, args, err := buildListProfilesQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).
			Str("func", "preferenceProfileRepository.ListProfiles").
			Msg("failed to query preference profiles")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	profiles := make([]models.PreferenceProfile, 0)
	for rows.Next() {
		var p models.PreferenceProfile
		if err = rows.Scan(&p.Name, &p.SavedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		profiles = append(profiles, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return profiles, nil
}

func (r *preferenceProfileRepository) DeleteProfile(ctx context.Context, name string) error {
	query, args, err := buildDeleteProfileQuery(name)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).
			Str("func", "preferenceProfileRepository.DeleteProfile").
			Str("profile", name).
			Msg("failed to delete preference profile")
		return fmt.Errorf("%w: delete profile %q: %w", ErrExecutingStatement, name, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrProfileNotFound
	}

	return nil
}
