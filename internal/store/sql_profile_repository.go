// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-save-keeper/internal/logger"
	"github.com/MKhiriev/go-save-keeper/internal/utils"
	"github.com/MKhiriev/go-save-keeper/models"
)

// sqlProfileRepository is the SQL-backed implementation of
// [ProfileRepository] over the "profiles" table. It works on PostgreSQL and
// SQLite; the engine differences live in [DB].
//
// Username uniqueness is enforced by the ux_profiles_username constraint.
type sqlProfileRepository struct {
	db     *DB
	ids    utils.IDGenerator
	logger *logger.Logger
}

// NewSQLProfileRepository constructs a [ProfileRepository] backed by db.
// Row ids are taken from ids.
func NewSQLProfileRepository(db *DB, ids utils.IDGenerator, logger *logger.Logger) ProfileRepository {
	logger.Debug().Msg("creating sql profile repository")
	return &sqlProfileRepository{
		db:     db,
		ids:    ids,
		logger: logger,
	}
}

// CreateProfile implements [ProfileRepository].
//
// Error handling:
//   - unique constraint violation → [ErrDuplicateUsername].
//   - any other driver-level error → wrapped [ErrStoreUnavailable].
func (r *sqlProfileRepository) CreateProfile(ctx context.Context, credential models.Credential) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertProfileQuery(r.db.builder, r.ids.Generate(), credential)
	if err != nil {
		log.Err(err).Str("func", "*sqlProfileRepository.CreateProfile").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		mapped := r.db.mapError(err)
		if !errors.Is(mapped, ErrDuplicateUsername) {
			log.Err(err).Str("func", "*sqlProfileRepository.CreateProfile").Msg("error inserting profile")
		}
		return mapped
	}

	return nil
}

// FindProfile implements [ProfileRepository].
func (r *sqlProfileRepository) FindProfile(ctx context.Context, username string) (models.Credential, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectProfileQuery(r.db.builder, username)
	if err != nil {
		log.Err(err).Str("func", "*sqlProfileRepository.FindProfile").Msg("error building query")
		return models.Credential{}, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	var credential models.Credential
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&credential.Username,
		&credential.PasswordDigest,
		&credential.Salt,
		&credential.IterationCount,
		&credential.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Credential{}, ErrProfileNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*sqlProfileRepository.FindProfile").Msg("error: scanning error")
		return models.Credential{}, fmt.Errorf("%w: %w: %w", ErrStoreUnavailable, ErrScanningRow, err)
	}

	credential.CreatedAt = models.Timestamp(credential.CreatedAt)
	return credential, nil
}

// DeleteProfile implements [ProfileRepository].
func (r *sqlProfileRepository) DeleteProfile(ctx context.Context, username string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteByUsernameQuery(r.db.builder, profilesTable, username)
	if err != nil {
		log.Err(err).Str("func", "*sqlProfileRepository.DeleteProfile").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*sqlProfileRepository.DeleteProfile").Msg("error deleting profile")
		return r.db.mapError(err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return r.db.mapError(err)
	}
	if affected == 0 {
		return ErrProfileNotFound
	}

	return nil
}
