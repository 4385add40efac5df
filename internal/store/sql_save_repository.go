// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-save-keeper/internal/logger"
	"github.com/MKhiriev/go-save-keeper/internal/utils"
	"github.com/MKhiriev/go-save-keeper/models"
)

// sqlSaveRepository is the SQL-backed implementation of [SaveRepository]
// over the "saves" table.
type sqlSaveRepository struct {
	db     *DB
	ids    utils.IDGenerator
	logger *logger.Logger
}

// NewSQLSaveRepository constructs a [SaveRepository] backed by db.
func NewSQLSaveRepository(db *DB, ids utils.IDGenerator, logger *logger.Logger) SaveRepository {
	logger.Debug().Msg("creating sql save repository")
	return &sqlSaveRepository{
		db:     db,
		ids:    ids,
		logger: logger,
	}
}

// UpsertSave implements [SaveRepository] with INSERT ... ON CONFLICT DO
// UPDATE ... RETURNING, so creation and overwrite are one statement.
// Failures are not retried here; a [Retryable] one is only flagged in the log.
func (r *sqlSaveRepository) UpsertSave(ctx context.Context, username string, score int, at time.Time) (models.RemoteSave, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertSaveQuery(r.db.builder, r.ids.Generate(), username, score, at)
	if err != nil {
		log.Err(err).Str("func", "*sqlSaveRepository.UpsertSave").Msg("error building query")
		return models.RemoteSave{}, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	save, err := r.scanSave(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*sqlSaveRepository.UpsertSave").
			Bool("retryable", r.db.errorClassificator.Classify(err) == Retryable).
			Msg("error upserting save")
		return models.RemoteSave{}, r.db.mapError(err)
	}

	return save, nil
}

// LoadSave implements [SaveRepository].
func (r *sqlSaveRepository) LoadSave(ctx context.Context, username string) (models.RemoteSave, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectSaveQuery(r.db.builder, username)
	if err != nil {
		log.Err(err).Str("func", "*sqlSaveRepository.LoadSave").Msg("error building query")
		return models.RemoteSave{}, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	save, err := r.scanSave(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.RemoteSave{}, ErrSaveNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*sqlSaveRepository.LoadSave").Msg("error: scanning error")
		return models.RemoteSave{}, fmt.Errorf("%w: %w: %w", ErrStoreUnavailable, ErrScanningRow, err)
	}

	return save, nil
}

// TopN implements [SaveRepository].
func (r *sqlSaveRepository) TopN(ctx context.Context, n int) ([]models.RemoteSave, error) {
	if n <= 0 {
		return []models.RemoteSave{}, nil
	}

	log := logger.FromContext(ctx)

	query, args, err := buildTopNQuery(r.db.builder, n)
	if err != nil {
		log.Err(err).Str("func", "*sqlSaveRepository.TopN").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*sqlSaveRepository.TopN").Msg("error querying leaderboard")
		return nil, r.db.mapError(err)
	}
	defer rows.Close()

	result := make([]models.RemoteSave, 0, n)
	for rows.Next() {
		save, err := r.scanSave(rows)
		if err != nil {
			log.Err(err).Str("func", "*sqlSaveRepository.TopN").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w: %w", ErrStoreUnavailable, ErrScanningRows, err)
		}
		result = append(result, save)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*sqlSaveRepository.TopN").Msg("error iterating rows")
		return nil, fmt.Errorf("%w: %w: %w", ErrStoreUnavailable, ErrScanningRows, err)
	}

	return result, nil
}

// DeleteSave implements [SaveRepository].
func (r *sqlSaveRepository) DeleteSave(ctx context.Context, username string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteByUsernameQuery(r.db.builder, savesTable, username)
	if err != nil {
		log.Err(err).Str("func", "*sqlSaveRepository.DeleteSave").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*sqlSaveRepository.DeleteSave").Msg("error deleting save")
		return r.db.mapError(err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *sqlSaveRepository) scanSave(row rowScanner) (models.RemoteSave, error) {
	var save models.RemoteSave
	if err := row.Scan(&save.ID, &save.Username, &save.Score, &save.LastSaveTimestamp); err != nil {
		return models.RemoteSave{}, err
	}
	save.LastSaveTimestamp = models.Timestamp(save.LastSaveTimestamp)
	return save, nil
}
