// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-save-keeper/models"
)

const (
	profilesTable = "profiles"
	savesTable    = "saves"
)

var (
	profileColumns = []string{"id", "username", "password_digest", "salt", "iteration_count", "created_at"}
	saveColumns    = []string{"id", "username", "score", "last_save_at"}
)

// upsertSaveSuffix turns the INSERT into a single-statement upsert. The id
// of an existing row is kept; only the score and the save time move.
const upsertSaveSuffix = `ON CONFLICT (username) DO UPDATE
	SET score = excluded.score, last_save_at = excluded.last_save_at
	RETURNING id, username, score, last_save_at`

func buildInsertProfileQuery(b sq.StatementBuilderType, id string, credential models.Credential) (string, []any, error) {
	query, args, err := b.Insert(profilesTable).
		Columns(profileColumns...).
		Values(
			id,
			credential.Username,
			credential.PasswordDigest,
			credential.Salt,
			credential.IterationCount,
			models.Timestamp(credential.CreatedAt),
		).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectProfileQuery(b sq.StatementBuilderType, username string) (string, []any, error) {
	query, args, err := b.Select(profileColumns[1:]...).
		From(profilesTable).
		Where(sq.Eq{"username": username}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteByUsernameQuery(b sq.StatementBuilderType, table, username string) (string, []any, error) {
	query, args, err := b.Delete(table).
		Where(sq.Eq{"username": username}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildUpsertSaveQuery(b sq.StatementBuilderType, id, username string, score int, at time.Time) (string, []any, error) {
	query, args, err := b.Insert(savesTable).
		Columns(saveColumns...).
		Values(id, username, score, models.Timestamp(at)).
		Suffix(upsertSaveSuffix).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectSaveQuery(b sq.StatementBuilderType, username string) (string, []any, error) {
	query, args, err := b.Select(saveColumns...).
		From(savesTable).
		Where(sq.Eq{"username": username}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildTopNQuery orders by score, then by save time, then by id so that
// ties resolve the same way on every call.
func buildTopNQuery(b sq.StatementBuilderType, n int) (string, []any, error) {
	query, args, err := b.Select(saveColumns...).
		From(savesTable).
		OrderBy("score DESC", "last_save_at DESC", "id DESC").
		Limit(uint64(n)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
