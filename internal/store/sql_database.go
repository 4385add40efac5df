// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-save-keeper/internal/logger"
	"github.com/MKhiriev/go-save-keeper/migrations"
)

// SQL driver names passed to sql.Open and to the migration runner.
const (
	dialectPostgres = "pgx"
	dialectSQLite   = "sqlite3"
)

// DB wraps a *sql.DB together with everything the SQL repositories need to
// talk to one concrete engine: a query builder with the right placeholder
// format and an error classifier for that engine's driver errors.
type DB struct {
	*sql.DB
	dialect            string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

func newDB(conn *sql.DB, dialect string, log *logger.Logger) *DB {
	db := &DB{
		DB:      conn,
		dialect: dialect,
		logger:  log,
	}

	switch dialect {
	case dialectSQLite:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
		db.errorClassificator = NewSQLiteErrorClassifier()
	default:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
		db.errorClassificator = NewPostgresErrorClassifier()
	}

	return db
}

// Migrate applies all pending schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// mapError maps a driver error onto the store taxonomy.
func (db *DB) mapError(err error) error {
	if db.errorClassificator.Classify(err) == UniqueViolation {
		return ErrDuplicateUsername
	}
	return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
}
