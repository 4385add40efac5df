// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/MKhiriev/go-save-keeper/internal/logger"
	"github.com/MKhiriev/go-save-keeper/models"
)

type fixedIDs struct {
	id string
}

func (f fixedIDs) Generate() string { return f.id }

func newTestPostgres(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return newDB(conn, dialectPostgres, logger.Nop()), mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestSQLProfileRepository_CreateProfile_Success(t *testing.T) {
	db, mock := newTestPostgres(t)
	repo := NewSQLProfileRepository(db, fixedIDs{"p-1"}, logger.Nop())
	cred := testCredential("alice", 0xAA)

	mock.ExpectExec("INSERT INTO profiles").
		WithArgs("p-1", cred.Username, cred.PasswordDigest, cred.Salt, cred.IterationCount, cred.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.CreateProfile(context.Background(), cred); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestSQLProfileRepository_CreateProfile_UniqueViolation(t *testing.T) {
	db, mock := newTestPostgres(t)
	repo := NewSQLProfileRepository(db, fixedIDs{"p-1"}, logger.Nop())

	mock.ExpectExec("INSERT INTO profiles").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	err := repo.CreateProfile(context.Background(), testCredential("alice", 0xAA))
	if !errors.Is(err, ErrDuplicateUsername) {
		t.Fatalf("expected ErrDuplicateUsername, got %v", err)
	}
}

func TestSQLProfileRepository_CreateProfile_UnexpectedDBError(t *testing.T) {
	db, mock := newTestPostgres(t)
	repo := NewSQLProfileRepository(db, fixedIDs{"p-1"}, logger.Nop())

	mock.ExpectExec("INSERT INTO profiles").
		WillReturnError(errors.New("db network error"))

	err := repo.CreateProfile(context.Background(), testCredential("alice", 0xAA))
	if !errors.Is(err, ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}
	if errors.Is(err, ErrDuplicateUsername) {
		t.Fatalf("network error must not look like a duplicate: %v", err)
	}
}

func TestSQLProfileRepository_FindProfile(t *testing.T) {
	cred := testCredential("alice", 0xAA)

	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "found",
			setup: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.
					NewRows([]string{"username", "password_digest", "salt", "iteration_count", "created_at"}).
					AddRow(cred.Username, cred.PasswordDigest, cred.Salt, cred.IterationCount, cred.CreatedAt)
				mock.ExpectQuery("SELECT username, password_digest").WithArgs("alice").WillReturnRows(rows)
			},
		},
		{
			name: "not found",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT username").WithArgs("alice").WillReturnError(sql.ErrNoRows)
			},
			wantErr: ErrProfileNotFound,
		},
		{
			name: "scan error",
			setup: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"username"}).AddRow("alice")
				mock.ExpectQuery("SELECT username").WillReturnRows(rows)
			},
			wantErr: ErrScanningRow,
		},
		{
			name: "connection lost",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT username").WillReturnError(pgError(pgerrcode.ConnectionFailure))
			},
			wantErr: ErrStoreUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newTestPostgres(t)
			repo := NewSQLProfileRepository(db, fixedIDs{"p-1"}, logger.Nop())
			tt.setup(mock)

			got, err := repo.FindProfile(context.Background(), "alice")
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Username != cred.Username || got.IterationCount != cred.IterationCount {
				t.Errorf("unexpected credential: %+v", got)
			}
			if !got.CreatedAt.Equal(cred.CreatedAt) {
				t.Errorf("expected created_at %v, got %v", cred.CreatedAt, got.CreatedAt)
			}
		})
	}
}

func TestSQLProfileRepository_DeleteProfile(t *testing.T) {
	db, mock := newTestPostgres(t)
	repo := NewSQLProfileRepository(db, fixedIDs{"p-1"}, logger.Nop())

	mock.ExpectExec("DELETE FROM profiles").WithArgs("alice").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM profiles").WithArgs("ghost").WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.DeleteProfile(context.Background(), "alice"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := repo.DeleteProfile(context.Background(), "ghost"); !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
}

func TestSQLSaveRepository_UpsertSave(t *testing.T) {
	at := models.Timestamp(time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC))

	t.Run("returns stored row", func(t *testing.T) {
		db, mock := newTestPostgres(t)
		repo := NewSQLSaveRepository(db, fixedIDs{"s-new"}, logger.Nop())

		rows := sqlmock.NewRows([]string{"id", "username", "score", "last_save_at"}).
			AddRow("s-old", "alice", 200, at)
		mock.ExpectQuery(`INSERT INTO saves .* ON CONFLICT \(username\) DO UPDATE`).
			WithArgs("s-new", "alice", 200, at).
			WillReturnRows(rows)

		got, err := repo.UpsertSave(context.Background(), "alice", 200, at)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "s-old" || got.Score != 200 || !got.LastSaveTimestamp.Equal(at) {
			t.Errorf("unexpected save: %+v", got)
		}
	})

	t.Run("deadlock is reported after a single attempt", func(t *testing.T) {
		db, mock := newTestPostgres(t)
		repo := NewSQLSaveRepository(db, fixedIDs{"s-1"}, logger.Nop())

		mock.ExpectQuery("INSERT INTO saves").WillReturnError(pgError(pgerrcode.DeadlockDetected))

		_, err := repo.UpsertSave(context.Background(), "bob", 10, at)
		if !errors.Is(err, ErrStoreUnavailable) {
			t.Fatalf("expected ErrStoreUnavailable, got %v", err)
		}

		var pgErr *pgconn.PgError
		if !errors.As(err, &pgErr) || pgErr.Code != pgerrcode.DeadlockDetected {
			t.Errorf("expected the deadlock of the first attempt, got %v", err)
		}
		if err = mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet expectations: %v", err)
		}
	})

	t.Run("non retryable error", func(t *testing.T) {
		db, mock := newTestPostgres(t)
		repo := NewSQLSaveRepository(db, fixedIDs{"s-1"}, logger.Nop())

		mock.ExpectQuery("INSERT INTO saves").WillReturnError(pgError(pgerrcode.UndefinedTable))

		_, err := repo.UpsertSave(context.Background(), "bob", 10, at)
		if !errors.Is(err, ErrStoreUnavailable) {
			t.Fatalf("expected ErrStoreUnavailable, got %v", err)
		}
		if err = mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unexpected retry: %v", err)
		}
	})
}

func TestSQLSaveRepository_LoadSave_NotFound(t *testing.T) {
	db, mock := newTestPostgres(t)
	repo := NewSQLSaveRepository(db, fixedIDs{"s-1"}, logger.Nop())

	mock.ExpectQuery("SELECT id, username, score, last_save_at FROM saves").
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "score", "last_save_at"}))

	_, err := repo.LoadSave(context.Background(), "ghost")
	if !errors.Is(err, ErrSaveNotFound) {
		t.Fatalf("expected ErrSaveNotFound, got %v", err)
	}
}

func TestSQLSaveRepository_TopN(t *testing.T) {
	at := models.Timestamp(time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC))

	t.Run("scans rows in store order", func(t *testing.T) {
		db, mock := newTestPostgres(t)
		repo := NewSQLSaveRepository(db, fixedIDs{"s-1"}, logger.Nop())

		rows := sqlmock.NewRows([]string{"id", "username", "score", "last_save_at"}).
			AddRow("4", "erin", 400, at).
			AddRow("2", "carol", 300, at)
		mock.ExpectQuery(`ORDER BY score DESC, last_save_at DESC, id DESC LIMIT 3`).WillReturnRows(rows)

		got, err := repo.TopN(context.Background(), 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 || got[0].Username != "erin" || got[1].Username != "carol" {
			t.Errorf("unexpected leaderboard: %+v", got)
		}
	})

	t.Run("non-positive n", func(t *testing.T) {
		db, mock := newTestPostgres(t)
		repo := NewSQLSaveRepository(db, fixedIDs{"s-1"}, logger.Nop())

		got, err := repo.TopN(context.Background(), -1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got == nil || len(got) != 0 {
			t.Errorf("expected empty non-nil slice, got %#v", got)
		}
		if err = mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unexpected query: %v", err)
		}
	})

	t.Run("row error", func(t *testing.T) {
		db, mock := newTestPostgres(t)
		repo := NewSQLSaveRepository(db, fixedIDs{"s-1"}, logger.Nop())

		rows := sqlmock.NewRows([]string{"id", "username", "score", "last_save_at"}).
			AddRow("4", "erin", 400, at).
			RowError(0, errors.New("connection reset"))
		mock.ExpectQuery("SELECT id").WillReturnRows(rows)

		_, err := repo.TopN(context.Background(), 3)
		if !errors.Is(err, ErrScanningRows) {
			t.Fatalf("expected ErrScanningRows, got %v", err)
		}
	})
}

func TestSQLSaveRepository_DeleteSave_MissingIsNotAnError(t *testing.T) {
	db, mock := newTestPostgres(t)
	repo := NewSQLSaveRepository(db, fixedIDs{"s-1"}, logger.Nop())

	mock.ExpectExec("DELETE FROM saves").WithArgs("ghost").WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.DeleteSave(context.Background(), "ghost"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
