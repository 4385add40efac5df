// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-save-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ProfileRepository keeps player credentials. Usernames are unique.
type ProfileRepository interface {
	// CreateProfile stores a new credential or returns [ErrDuplicateUsername].
	// An existing credential is never modified.
	CreateProfile(ctx context.Context, credential models.Credential) error
	// FindProfile returns the credential or [ErrProfileNotFound].
	FindProfile(ctx context.Context, username string) (models.Credential, error)
	// DeleteProfile removes the credential or returns [ErrProfileNotFound].
	DeleteProfile(ctx context.Context, username string) error
}

// SaveRepository keeps one remote save per username.
type SaveRepository interface {
	// UpsertSave creates or overwrites the player's save in a single atomic
	// store operation and returns the stored state.
	UpsertSave(ctx context.Context, username string, score int, at time.Time) (models.RemoteSave, error)
	// LoadSave returns the player's save or [ErrSaveNotFound].
	LoadSave(ctx context.Context, username string) (models.RemoteSave, error)
	// TopN returns at most n saves ordered by score descending, then by the
	// most recent save time. n <= 0 yields an empty slice.
	TopN(ctx context.Context, n int) ([]models.RemoteSave, error)
	// DeleteSave removes the player's save. A missing save is not an error.
	DeleteSave(ctx context.Context, username string) error
}

// LocalProfileStore is a [ProfileRepository] on the local file system that
// also decides where each player's encrypted save lives.
type LocalProfileStore interface {
	ProfileRepository
	// SavePath returns the encrypted save file path for username.
	SavePath(username string) (string, error)
}

// EncryptedSaveStore writes and reads password-encrypted save files.
type EncryptedSaveStore interface {
	// Save encrypts record under password and atomically replaces path.
	Save(ctx context.Context, path string, record models.SaveRecord, password string) error
	// Load decrypts the save at path. A wrong password and a damaged file
	// both yield [ErrWrongPasswordOrCorrupt].
	Load(ctx context.Context, path, password string) (models.SaveRecord, error)
	// Delete removes the save at path. A missing file is not an error.
	Delete(ctx context.Context, path string) error
}
