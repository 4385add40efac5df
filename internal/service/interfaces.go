// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-save-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SaveKeeper is the persistence capability the game shell talks to.
// There is one implementation per storage family, selected at startup.
type SaveKeeper interface {
	// CreateProfile registers username with a password digest. An existing
	// profile is never modified.
	CreateProfile(ctx context.Context, username, password string) error

	// VerifyCredential checks password against the stored digest.
	VerifyCredential(ctx context.Context, username, password string) error

	// SaveGame stamps record with the current time and persists it. The
	// stored state is returned.
	SaveGame(ctx context.Context, username, password string, record models.SaveRecord) (models.SaveRecord, error)

	// LoadGame returns the player's last save. A missing save is an error,
	// never a blank record.
	LoadGame(ctx context.Context, username, password string) (models.SaveRecord, error)

	// ResetProfile removes the player's save and profile once the password
	// is verified.
	ResetProfile(ctx context.Context, username, password string) error
}

// Leaderboard is implemented by keepers whose store can rank players.
type Leaderboard interface {
	// TopN returns at most n saves, best score first.
	TopN(ctx context.Context, n int) ([]models.RemoteSave, error)
}
