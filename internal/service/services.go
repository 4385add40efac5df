// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-save-keeper/internal/config"
	"github.com/MKhiriev/go-save-keeper/internal/crypto"
	"github.com/MKhiriev/go-save-keeper/internal/logger"
	"github.com/MKhiriev/go-save-keeper/internal/store"
)

// NewSaveKeeper picks the [SaveKeeper] variant that matches the backend
// storages were opened for.
func NewSaveKeeper(storages *store.Storages, hasher crypto.PasswordHasher, logger *logger.Logger) (SaveKeeper, error) {
	switch storages.Backend {
	case config.BackendLocal:
		return NewLocalSaveKeeper(storages.LocalProfiles, storages.EncryptedSaves, hasher, logger), nil
	case config.BackendMongo, config.BackendPostgres, config.BackendSQLite:
		return NewRemoteSaveKeeper(storages.Profiles, storages.Saves, hasher, logger), nil
	}
	return nil, fmt.Errorf("no save keeper for backend %q", storages.Backend)
}

// AsLeaderboard returns keeper's [Leaderboard] capability or
// [ErrLeaderboardUnsupported].
func AsLeaderboard(keeper SaveKeeper) (Leaderboard, error) {
	if lb, ok := keeper.(Leaderboard); ok {
		return lb, nil
	}
	return nil, ErrLeaderboardUnsupported
}
