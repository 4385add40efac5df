// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-save-keeper/internal/config"
	"github.com/MKhiriev/go-save-keeper/internal/crypto"
	"github.com/MKhiriev/go-save-keeper/internal/logger"
	"github.com/MKhiriev/go-save-keeper/internal/utils"
)

// Storages is the set of stores opened for one configured backend.
//
// For the local backend LocalProfiles and EncryptedSaves are set; for the
// remote backends Profiles and Saves are set. The other pair is nil.
type Storages struct {
	Backend string

	LocalProfiles  LocalProfileStore
	EncryptedSaves EncryptedSaveStore

	Profiles ProfileRepository
	Saves    SaveRepository

	close func(ctx context.Context) error
}

// NewStorages opens the backend selected by cfg.Backend.
func NewStorages(ctx context.Context, cfg config.Storage, kdf crypto.KeyDeriver, cipher crypto.Cipher, log *logger.Logger) (*Storages, error) {
	s := &Storages{
		Backend: cfg.Backend,
		close:   func(context.Context) error { return nil },
	}

	switch cfg.Backend {
	case config.BackendLocal:
		s.LocalProfiles = NewFileProfileStore(cfg.Local.Dir, log)
		s.EncryptedSaves = NewEncryptedSaveStore(kdf, cipher, log)

	case config.BackendMongo:
		db, err := NewConnectMongo(ctx, cfg.Mongo, log)
		if err != nil {
			return nil, err
		}
		s.Profiles = NewMongoProfileRepository(db.Database, log)
		s.Saves = NewMongoSaveRepository(db.Database, log)
		s.close = db.Close

	case config.BackendPostgres, config.BackendSQLite:
		connect := NewConnectPostgres
		if cfg.Backend == config.BackendSQLite {
			connect = NewConnectSQLite
		}

		db, err := connect(ctx, cfg.DB, log)
		if err != nil {
			return nil, err
		}
		ids := utils.NewUUIDGenerator()
		s.Profiles = NewSQLProfileRepository(db, ids, log)
		s.Saves = NewSQLSaveRepository(db, ids, log)
		s.close = func(context.Context) error { return db.Close() }

	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}

	log.Info().Str("func", "NewStorages").Str("backend", cfg.Backend).Msg("storage is ready")
	return s, nil
}

// Close releases the backend connection, if any.
func (s *Storages) Close(ctx context.Context) error {
	return s.close(ctx)
}
