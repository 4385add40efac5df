// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-save-keeper/internal/crypto"
	"github.com/MKhiriev/go-save-keeper/internal/logger"
	"github.com/MKhiriev/go-save-keeper/internal/store"
	"github.com/MKhiriev/go-save-keeper/internal/validators"
	"github.com/MKhiriev/go-save-keeper/models"
)

// localSaveKeeper keeps profiles and password-encrypted saves on the local
// file system.
//
// LoadGame does not check the stored credential first: the authentication
// tag of the save file is the only thing that tells a wrong password apart
// from a good one, and it reports both a wrong password and a damaged file
// the same way. SaveGame does check it, otherwise a mistyped password would
// silently re-encrypt the save under a key the player does not know.
type localSaveKeeper struct {
	profiles  store.LocalProfileStore
	saves     store.EncryptedSaveStore
	hasher    crypto.PasswordHasher
	validator validators.Validator
	logger    *logger.Logger
}

// NewLocalSaveKeeper constructs the file-system [SaveKeeper].
func NewLocalSaveKeeper(profiles store.LocalProfileStore, saves store.EncryptedSaveStore, hasher crypto.PasswordHasher, logger *logger.Logger) SaveKeeper {
	logger.Debug().Msg("creating local save keeper")
	return &localSaveKeeper{
		profiles:  profiles,
		saves:     saves,
		hasher:    hasher,
		validator: validators.NewSaveKeeperValidator(),
		logger:    logger,
	}
}

func (k *localSaveKeeper) CreateProfile(ctx context.Context, username, password string) error {
	log := logger.FromContext(ctx)

	if err := validateCredentials(ctx, k.validator, username, password); err != nil {
		return err
	}

	credential, err := newCredential(k.hasher, username, password)
	if err != nil {
		log.Err(err).Str("func", "*localSaveKeeper.CreateProfile").Msg("error hashing password")
		return err
	}

	if err = k.profiles.CreateProfile(ctx, credential); err != nil {
		return fmt.Errorf("create profile: %w", err)
	}

	log.Info().Str("func", "*localSaveKeeper.CreateProfile").Str("username", username).Msg("profile created")
	return nil
}

func (k *localSaveKeeper) VerifyCredential(ctx context.Context, username, password string) error {
	if err := validateCredentials(ctx, k.validator, username, password); err != nil {
		return err
	}

	credential, err := k.profiles.FindProfile(ctx, username)
	if err != nil {
		return fmt.Errorf("find profile: %w", err)
	}

	return verifyCredential(k.hasher, credential, password)
}

func (k *localSaveKeeper) SaveGame(ctx context.Context, username, password string, record models.SaveRecord) (models.SaveRecord, error) {
	log := logger.FromContext(ctx)

	if err := k.VerifyCredential(ctx, username, password); err != nil {
		return models.SaveRecord{}, err
	}

	stamped, err := stampRecord(ctx, k.validator, username, record)
	if err != nil {
		return models.SaveRecord{}, err
	}

	path, err := k.profiles.SavePath(username)
	if err != nil {
		return models.SaveRecord{}, fmt.Errorf("save path: %w", err)
	}

	if err = k.saves.Save(ctx, path, stamped, password); err != nil {
		log.Err(err).Str("func", "*localSaveKeeper.SaveGame").Msg("error writing save")
		return models.SaveRecord{}, fmt.Errorf("save game: %w", err)
	}

	return stamped, nil
}

func (k *localSaveKeeper) LoadGame(ctx context.Context, username, password string) (models.SaveRecord, error) {
	if err := validateCredentials(ctx, k.validator, username, password); err != nil {
		return models.SaveRecord{}, err
	}

	path, err := k.profiles.SavePath(username)
	if err != nil {
		return models.SaveRecord{}, fmt.Errorf("save path: %w", err)
	}

	record, err := k.saves.Load(ctx, path, password)
	if err != nil {
		return models.SaveRecord{}, fmt.Errorf("load game: %w", err)
	}

	return record, nil
}

func (k *localSaveKeeper) ResetProfile(ctx context.Context, username, password string) error {
	if err := k.VerifyCredential(ctx, username, password); err != nil {
		return err
	}

	path, err := k.profiles.SavePath(username)
	if err != nil {
		return fmt.Errorf("save path: %w", err)
	}

	if err = k.saves.Delete(ctx, path); err != nil {
		return fmt.Errorf("delete save: %w", err)
	}

	if err = k.profiles.DeleteProfile(ctx, username); err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}

	logger.FromContext(ctx).Info().Str("func", "*localSaveKeeper.ResetProfile").Str("username", username).Msg("profile reset")
	return nil
}
