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

// remoteSaveKeeper keeps profiles and saves in a shared database. Saves
// are not encrypted; the database's own access control protects them, and
// every call that touches a save checks the player's password first.
//
// Only the score and the save time are stored remotely, so a loaded save
// always starts at level 1.
type remoteSaveKeeper struct {
	profiles  store.ProfileRepository
	saves     store.SaveRepository
	hasher    crypto.PasswordHasher
	validator validators.Validator
	logger    *logger.Logger
}

// NewRemoteSaveKeeper constructs the database-backed [SaveKeeper]. The
// returned value also implements [Leaderboard].
func NewRemoteSaveKeeper(profiles store.ProfileRepository, saves store.SaveRepository, hasher crypto.PasswordHasher, logger *logger.Logger) SaveKeeper {
	logger.Debug().Msg("creating remote save keeper")
	return &remoteSaveKeeper{
		profiles:  profiles,
		saves:     saves,
		hasher:    hasher,
		validator: validators.NewSaveKeeperValidator(),
		logger:    logger,
	}
}

func (k *remoteSaveKeeper) CreateProfile(ctx context.Context, username, password string) error {
	log := logger.FromContext(ctx)

	if err := validateCredentials(ctx, k.validator, username, password); err != nil {
		return err
	}

	credential, err := newCredential(k.hasher, username, password)
	if err != nil {
		log.Err(err).Str("func", "*remoteSaveKeeper.CreateProfile").Msg("error hashing password")
		return err
	}

	if err = k.profiles.CreateProfile(ctx, credential); err != nil {
		return fmt.Errorf("create profile: %w", err)
	}

	log.Info().Str("func", "*remoteSaveKeeper.CreateProfile").Str("username", username).Msg("profile created")
	return nil
}

func (k *remoteSaveKeeper) VerifyCredential(ctx context.Context, username, password string) error {
	if err := validateCredentials(ctx, k.validator, username, password); err != nil {
		return err
	}

	credential, err := k.profiles.FindProfile(ctx, username)
	if err != nil {
		return fmt.Errorf("find profile: %w", err)
	}

	return verifyCredential(k.hasher, credential, password)
}

func (k *remoteSaveKeeper) SaveGame(ctx context.Context, username, password string, record models.SaveRecord) (models.SaveRecord, error) {
	if err := k.VerifyCredential(ctx, username, password); err != nil {
		return models.SaveRecord{}, err
	}

	stamped, err := stampRecord(ctx, k.validator, username, record)
	if err != nil {
		return models.SaveRecord{}, err
	}

	saved, err := k.saves.UpsertSave(ctx, username, stamped.Score, stamped.LastSaveTimestamp)
	if err != nil {
		return models.SaveRecord{}, fmt.Errorf("upsert save: %w", err)
	}

	// the level stays with the running game
	stamped.Score = saved.Score
	stamped.LastSaveTimestamp = saved.LastSaveTimestamp
	return stamped, nil
}

func (k *remoteSaveKeeper) LoadGame(ctx context.Context, username, password string) (models.SaveRecord, error) {
	if err := k.VerifyCredential(ctx, username, password); err != nil {
		return models.SaveRecord{}, err
	}

	saved, err := k.saves.LoadSave(ctx, username)
	if err != nil {
		return models.SaveRecord{}, fmt.Errorf("load save: %w", err)
	}

	return saved.SaveRecord(), nil
}

// ResetProfile deletes the save before the profile, so an interrupted
// reset never leaves a save without an owner.
func (k *remoteSaveKeeper) ResetProfile(ctx context.Context, username, password string) error {
	if err := k.VerifyCredential(ctx, username, password); err != nil {
		return err
	}

	if err := k.saves.DeleteSave(ctx, username); err != nil {
		return fmt.Errorf("delete save: %w", err)
	}

	if err := k.profiles.DeleteProfile(ctx, username); err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}

	logger.FromContext(ctx).Info().Str("func", "*remoteSaveKeeper.ResetProfile").Str("username", username).Msg("profile reset")
	return nil
}

// TopN implements [Leaderboard].
func (k *remoteSaveKeeper) TopN(ctx context.Context, n int) ([]models.RemoteSave, error) {
	top, err := k.saves.TopN(ctx, n)
	if err != nil {
		return nil, fmt.Errorf("leaderboard: %w", err)
	}
	return top, nil
}
