// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-save-keeper/internal/logger"
	"github.com/MKhiriev/go-save-keeper/models"
)

const (
	profileFileName = "profile.json"
	saveFileName    = "save.enc"
)

// fileProfileStore is the file-system implementation of [LocalProfileStore].
//
// Layout:
//
//	<dir>/<username>/profile.json   credential
//	<dir>/<username>/save.enc       encrypted save
//
// profile.json itself is the uniqueness claim: it is published with
// [writeFileExclusive], which fails for a second creator. A player directory
// without profile.json, left behind by an interrupted create or removed by
// hand, is unclaimed.
type fileProfileStore struct {
	dir    string
	logger *logger.Logger
}

// NewFileProfileStore constructs a [LocalProfileStore] rooted at dir.
func NewFileProfileStore(dir string, logger *logger.Logger) LocalProfileStore {
	logger.Debug().Str("dir", dir).Msg("creating file profile store")
	return &fileProfileStore{
		dir:    dir,
		logger: logger,
	}
}

// CreateProfile implements [ProfileRepository].
func (s *fileProfileStore) CreateProfile(ctx context.Context, credential models.Credential) error {
	log := logger.FromContext(ctx)

	playerDir, err := s.playerDir(credential.Username)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(credential, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}

	err = writeFileExclusive(filepath.Join(playerDir, profileFileName), data, saveFilePerm)
	if errors.Is(err, fs.ErrExist) {
		return ErrDuplicateUsername
	}
	if err != nil {
		log.Err(err).Str("func", "*fileProfileStore.CreateProfile").Msg("error writing profile")
		return fmt.Errorf("%w: %w", ErrIO, err)
	}

	// A save left in an unclaimed directory belongs to nobody.
	if err = os.Remove(filepath.Join(playerDir, saveFileName)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warn().Err(err).Str("func", "*fileProfileStore.CreateProfile").Msg("error removing orphaned save")
	}

	log.Debug().Str("func", "*fileProfileStore.CreateProfile").Str("username", credential.Username).Msg("profile created")
	return nil
}

// FindProfile implements [ProfileRepository].
func (s *fileProfileStore) FindProfile(ctx context.Context, username string) (models.Credential, error) {
	playerDir, err := s.playerDir(username)
	if err != nil {
		return models.Credential{}, err
	}

	data, err := os.ReadFile(filepath.Join(playerDir, profileFileName))
	if errors.Is(err, fs.ErrNotExist) {
		return models.Credential{}, ErrProfileNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*fileProfileStore.FindProfile").Msg("error reading profile")
		return models.Credential{}, fmt.Errorf("%w: %w", ErrIO, err)
	}

	var credential models.Credential
	if err = json.Unmarshal(data, &credential); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*fileProfileStore.FindProfile").Msg("profile file is corrupted")
		return models.Credential{}, fmt.Errorf("%w: corrupted profile: %w", ErrIO, err)
	}

	return credential, nil
}

// DeleteProfile implements [ProfileRepository]. The player's save is
// removed together with the credential.
func (s *fileProfileStore) DeleteProfile(ctx context.Context, username string) error {
	playerDir, err := s.playerDir(username)
	if err != nil {
		return err
	}

	if _, err = os.Stat(filepath.Join(playerDir, profileFileName)); errors.Is(err, fs.ErrNotExist) {
		return ErrProfileNotFound
	}

	if err = os.RemoveAll(playerDir); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*fileProfileStore.DeleteProfile").Msg("error removing player directory")
		return fmt.Errorf("%w: %w", ErrIO, err)
	}

	return nil
}

// SavePath implements [LocalProfileStore].
func (s *fileProfileStore) SavePath(username string) (string, error) {
	playerDir, err := s.playerDir(username)
	if err != nil {
		return "", err
	}
	return filepath.Join(playerDir, saveFileName), nil
}

func (s *fileProfileStore) playerDir(username string) (string, error) {
	if !validPathElement(username) {
		return "", fmt.Errorf("%w: %q", ErrInvalidUsername, username)
	}
	return filepath.Join(s.dir, username), nil
}

// validPathElement reports whether name can be used as exactly one
// directory entry under the saves directory.
func validPathElement(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	if strings.ContainsAny(name, `/\`+"\x00") {
		return false
	}
	return filepath.Base(name) == name
}
