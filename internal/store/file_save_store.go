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

	"github.com/MKhiriev/go-save-keeper/internal/crypto"
	"github.com/MKhiriev/go-save-keeper/internal/logger"
	"github.com/MKhiriev/go-save-keeper/models"
)

const saveFilePerm os.FileMode = 0o600

// encryptedSaveStore is the file-system implementation of
// [EncryptedSaveStore].
//
// Each Save draws a fresh salt and nonce, so two saves of the same record
// never produce the same bytes. The password and the derived key only live
// for the duration of one call.
type encryptedSaveStore struct {
	kdf    crypto.KeyDeriver
	cipher crypto.Cipher
	logger *logger.Logger

	// beforeCommit is nil in production. Tests use it to interrupt a write
	// between the temp file and the rename.
	beforeCommit commitHook
}

// NewEncryptedSaveStore constructs an [EncryptedSaveStore] that derives keys
// with kdf and seals saves with cipher.
func NewEncryptedSaveStore(kdf crypto.KeyDeriver, cipher crypto.Cipher, logger *logger.Logger) EncryptedSaveStore {
	logger.Debug().Msg("creating encrypted save store")
	return &encryptedSaveStore{
		kdf:    kdf,
		cipher: cipher,
		logger: logger,
	}
}

// Save implements [EncryptedSaveStore]. Every failure is reported as [ErrIO]
// and leaves any previous file at path intact.
func (s *encryptedSaveStore) Save(ctx context.Context, path string, record models.SaveRecord, password string) error {
	log := logger.FromContext(ctx)

	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := s.seal(record, password)
	if err != nil {
		log.Err(err).Str("func", "*encryptedSaveStore.Save").Msg("error sealing save")
		return fmt.Errorf("%w: %w", ErrIO, err)
	}

	if err = writeFileAtomic(path, data, saveFilePerm, s.beforeCommit); err != nil {
		log.Err(err).Str("func", "*encryptedSaveStore.Save").Str("path", path).Msg("error writing save file")
		return fmt.Errorf("%w: %w", ErrIO, err)
	}

	log.Debug().Str("func", "*encryptedSaveStore.Save").Str("path", path).Msg("save written")
	return nil
}

// Load implements [EncryptedSaveStore].
func (s *encryptedSaveStore) Load(ctx context.Context, path, password string) (models.SaveRecord, error) {
	log := logger.FromContext(ctx)

	if err := ctx.Err(); err != nil {
		return models.SaveRecord{}, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return models.SaveRecord{}, ErrSaveNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*encryptedSaveStore.Load").Str("path", path).Msg("error reading save file")
		return models.SaveRecord{}, fmt.Errorf("%w: %w", ErrIO, err)
	}

	record, err := s.open(data, password)
	if err != nil {
		// the cause is logged but never returned: callers only learn that
		// the file could not be opened with this password
		log.Warn().Err(err).Str("func", "*encryptedSaveStore.Load").Str("path", path).Msg("save could not be opened")
		return models.SaveRecord{}, ErrWrongPasswordOrCorrupt
	}

	return record, nil
}

// Delete implements [EncryptedSaveStore].
func (s *encryptedSaveStore) Delete(ctx context.Context, path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.FromContext(ctx).Err(err).Str("func", "*encryptedSaveStore.Delete").Str("path", path).Msg("error removing save file")
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	return nil
}

func (s *encryptedSaveStore) seal(record models.SaveRecord, password string) ([]byte, error) {
	plaintext, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("marshal record: %w", err)
	}

	salt, err := s.kdf.NewSalt()
	if err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}

	key, err := s.kdf.DeriveKey(password, salt)
	if err != nil {
		return nil, fmt.Errorf("derive key: %w", err)
	}

	sealed, err := s.cipher.Encrypt(key, plaintext)
	if err != nil {
		return nil, err
	}

	envelope := models.EncryptedEnvelope{
		Salt:  salt,
		Nonce: sealed.Nonce,
		Tag:   sealed.Tag,
		Data:  sealed.Ciphertext,
	}

	return json.MarshalIndent(envelope, "", "  ")
}

func (s *encryptedSaveStore) open(data []byte, password string) (models.SaveRecord, error) {
	var envelope models.EncryptedEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return models.SaveRecord{}, fmt.Errorf("decode envelope: %w", err)
	}

	if len(envelope.Salt) != crypto.SaltSize {
		return models.SaveRecord{}, fmt.Errorf("invalid salt length %d", len(envelope.Salt))
	}

	key, err := s.kdf.DeriveKey(password, envelope.Salt)
	if err != nil {
		return models.SaveRecord{}, err
	}

	plaintext, err := s.cipher.Decrypt(key, crypto.Sealed{
		Nonce:      envelope.Nonce,
		Ciphertext: envelope.Data,
		Tag:        envelope.Tag,
	})
	if err != nil {
		return models.SaveRecord{}, err
	}

	var record models.SaveRecord
	if err = json.Unmarshal(plaintext, &record); err != nil {
		return models.SaveRecord{}, fmt.Errorf("decode record: %w", err)
	}
	if err = record.Validate(); err != nil {
		return models.SaveRecord{}, fmt.Errorf("invalid record: %w", err)
	}

	record.LastSaveTimestamp = models.Timestamp(record.LastSaveTimestamp)
	return record, nil
}
