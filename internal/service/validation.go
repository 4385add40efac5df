// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-save-keeper/internal/crypto"
	"github.com/MKhiriev/go-save-keeper/internal/validators"
	"github.com/MKhiriev/go-save-keeper/models"
)

func validateCredentials(ctx context.Context, v validators.Validator, username, password string) error {
	if err := v.Validate(ctx, models.Login{Username: username, Password: password}); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return nil
}

// stampRecord binds record to username and the current time.
func stampRecord(ctx context.Context, v validators.Validator, username string, record models.SaveRecord) (models.SaveRecord, error) {
	record.PlayerName = username
	record.LastSaveTimestamp = models.Now()
	if err := v.Validate(ctx, record); err != nil {
		return models.SaveRecord{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return record, nil
}

// newCredential hashes password with a fresh salt and the hasher's
// default work factor.
func newCredential(hasher crypto.PasswordHasher, username, password string) (models.Credential, error) {
	hash, err := hasher.Hash(password, nil, 0)
	if err != nil {
		return models.Credential{}, fmt.Errorf("hash password: %w", err)
	}
	return models.Credential{
		Username:       username,
		PasswordDigest: hash.Digest,
		Salt:           hash.Salt,
		IterationCount: hash.Iterations,
		CreatedAt:      models.Now(),
	}, nil
}

func verifyCredential(hasher crypto.PasswordHasher, credential models.Credential, password string) error {
	ok := hasher.Verify(password, crypto.PasswordHash{
		Digest:     credential.PasswordDigest,
		Salt:       credential.Salt,
		Iterations: credential.IterationCount,
	})
	if !ok {
		return ErrWrongPassword
	}
	return nil
}
