// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-save-keeper/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldUsername targets the profile name of a [models.Login].
	FieldUsername = "username"

	// FieldPassword targets the plaintext password of a [models.Login].
	FieldPassword = "password"

	// FieldPlayerName targets the player name stored inside a save.
	FieldPlayerName = "player_name"

	// FieldLevel targets the level of a save.
	FieldLevel = "level"

	// FieldScore targets the score of a save.
	FieldScore = "score"
)

// MaxUsernameLength bounds usernames in bytes.
const MaxUsernameLength = 64

// SaveKeeperValidator implements [Validator] for the inputs of the save
// keeper: [models.Login] and [models.SaveRecord], by value or by pointer.
type SaveKeeperValidator struct {
}

// NewSaveKeeperValidator constructs a new SaveKeeperValidator
// and returns it as the Validator interface.
func NewSaveKeeperValidator() Validator {
	return &SaveKeeperValidator{}
}

// Validate dispatches validation to the appropriate type-specific method.
// Without fields every field of the value is checked.
func (v *SaveKeeperValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Login:
		return v.validateLogin(ctx, value, fields...)
	case *models.Login:
		return v.validateLogin(ctx, *value, fields...)

	case models.SaveRecord:
		return v.validateSaveRecord(ctx, value, fields...)
	case *models.SaveRecord:
		return v.validateSaveRecord(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *SaveKeeperValidator) validateLogin(ctx context.Context, login models.Login, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if strings.TrimSpace(login.Username) == "" {
				return ErrEmptyUsername
			}
			if len(login.Username) > MaxUsernameLength {
				return ErrLongUsername
			}
		case FieldPassword:
			if login.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *SaveKeeperValidator) validateSaveRecord(ctx context.Context, record models.SaveRecord, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPlayerName, FieldLevel, FieldScore}
	}

	for _, f := range fields {
		switch f {
		case FieldPlayerName:
			if strings.TrimSpace(record.PlayerName) == "" {
				return ErrEmptyPlayerName
			}
		case FieldLevel:
			if record.Level < 1 {
				return ErrInvalidLevel
			}
		case FieldScore:
			if record.Score < 0 {
				return ErrNegativeScore
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
