// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-save-keeper/models"
)

func TestNewSaveKeeperValidator(t *testing.T) {
	v := NewSaveKeeperValidator()
	require.NotNil(t, v)
}

func TestValidate_Dispatch(t *testing.T) {
	v := NewSaveKeeperValidator()
	ctx := context.Background()

	t.Run("unsupported type", func(t *testing.T) {
		require.ErrorIs(t, v.Validate(ctx, "a string"), ErrUnsupportedType)
	})

	t.Run("Login value", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, models.Login{Username: "alice", Password: "pw"}))
	})

	t.Run("Login pointer", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, &models.Login{Username: "alice", Password: "pw"}))
	})

	t.Run("SaveRecord value", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, models.NewSaveRecord("alice")))
	})

	t.Run("SaveRecord pointer", func(t *testing.T) {
		r := models.NewSaveRecord("alice")
		require.NoError(t, v.Validate(ctx, &r))
	})
}

func TestValidate_Login(t *testing.T) {
	v := NewSaveKeeperValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		login   models.Login
		fields  []string
		wantErr error
	}{
		{name: "valid", login: models.Login{Username: "alice", Password: "pw"}},
		{name: "empty username", login: models.Login{Password: "pw"}, wantErr: ErrEmptyUsername},
		{name: "blank username", login: models.Login{Username: "   ", Password: "pw"}, wantErr: ErrEmptyUsername},
		{
			name:    "username too long",
			login:   models.Login{Username: strings.Repeat("a", MaxUsernameLength+1), Password: "pw"},
			wantErr: ErrLongUsername,
		},
		{name: "username at the limit", login: models.Login{Username: strings.Repeat("a", MaxUsernameLength), Password: "pw"}},
		{name: "empty password", login: models.Login{Username: "alice"}, wantErr: ErrEmptyPassword},
		{name: "username only", login: models.Login{Username: "alice"}, fields: []string{FieldUsername}},
		{name: "unknown field", login: models.Login{Username: "alice", Password: "pw"}, fields: []string{"email"}, wantErr: ErrUnknownField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.login, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_SaveRecord(t *testing.T) {
	v := NewSaveKeeperValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(r *models.SaveRecord)
		wantErr error
	}{
		{name: "valid", mutate: func(*models.SaveRecord) {}},
		{name: "blank player name", mutate: func(r *models.SaveRecord) { r.PlayerName = " " }, wantErr: ErrEmptyPlayerName},
		{name: "level zero", mutate: func(r *models.SaveRecord) { r.Level = 0 }, wantErr: ErrInvalidLevel},
		{name: "negative score", mutate: func(r *models.SaveRecord) { r.Score = -1 }, wantErr: ErrNegativeScore},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := models.NewSaveRecord("alice")
			tt.mutate(&r)

			err := v.Validate(ctx, r)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
