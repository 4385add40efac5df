// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/go-save-keeper/internal/crypto"
	"github.com/MKhiriev/go-save-keeper/internal/logger"
	"github.com/MKhiriev/go-save-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSaveStore(t *testing.T) (*encryptedSaveStore, string) {
	t.Helper()
	s := NewEncryptedSaveStore(
		crypto.NewKeyDeriver(crypto.MinIterations),
		crypto.NewCipher(),
		logger.Nop(),
	).(*encryptedSaveStore)

	return s, filepath.Join(t.TempDir(), "alice", "save.enc")
}

func testRecord(score int) models.SaveRecord {
	return models.SaveRecord{
		PlayerName:        "alice",
		Level:             3,
		Score:             score,
		LastSaveTimestamp: models.Timestamp(time.Date(2026, 5, 1, 10, 0, 0, 123456789, time.UTC)),
	}
}

// rewriteEnvelope decodes the envelope at path, applies mutate and writes it back.
func rewriteEnvelope(t *testing.T, path string, mutate func(e *models.EncryptedEnvelope)) {
	t.Helper()
	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var env models.EncryptedEnvelope
	require.NoError(t, json.Unmarshal(raw, &env))
	mutate(&env)

	raw, err = json.Marshal(env)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, raw, 0o600))
}

func TestEncryptedSaveStore_RoundTrip(t *testing.T) {
	s, path := newTestSaveStore(t)
	ctx := context.Background()
	rec := testRecord(120)

	require.NoError(t, s.Save(ctx, path, rec, "pw"))

	got, err := s.Load(ctx, path, "pw")
	require.NoError(t, err)
	assert.Equal(t, rec, got)
}

func TestEncryptedSaveStore_WrongPassword(t *testing.T) {
	s, path := newTestSaveStore(t)
	ctx := context.Background()
	require.NoError(t, s.Save(ctx, path, testRecord(10), "pw"))

	got, err := s.Load(ctx, path, "nope")

	assert.ErrorIs(t, err, ErrWrongPasswordOrCorrupt)
	assert.Equal(t, models.SaveRecord{}, got)
}

func TestEncryptedSaveStore_TamperedFile(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(e *models.EncryptedEnvelope)
	}{
		{name: "flipped data bit", mutate: func(e *models.EncryptedEnvelope) { e.Data[0] ^= 0x01 }},
		{name: "flipped tag bit", mutate: func(e *models.EncryptedEnvelope) { e.Tag[5] ^= 0x80 }},
		{name: "flipped nonce bit", mutate: func(e *models.EncryptedEnvelope) { e.Nonce[0] ^= 0x01 }},
		{name: "flipped salt bit", mutate: func(e *models.EncryptedEnvelope) { e.Salt[15] ^= 0x01 }},
		{name: "short salt", mutate: func(e *models.EncryptedEnvelope) { e.Salt = e.Salt[:4] }},
		{name: "missing tag", mutate: func(e *models.EncryptedEnvelope) { e.Tag = nil }},
		{name: "truncated data", mutate: func(e *models.EncryptedEnvelope) { e.Data = e.Data[:len(e.Data)-1] }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, path := newTestSaveStore(t)
			ctx := context.Background()
			require.NoError(t, s.Save(ctx, path, testRecord(50), "pw"))

			rewriteEnvelope(t, path, tt.mutate)

			_, err := s.Load(ctx, path, "pw")
			assert.ErrorIs(t, err, ErrWrongPasswordOrCorrupt)
		})
	}
}

func TestEncryptedSaveStore_MalformedFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "not json", content: "garbage"},
		{name: "empty file", content: ""},
		{name: "bad base64", content: `{"salt":"!!!","nonce":"","tag":"","data":""}`},
		{name: "empty object", content: `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, path := newTestSaveStore(t)
			require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o700))
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o600))

			_, err := s.Load(context.Background(), path, "pw")
			assert.ErrorIs(t, err, ErrWrongPasswordOrCorrupt)
		})
	}
}

func TestEncryptedSaveStore_NotFound(t *testing.T) {
	s, path := newTestSaveStore(t)

	_, err := s.Load(context.Background(), path, "pw")

	assert.ErrorIs(t, err, ErrSaveNotFound)
}

func TestEncryptedSaveStore_ReadErrorIsIO(t *testing.T) {
	s, _ := newTestSaveStore(t)
	dirAsPath := t.TempDir()

	_, err := s.Load(context.Background(), dirAsPath, "pw")

	assert.ErrorIs(t, err, ErrIO)
	assert.NotErrorIs(t, err, ErrWrongPasswordOrCorrupt)
}

func TestEncryptedSaveStore_EnvelopeFormat(t *testing.T) {
	s, path := newTestSaveStore(t)
	require.NoError(t, s.Save(context.Background(), path, testRecord(1), "pw"))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(raw, &fields))
	assert.Len(t, fields, 4)
	for _, k := range []string{"salt", "nonce", "tag", "data"} {
		assert.IsType(t, "", fields[k], "field %s must be a base64 string", k)
	}

	var env models.EncryptedEnvelope
	require.NoError(t, json.Unmarshal(raw, &env))
	assert.Len(t, env.Salt, crypto.SaltSize)
	assert.Len(t, env.Nonce, crypto.NonceSize)
	assert.Len(t, env.Tag, crypto.TagSize)
	assert.NotContains(t, string(raw), "alice", "plaintext must not leak into the file")

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, saveFilePerm, info.Mode().Perm())
}

func TestEncryptedSaveStore_FreshSaltAndNoncePerSave(t *testing.T) {
	s, path := newTestSaveStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, path, testRecord(1), "pw"))
	first, err := os.ReadFile(path)
	require.NoError(t, err)

	require.NoError(t, s.Save(ctx, path, testRecord(1), "pw"))
	second, err := os.ReadFile(path)
	require.NoError(t, err)

	var a, b models.EncryptedEnvelope
	require.NoError(t, json.Unmarshal(first, &a))
	require.NoError(t, json.Unmarshal(second, &b))
	assert.NotEqual(t, a.Salt, b.Salt)
	assert.NotEqual(t, a.Nonce, b.Nonce)
}

// TestEncryptedSaveStore_InterruptedWriteKeepsPreviousSave simulates a crash
// after the temp file is written but before the rename.
func TestEncryptedSaveStore_InterruptedWriteKeepsPreviousSave(t *testing.T) {
	s, path := newTestSaveStore(t)
	ctx := context.Background()
	previous := testRecord(100)
	require.NoError(t, s.Save(ctx, path, previous, "pw"))

	var tmpPath string
	s.beforeCommit = func(p string) error {
		tmpPath = p
		_, err := os.Stat(p)
		require.NoError(t, err, "temp file must exist before the rename")
		return errors.New("power loss")
	}

	err := s.Save(ctx, path, testRecord(999), "pw")
	require.ErrorIs(t, err, ErrIO)

	got, err := s.Load(ctx, path, "pw")
	require.NoError(t, err)
	assert.Equal(t, previous, got)

	_, err = os.Stat(tmpPath)
	assert.True(t, os.IsNotExist(err), "temp file must be cleaned up")

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestEncryptedSaveStore_WriteFailureIsIO(t *testing.T) {
	s, _ := newTestSaveStore(t)
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	err := s.Save(context.Background(), filepath.Join(blocker, "save.enc"), testRecord(1), "pw")

	assert.ErrorIs(t, err, ErrIO)
}

func TestEncryptedSaveStore_CanceledContext(t *testing.T) {
	s, path := newTestSaveStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, s.Save(ctx, path, testRecord(1), "pw"), context.Canceled)
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	_, err = s.Load(ctx, path, "pw")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEncryptedSaveStore_Delete(t *testing.T) {
	s, path := newTestSaveStore(t)
	ctx := context.Background()

	require.NoError(t, s.Delete(ctx, path), "deleting a missing save is not an error")

	require.NoError(t, s.Save(ctx, path, testRecord(1), "pw"))
	require.NoError(t, s.Delete(ctx, path))

	_, err := s.Load(ctx, path, "pw")
	assert.ErrorIs(t, err, ErrSaveNotFound)
}
