// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-save-keeper/internal/store"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{"nil", nil, KindNone},
		{"save not found", fmt.Errorf("load: %w", store.ErrSaveNotFound), KindNotFound},
		{"wrong password or corrupt", store.ErrWrongPasswordOrCorrupt, KindWrongPasswordOrCorrupt},
		{"wrong password", ErrWrongPassword, KindWrongPassword},
		{"profile not found", store.ErrProfileNotFound, KindProfileNotFound},
		{"duplicate", fmt.Errorf("create: %w", store.ErrDuplicateUsername), KindDuplicateUsername},
		{"store unavailable", fmt.Errorf("%w: dial tcp", store.ErrStoreUnavailable), KindStoreUnavailable},
		{"deadline", fmt.Errorf("find: %w", context.DeadlineExceeded), KindStoreUnavailable},
		{"io", store.ErrIO, KindIO},
		{"invalid input", ErrInvalidDataProvided, KindInvalidInput},
		{"invalid username", store.ErrInvalidUsername, KindInvalidInput},
		{"unsupported", ErrLeaderboardUnsupported, KindUnsupported},
		{"anything else", errors.New("boom"), KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestErrorKind_MessageHidesDriverText(t *testing.T) {
	err := fmt.Errorf("%w: connection refused to 10.0.0.5:27017", store.ErrStoreUnavailable)

	msg := KindOf(err).Message()
	assert.NotEmpty(t, msg)
	assert.NotContains(t, msg, "10.0.0.5")

	for k := KindNone; k <= KindInternal; k++ {
		assert.NotEqual(t, "Unknown", k.String())
		if k != KindNone {
			assert.NotEmpty(t, k.Message())
		}
	}
}
