// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/sha256"
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

// passwordHasher is the private implementation of [PasswordHasher].
type passwordHasher struct {
	iterations int
}

// NewPasswordHasher constructs a [PasswordHasher] whose default work factor
// is iterations. Values below [MinIterations] are raised to the minimum.
func NewPasswordHasher(iterations int) PasswordHasher {
	if iterations < MinIterations {
		iterations = MinIterations
	}
	return &passwordHasher{iterations: iterations}
}

// Hash implements [PasswordHasher].
func (h *passwordHasher) Hash(password string, salt []byte, iterations int) (PasswordHash, error) {
	if iterations == 0 {
		iterations = h.iterations
	}
	if iterations < MinIterations {
		return PasswordHash{}, fmt.Errorf("hash password: %w (%d)", ErrIterationsTooLow, iterations)
	}

	if len(salt) == 0 {
		var err error
		salt, err = randomBytes(SaltSize)
		if err != nil {
			return PasswordHash{}, fmt.Errorf("hash password: %w", err)
		}
	}

	return PasswordHash{
		Digest:     pbkdf2.Key([]byte(password), salt, iterations, DigestSize, sha256.New),
		Salt:       salt,
		Iterations: iterations,
	}, nil
}

// Verify implements [PasswordHasher]. The stored iteration count is used as
// is, even when it is lower than the current default.
func (h *passwordHasher) Verify(password string, stored PasswordHash) bool {
	if len(stored.Digest) == 0 || len(stored.Salt) == 0 || stored.Iterations <= 0 {
		return false
	}

	candidate := pbkdf2.Key([]byte(password), stored.Salt, stored.Iterations, len(stored.Digest), sha256.New)
	return subtle.ConstantTimeCompare(candidate, stored.Digest) == 1
}
