// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/sha256"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

// keyDeriver is the private implementation of [KeyDeriver].
//
// Encrypted envelopes do not record the work factor, so every file written
// by one deployment must be read back with the same iterations value.
type keyDeriver struct {
	iterations int
}

// NewKeyDeriver constructs a [KeyDeriver] using PBKDF2-HMAC-SHA256 with the
// given work factor. Values below [MinIterations] are raised to the minimum.
func NewKeyDeriver(iterations int) KeyDeriver {
	if iterations < MinIterations {
		iterations = MinIterations
	}
	return &keyDeriver{iterations: iterations}
}

// NewSalt implements [KeyDeriver].
func (k *keyDeriver) NewSalt() ([]byte, error) {
	return randomBytes(SaltSize)
}

// DeriveKey implements [KeyDeriver].
func (k *keyDeriver) DeriveKey(password string, salt []byte) ([]byte, error) {
	if len(salt) == 0 {
		return nil, fmt.Errorf("derive key: empty salt")
	}
	return pbkdf2.Key([]byte(password), salt, k.iterations, KeySize, sha256.New), nil
}
