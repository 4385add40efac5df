// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

// Sizes and work factors shared by every primitive in this package.
const (
	SaltSize   = 16
	KeySize    = 32
	DigestSize = 32
	NonceSize  = 12
	TagSize    = 16

	// MinIterations is the lowest PBKDF2 work factor accepted for new
	// digests and keys.
	MinIterations = 100_000
)

// PasswordHash is the output of [PasswordHasher.Hash] and the input of
// [PasswordHasher.Verify].
type PasswordHash struct {
	Digest     []byte
	Salt       []byte
	Iterations int
}

// Sealed is an AES-GCM ciphertext with its nonce and detached tag.
type Sealed struct {
	Nonce      []byte
	Ciphertext []byte
	Tag        []byte
}
