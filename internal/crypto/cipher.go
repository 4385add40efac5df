// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
)

// aesGCM is the private implementation of [Cipher].
type aesGCM struct{}

// NewCipher constructs an AES-256-GCM [Cipher] without associated data.
func NewCipher() Cipher {
	return &aesGCM{}
}

// Encrypt implements [Cipher]. GCM appends the tag to the ciphertext; it is
// split off here so it can be stored in its own field.
func (c *aesGCM) Encrypt(key, plaintext []byte) (Sealed, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return Sealed{}, fmt.Errorf("encrypt data: %w", err)
	}

	nonce, err := randomBytes(NonceSize)
	if err != nil {
		return Sealed{}, fmt.Errorf("encrypt data: %w", err)
	}

	out := gcm.Seal(nil, nonce, plaintext, nil)
	split := len(out) - TagSize

	return Sealed{
		Nonce:      nonce,
		Ciphertext: out[:split:split],
		Tag:        out[split:],
	}, nil
}

// Decrypt implements [Cipher].
func (c *aesGCM) Decrypt(key []byte, sealed Sealed) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, fmt.Errorf("decrypt data: %w", err)
	}

	if len(sealed.Nonce) != NonceSize || len(sealed.Tag) != TagSize {
		return nil, ErrAuthenticationFailed
	}

	combined := make([]byte, 0, len(sealed.Ciphertext)+TagSize)
	combined = append(combined, sealed.Ciphertext...)
	combined = append(combined, sealed.Tag...)

	plaintext, err := gcm.Open(nil, sealed.Nonce, combined, nil)
	if err != nil {
		return nil, ErrAuthenticationFailed
	}

	return plaintext, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidKeyLength, len(key), KeySize)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	return cipher.NewGCM(block)
}
