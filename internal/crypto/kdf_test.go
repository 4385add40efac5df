// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"testing"
)

func TestKeyDeriver_DeterministicForSameInputs(t *testing.T) {
	kdf := NewKeyDeriver(MinIterations)
	salt := bytes.Repeat([]byte{0xAB}, SaltSize)

	k1, err := kdf.DeriveKey("correct horse battery staple", salt)
	if err != nil {
		t.Fatalf("DeriveKey error: %v", err)
	}
	k2, err := kdf.DeriveKey("correct horse battery staple", salt)
	if err != nil {
		t.Fatalf("DeriveKey error: %v", err)
	}

	if len(k1) != KeySize {
		t.Fatalf("key length = %d, want %d", len(k1), KeySize)
	}
	if !bytes.Equal(k1, k2) {
		t.Fatal("expected identical keys for identical inputs")
	}
}

func TestKeyDeriver_DifferentSaltProducesDifferentKey(t *testing.T) {
	kdf := NewKeyDeriver(MinIterations)

	k1, _ := kdf.DeriveKey("pw", bytes.Repeat([]byte{0x01}, SaltSize))
	k2, _ := kdf.DeriveKey("pw", bytes.Repeat([]byte{0x02}, SaltSize))

	if bytes.Equal(k1, k2) {
		t.Fatal("expected different keys for different salts")
	}
}

func TestKeyDeriver_SeparateFromPasswordDigest(t *testing.T) {
	kdf := NewKeyDeriver(MinIterations + 1)
	h := NewPasswordHasher(MinIterations)
	salt := bytes.Repeat([]byte{0x07}, SaltSize)

	key, err := kdf.DeriveKey("pw", salt)
	if err != nil {
		t.Fatalf("DeriveKey error: %v", err)
	}
	digest, err := h.Hash("pw", salt, 0)
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}

	if bytes.Equal(key, digest.Digest) {
		t.Fatal("expected encryption key to differ from the password digest")
	}
}

func TestKeyDeriver_NewSalt(t *testing.T) {
	kdf := NewKeyDeriver(MinIterations)

	s1, err := kdf.NewSalt()
	if err != nil {
		t.Fatalf("NewSalt error: %v", err)
	}
	s2, err := kdf.NewSalt()
	if err != nil {
		t.Fatalf("NewSalt error: %v", err)
	}

	if len(s1) != SaltSize {
		t.Fatalf("salt length = %d, want %d", len(s1), SaltSize)
	}
	if bytes.Equal(s1, s2) {
		t.Fatal("expected salts to differ")
	}
}

func TestKeyDeriver_EmptySalt(t *testing.T) {
	if _, err := NewKeyDeriver(MinIterations).DeriveKey("pw", nil); err == nil {
		t.Fatal("expected error for empty salt")
	}
}
