// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrAuthenticationFailed is returned by [Cipher.Decrypt] when the tag does
	// not verify. It does not say whether the key or the data was wrong.
	ErrAuthenticationFailed = errors.New("message authentication failed")

	// ErrInvalidKeyLength is returned when a key is not exactly [KeySize] bytes.
	ErrInvalidKeyLength = errors.New("invalid key length")

	// ErrIterationsTooLow is returned when an explicit work factor is below
	// [MinIterations].
	ErrIterationsTooLow = errors.New("iteration count is below minimum")

	// ErrRandomSource is returned when the OS CSPRNG cannot be read.
	ErrRandomSource = errors.New("random source failure")
)
