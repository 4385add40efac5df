// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils holds small helpers shared by the storage and UI layers.
package utils

import "github.com/google/uuid"

// IDGenerator hands out unique string identifiers.
type IDGenerator interface {
	Generate() string
}

// UUIDGenerator generates UUIDv7 strings. Version 7 ids sort by creation
// time, which keeps SQL primary keys roughly insertion-ordered and makes
// them usable as the final tie-breaker of the leaderboard.
type UUIDGenerator struct{}

// NewUUIDGenerator constructs a [UUIDGenerator].
func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a new UUIDv7, falling back to a random UUIDv4 if the
// clock-based generator fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
