// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"strings"
	"time"
)

// DefaultPlayerName is used when a player leaves the name blank.
const DefaultPlayerName = "Player"

// PlayPoints is the score awarded by a single "play" action.
const PlayPoints = 10

// Validation errors returned by [SaveRecord.Validate].
var (
	ErrEmptyPlayerName = errors.New("player name is empty")
	ErrInvalidLevel    = errors.New("level must be at least 1")
	ErrNegativeScore   = errors.New("score must not be negative")
)

// SaveRecord is the player's progress snapshot. It is the plaintext that the
// local backend encrypts and the value every backend hands back on load.
type SaveRecord struct {
	PlayerName        string    `json:"playerName"`
	Level             int       `json:"level"`
	Score             int       `json:"score"`
	LastSaveTimestamp time.Time `json:"lastSaveUtc"`
}

// NewSaveRecord returns a fresh record for name with level 1 and zero score.
func NewSaveRecord(name string) SaveRecord {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultPlayerName
	}

	return SaveRecord{
		PlayerName:        name,
		Level:             1,
		Score:             0,
		LastSaveTimestamp: Now(),
	}
}

// Validate reports the first invalid field, if any.
func (s SaveRecord) Validate() error {
	if strings.TrimSpace(s.PlayerName) == "" {
		return ErrEmptyPlayerName
	}
	if s.Level < 1 {
		return ErrInvalidLevel
	}
	if s.Score < 0 {
		return ErrNegativeScore
	}
	return nil
}

// Play returns a copy of the record with [PlayPoints] added to the score.
func (s SaveRecord) Play() SaveRecord {
	s.Score += PlayPoints
	return s
}

// Now returns the current time normalised with [Timestamp].
func Now() time.Time {
	return Timestamp(time.Now())
}

// Timestamp converts t to UTC and truncates it to milliseconds, the
// precision every backend (BSON datetime included) can hold.
func Timestamp(t time.Time) time.Time {
	return t.UTC().Truncate(time.Millisecond)
}
