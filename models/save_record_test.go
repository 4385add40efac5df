// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSaveRecord_Defaults(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantName string
	}{
		{name: "named player", input: "alice", wantName: "alice"},
		{name: "trimmed name", input: "  bob  ", wantName: "bob"},
		{name: "blank name falls back", input: "   ", wantName: DefaultPlayerName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := NewSaveRecord(tt.input)

			assert.Equal(t, tt.wantName, rec.PlayerName)
			assert.Equal(t, 1, rec.Level)
			assert.Equal(t, 0, rec.Score)
			assert.Equal(t, time.UTC, rec.LastSaveTimestamp.Location())
			require.NoError(t, rec.Validate())
		})
	}
}

func TestSaveRecord_Validate(t *testing.T) {
	tests := []struct {
		name    string
		record  SaveRecord
		wantErr error
	}{
		{name: "valid", record: SaveRecord{PlayerName: "p", Level: 1}, wantErr: nil},
		{name: "empty name", record: SaveRecord{PlayerName: " ", Level: 1}, wantErr: ErrEmptyPlayerName},
		{name: "zero level", record: SaveRecord{PlayerName: "p", Level: 0}, wantErr: ErrInvalidLevel},
		{name: "negative score", record: SaveRecord{PlayerName: "p", Level: 3, Score: -1}, wantErr: ErrNegativeScore},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.record.Validate(), tt.wantErr)
		})
	}
}

func TestSaveRecord_Play(t *testing.T) {
	rec := SaveRecord{PlayerName: "p", Level: 1, Score: 5}

	played := rec.Play().Play()

	assert.Equal(t, 25, played.Score)
	assert.Equal(t, 5, rec.Score, "Play must not mutate the receiver")
}

func TestTimestamp_UTCMilliseconds(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	in := time.Date(2026, 3, 1, 12, 30, 15, 123456789, loc)

	got := Timestamp(in)

	assert.Equal(t, time.UTC, got.Location())
	assert.Equal(t, 123000000, got.Nanosecond())
	assert.True(t, got.Equal(in.Truncate(time.Millisecond)))
}

func TestRemoteSave_SaveRecord(t *testing.T) {
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	rs := RemoteSave{ID: "x", Username: "alice", Score: 200, LastSaveTimestamp: at}

	rec := rs.SaveRecord()

	assert.Equal(t, SaveRecord{PlayerName: "alice", Level: 1, Score: 200, LastSaveTimestamp: at}, rec)
}
