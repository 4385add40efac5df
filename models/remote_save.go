// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// RemoteSave is the per-player record kept by the remote backends.
// There is at most one RemoteSave per username.
type RemoteSave struct {
	ID                string    `json:"id"`
	Username          string    `json:"username"`
	Score             int       `json:"score"`
	LastSaveTimestamp time.Time `json:"lastSaveUtc"`
}

// SaveRecord converts the remote save to the shared [SaveRecord] shape.
// Remote backends do not keep the level, so it is reported as 1.
func (r RemoteSave) SaveRecord() SaveRecord {
	return SaveRecord{
		PlayerName:        r.Username,
		Level:             1,
		Score:             r.Score,
		LastSaveTimestamp: Timestamp(r.LastSaveTimestamp),
	}
}
