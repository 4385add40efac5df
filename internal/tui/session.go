// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/MKhiriev/go-save-keeper/models"

// session is the logged-in player and the game in progress. It is shared by
// all pages of one program run and lives only in memory.
type session struct {
	username string
	password string
	record   models.SaveRecord
}

func (s *session) loggedIn() bool {
	return s.username != ""
}

// login starts a fresh game for username. The password is kept because every
// save and load needs it.
func (s *session) login(username, password string) {
	s.username = username
	s.password = password
	s.record = models.NewSaveRecord(username)
}

func (s *session) logout() {
	*s = session{}
}
