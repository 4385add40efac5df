// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-save-keeper/models"
)

const (
	pageMenu        = "menu"
	pageCreate      = "create"
	pageLogin       = "login"
	pageLeaderboard = "leaderboard"
)

// NavigateTo asks [RootModel] to switch pages. A non-nil Payload is
// delivered to the new page instead of calling its Init.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// statusNotice is a one-line success message for the menu.
type statusNotice struct {
	text string
}

// errorNotice opens the error overlay.
type errorNotice struct {
	err error
}

// opResult is the outcome of a save, load or reset started from the menu.
type opResult struct {
	action menuAction
	record models.SaveRecord
	err    error
}

type credentialsResult struct {
	username string
	password string
	err      error
}

type leaderboardLoaded struct {
	rows []models.RemoteSave
	err  error
}

func navigate(page string, payload tea.Msg) tea.Cmd {
	return func() tea.Msg { return NavigateTo{Page: page, Payload: payload} }
}

func notifyError(err error) tea.Cmd {
	return func() tea.Msg { return errorNotice{err: err} }
}
