// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-save-keeper/internal/logger"
	"github.com/MKhiriev/go-save-keeper/models"
)

// RootModel is a TUI router:
// 1) keeps active page
// 2) handles global Ctrl+C quit
// 3) handles NavigateTo messages
// 4) shows the error overlay on top of any page
// 5) delegates all other messages to the active page
type RootModel struct {
	pages   map[string]tea.Model
	current tea.Model

	buildInfo models.AppBuildInfo
	backend   string
	logger    *logger.Logger

	showBuildInfo bool
	showError     bool
	errorOverlay  errorOverlayModel
}

// NewRootModel registers all pages and opens startPage.
func NewRootModel(pages map[string]tea.Model, startPage string, buildInfo models.AppBuildInfo, backend string, log *logger.Logger) RootModel {
	return RootModel{
		pages:     pages,
		current:   pages[startPage],
		buildInfo: buildInfo,
		backend:   backend,
		logger:    log,
	}
}

func (r RootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Global hotkeys for every page.
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "ctrl+c" {
			return r, tea.Quit
		}

		if r.showError {
			if key.Matches(keyMsg, keys.enter) || key.Matches(keyMsg, keys.esc) {
				r.showError = false
				r.errorOverlay = errorOverlayModel{}
			}
			return r, nil
		}

		if r.showBuildInfo {
			if key.Matches(keyMsg, keys.esc) || key.Matches(keyMsg, keys.version) {
				r.showBuildInfo = false
			}
			return r, nil
		}

		if key.Matches(keyMsg, keys.version) && r.isMenuPage() {
			r.showBuildInfo = true
			return r, nil
		}
	}

	switch msg := msg.(type) {
	case errorNotice:
		r.logger.Err(msg.err).Str("func", "RootModel.Update").Msg("operation failed")
		r.showError = true
		r.errorOverlay = newErrorOverlay(msg.err)
		return r, nil

	case NavigateTo:
		next, exists := r.pages[msg.Page]
		if !exists {
			return r, nil
		}

		r.showBuildInfo = false
		r.current = next

		if msg.Payload != nil {
			payload := msg.Payload
			return r, tea.Batch(r.current.Init(), func() tea.Msg { return payload })
		}
		return r, r.current.Init()
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	return r, cmd
}

func (r RootModel) View() string {
	if r.showError {
		return r.errorOverlay.View()
	}
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo, r.backend)
	}
	if r.current == nil {
		return renderPage("TUI", "", "")
	}
	return r.current.View()
}

func (r RootModel) isMenuPage() bool {
	_, ok := r.current.(*MenuModel)
	return ok
}
