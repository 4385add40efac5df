// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-save-keeper/internal/logger"
	"github.com/MKhiriev/go-save-keeper/internal/service"
	"github.com/MKhiriev/go-save-keeper/internal/utils"
	"github.com/MKhiriev/go-save-keeper/models"
)

// TUI runs the interactive shell over one [service.SaveKeeper].
type TUI struct {
	keeper    service.SaveKeeper
	board     service.Leaderboard
	backend   string
	caller    caller
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

// New creates the shell. timeout bounds each storage call; zero disables it.
func New(keeper service.SaveKeeper, backend string, timeout time.Duration, buildInfo models.AppBuildInfo, log *logger.Logger) *TUI {
	board, err := service.AsLeaderboard(keeper)
	if err != nil {
		log.Debug().Err(err).Str("backend", backend).Msg("leaderboard menu item is hidden")
	}

	return &TUI{
		keeper:  keeper,
		board:   board,
		backend: backend,
		caller: caller{
			timeout: timeout,
			logger:  log,
			ids:     utils.NewUUIDGenerator(),
		},
		buildInfo: buildInfo,
		logger:    log,
	}
}

// newRootModel builds the page set for one program run.
func (t *TUI) newRootModel(ctx context.Context) RootModel {
	s := &session{}

	pages := map[string]tea.Model{
		pageMenu:   NewMenuModel(ctx, t.keeper, t.board, s, t.caller),
		pageCreate: NewCredentialsModel(ctx, t.keeper, s, t.caller, modeCreateProfile),
		pageLogin:  NewCredentialsModel(ctx, t.keeper, s, t.caller, modeLogin),
	}
	if t.board != nil {
		pages[pageLeaderboard] = NewLeaderboardModel(ctx, t.board, t.caller)
	}

	return NewRootModel(pages, pageMenu, t.buildInfo, t.backend, t.logger)
}

// Run blocks until the player quits.
func (t *TUI) Run(ctx context.Context) error {
	_, err := tea.NewProgram(t.newRootModel(ctx), tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}
