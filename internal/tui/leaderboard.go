// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-save-keeper/internal/service"
	"github.com/MKhiriev/go-save-keeper/models"
)

const leaderboardSize = 10

// LeaderboardModel shows the best remote saves.
type LeaderboardModel struct {
	ctx    context.Context
	board  service.Leaderboard
	caller caller

	rows    []models.RemoteSave
	loading bool
	errMsg  string
}

func NewLeaderboardModel(ctx context.Context, board service.Leaderboard, c caller) *LeaderboardModel {
	return &LeaderboardModel{ctx: ctx, board: board, caller: c}
}

func (m *LeaderboardModel) Init() tea.Cmd {
	m.loading = true
	m.errMsg = ""
	return m.cmdLoad()
}

func (m *LeaderboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case leaderboardLoaded:
		m.loading = false
		if msg.err != nil {
			m.errMsg = service.KindOf(msg.err).Message()
			return m, nil
		}
		m.rows = msg.rows
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m, navigate(pageMenu, nil)
		case key.Matches(msg, keys.reload):
			if !m.loading {
				return m, m.Init()
			}
		}
	}

	return m, nil
}

func (m *LeaderboardModel) cmdLoad() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.caller.context(m.ctx, "leaderboard")
		defer cancel()

		rows, err := m.board.TopN(ctx, leaderboardSize)
		return leaderboardLoaded{rows: rows, err: err}
	}
}

func (m *LeaderboardModel) View() string {
	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString("Загрузка...")
	case m.errMsg != "":
		b.WriteString("Ошибка: ")
		b.WriteString(m.errMsg)
	case len(m.rows) == 0:
		b.WriteString("Пока нет ни одного сохранения")
	default:
		b.WriteString(fmt.Sprintf("%-3s │ %-20s │ %7s │ %s\n", "#", "Игрок", "Очки", "Сохранено"))
		b.WriteString("────┼──────────────────────┼─────────┼────────────────────\n")
		for i, row := range m.rows {
			b.WriteString(fmt.Sprintf("%-3d │ %-20s │ %7d │ %s\n",
				i+1, fitText(row.Username, 20), row.Score, formatTimestamp(row.LastSaveTimestamp)))
		}
	}

	return renderPage("ТАБЛИЦА ЛИДЕРОВ", strings.TrimRight(b.String(), "\n"), "esc: назад │ r: обновить")
}
