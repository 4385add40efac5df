// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-save-keeper/internal/service"
	"github.com/MKhiriev/go-save-keeper/models"
)

type menuAction int

const (
	actionCreateProfile menuAction = iota
	actionLogin
	actionPlay
	actionSave
	actionLoad
	actionLeaderboard
	actionReset
	actionLogout
	actionQuit
)

var menuLabels = map[menuAction]string{
	actionCreateProfile: "Создать профиль",
	actionLogin:         "Войти",
	actionPlay:          fmt.Sprintf("Играть (+%d очков)", models.PlayPoints),
	actionSave:          "Сохранить игру",
	actionLoad:          "Загрузить игру",
	actionLeaderboard:   "Таблица лидеров",
	actionReset:         "Сбросить профиль",
	actionLogout:        "Выйти из профиля",
	actionQuit:          "Выход",
}

// MenuModel is the main screen. It shows the game in progress and runs the
// save, load and reset actions itself; profile forms and the leaderboard
// are separate pages.
type MenuModel struct {
	ctx     context.Context
	keeper  service.SaveKeeper
	board   service.Leaderboard
	session *session
	caller  caller

	idx          int
	busy         bool
	confirmReset bool
	status       string
}

// NewMenuModel creates the menu. board may be nil when the storage backend
// has no leaderboard.
func NewMenuModel(ctx context.Context, keeper service.SaveKeeper, board service.Leaderboard, s *session, c caller) *MenuModel {
	return &MenuModel{
		ctx:     ctx,
		keeper:  keeper,
		board:   board,
		session: s,
		caller:  c,
	}
}

func (m *MenuModel) Init() tea.Cmd {
	m.clampIdx()
	return nil
}

func (m *MenuModel) actions() []menuAction {
	var actions []menuAction
	if m.session.loggedIn() {
		actions = []menuAction{actionPlay, actionSave, actionLoad}
	} else {
		actions = []menuAction{actionCreateProfile, actionLogin}
	}

	if m.board != nil {
		actions = append(actions, actionLeaderboard)
	}

	if m.session.loggedIn() {
		actions = append(actions, actionReset, actionLogout)
	}
	return append(actions, actionQuit)
}

func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case statusNotice:
		m.status = msg.text
		m.clampIdx()
		return m, nil

	case opResult:
		m.busy = false
		if msg.err != nil {
			m.status = ""
			return m, notifyError(msg.err)
		}
		m.applyResult(msg)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.confirmReset {
		switch {
		case key.Matches(msg, keys.yes):
			m.confirmReset = false
			m.busy = true
			return m, m.cmdReset()
		case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
			m.confirmReset = false
		}
		return m, nil
	}

	if m.busy {
		return m, nil
	}

	actions := m.actions()
	switch {
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(actions)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.enter):
		return m.run(actions[m.idx])
	}

	return m, nil
}

func (m *MenuModel) run(action menuAction) (tea.Model, tea.Cmd) {
	m.status = ""

	switch action {
	case actionCreateProfile:
		return m, navigate(pageCreate, nil)
	case actionLogin:
		return m, navigate(pageLogin, nil)
	case actionLeaderboard:
		return m, navigate(pageLeaderboard, nil)
	case actionPlay:
		m.session.record = m.session.record.Play()
		m.status = fmt.Sprintf("+%d очков", models.PlayPoints)
	case actionSave:
		m.busy = true
		return m, m.cmdSave()
	case actionLoad:
		m.busy = true
		return m, m.cmdLoad()
	case actionReset:
		m.confirmReset = true
	case actionLogout:
		m.session.logout()
		m.idx = 0
		m.status = "Вы вышли из профиля"
	case actionQuit:
		return m, tea.Quit
	}

	return m, nil
}

func (m *MenuModel) applyResult(msg opResult) {
	switch msg.action {
	case actionSave:
		m.session.record = msg.record
		m.status = "Игра сохранена"
	case actionLoad:
		m.session.record = msg.record
		m.status = "Игра загружена"
	case actionReset:
		m.session.logout()
		m.idx = 0
		m.status = "Профиль удалён"
	}
}

func (m *MenuModel) cmdSave() tea.Cmd {
	s := *m.session
	return func() tea.Msg {
		ctx, cancel := m.caller.context(m.ctx, "save")
		defer cancel()

		record, err := m.keeper.SaveGame(ctx, s.username, s.password, s.record)
		return opResult{action: actionSave, record: record, err: err}
	}
}

func (m *MenuModel) cmdLoad() tea.Cmd {
	s := *m.session
	return func() tea.Msg {
		ctx, cancel := m.caller.context(m.ctx, "load")
		defer cancel()

		record, err := m.keeper.LoadGame(ctx, s.username, s.password)
		return opResult{action: actionLoad, record: record, err: err}
	}
}

func (m *MenuModel) cmdReset() tea.Cmd {
	s := *m.session
	return func() tea.Msg {
		ctx, cancel := m.caller.context(m.ctx, "reset")
		defer cancel()

		return opResult{action: actionReset, err: m.keeper.ResetProfile(ctx, s.username, s.password)}
	}
}

func (m *MenuModel) clampIdx() {
	if n := len(m.actions()); m.idx >= n {
		m.idx = n - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m *MenuModel) View() string {
	var b strings.Builder

	if m.session.loggedIn() {
		r := m.session.record
		b.WriteString(fmt.Sprintf("Игрок: %s │ Уровень: %d │ Очки: %d\n", r.PlayerName, r.Level, r.Score))
		b.WriteString(fmt.Sprintf("Последнее сохранение: %s\n\n", formatTimestamp(r.LastSaveTimestamp)))
	} else {
		b.WriteString("Вход не выполнен\n\n")
	}

	if m.status != "" {
		b.WriteString(statusStyle.Render("OK: " + m.status))
		b.WriteString("\n\n")
	}

	actions := m.actions()
	idColWidth := lipgloss.Width(fmt.Sprintf("%d", len(actions))) + 2
	actionColWidth := lipgloss.Width("Действие")
	for _, a := range actions {
		if w := lipgloss.Width(menuLabels[a]); w > actionColWidth {
			actionColWidth = w
		}
	}

	b.WriteString(fmt.Sprintf("%-*s │ %s\n", idColWidth, "ID", "Действие"))
	b.WriteString(strings.Repeat("─", idColWidth))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", actionColWidth))
	b.WriteString("\n")

	for i, a := range actions {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}
		idCell := fmt.Sprintf("%s %d", cursor, i+1)
		b.WriteString(fmt.Sprintf("%-*s │ %s\n", idColWidth, idCell, menuLabels[a]))
	}

	switch {
	case m.confirmReset:
		b.WriteString("\nУдалить профиль и сохранение? (y/n)\n")
	case m.busy:
		b.WriteString("\nПодождите...\n")
	}

	return renderPage("ГЛАВНОЕ МЕНЮ", strings.TrimRight(b.String(), "\n"), "enter: выбрать │ ↑/↓: навигация │ v: версия")
}
