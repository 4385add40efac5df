// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-save-keeper/internal/service"
)

type credentialsMode int

const (
	modeCreateProfile credentialsMode = iota
	modeLogin
)

// CredentialsModel is the username and password form used both to create a
// profile and to log in. On success the player is logged in and the menu
// is shown.
type CredentialsModel struct {
	ctx     context.Context
	keeper  service.SaveKeeper
	session *session
	caller  caller
	mode    credentialsMode

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

// NewCredentialsModel creates the form for mode with an empty username
// input and a masked password input.
func NewCredentialsModel(ctx context.Context, keeper service.SaveKeeper, s *session, c caller, mode credentialsMode) *CredentialsModel {
	m := &CredentialsModel{
		ctx:     ctx,
		keeper:  keeper,
		session: s,
		caller:  c,
		mode:    mode,
	}
	m.reset()
	return m
}

func (m *CredentialsModel) reset() {
	usernameInput := textinput.New()
	usernameInput.Placeholder = "имя игрока"
	usernameInput.CharLimit = 64
	usernameInput.Width = 40
	usernameInput.Focus()

	passwordInput := textinput.New()
	passwordInput.Placeholder = "пароль"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	m.inputs = []textinput.Model{usernameInput, passwordInput}
	m.focus = 0
	m.submitting = false
	m.errMsg = ""
}

// Init implements [tea.Model]. The form is cleared every time it is opened.
func (m *CredentialsModel) Init() tea.Cmd {
	m.reset()
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [credentialsResult]: on success logs the player in and opens the menu.
//   - esc: back to the menu.
//   - tab / shift+tab: moves focus between the inputs.
//   - enter: validates and submits the form.
//
// All other key events are forwarded to the focused input widget.
func (m *CredentialsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(credentialsResult); ok {
		m.submitting = false
		if result.err != nil {
			m.errMsg = service.KindOf(result.err).Message()
			return m, nil
		}

		m.session.login(result.username, result.password)
		return m, navigate(pageMenu, statusNotice{text: m.successText(result.username)})
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			return m, navigate(pageMenu, nil)
		case key.Matches(keyMsg, keys.tab):
			m.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.submitting {
				return m, nil
			}

			username := strings.TrimSpace(m.inputs[0].Value())
			password := m.inputs[1].Value()
			if username == "" || password == "" {
				m.errMsg = "Имя игрока и пароль обязательны"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdSubmit(username, password)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *CredentialsModel) cmdSubmit(username, password string) tea.Cmd {
	mode := m.mode
	return func() tea.Msg {
		ctx, cancel := m.caller.context(m.ctx, "credentials")
		defer cancel()

		var err error
		if mode == modeCreateProfile {
			err = m.keeper.CreateProfile(ctx, username, password)
		} else {
			err = m.keeper.VerifyCredential(ctx, username, password)
		}

		return credentialsResult{username: username, password: password, err: err}
	}
}

func (m *CredentialsModel) successText(username string) string {
	if m.mode == modeCreateProfile {
		return "Профиль " + username + " создан"
	}
	return "Добро пожаловать, " + username
}

func (m *CredentialsModel) title() string {
	if m.mode == modeCreateProfile {
		return "НОВЫЙ ПРОФИЛЬ"
	}
	return "ВХОД"
}

// View implements [tea.Model].
func (m *CredentialsModel) View() string {
	var b strings.Builder
	b.WriteString("Поле    │ Значение\n")
	b.WriteString("────────┼────────────────────────────────────────────\n")
	b.WriteString("Игрок   │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Пароль  │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")

	submit := "Войти"
	if m.mode == modeCreateProfile {
		submit = "Создать"
	}
	if m.submitting {
		submit += "..."
	}
	b.WriteString("\n[" + submit + "]\n")

	if m.errMsg != "" {
		b.WriteString("\nОшибка: ")
		b.WriteString(m.errMsg)
		b.WriteString("\n")
	}

	return renderPage(m.title(), strings.TrimRight(b.String(), "\n"), "esc: назад │ tab: след. поле │ enter: подтвердить")
}

func (m *CredentialsModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *CredentialsModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
