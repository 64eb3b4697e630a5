// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-stegano/internal/guard"
	"github.com/MKhiriev/go-stegano/internal/service"
	"github.com/MKhiriev/go-stegano/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	loginEmail = iota
	loginPassword
	loginGoogleToken
)

// LoginModel is the /login screen: e-mail and password, plus a field for a
// Google ID token used by federated sign-in. On success the session change
// moves the router to the workflow screen.
type LoginModel struct {
	ctx     context.Context
	session service.ClientSessionService

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

// NewLoginModel creates a [LoginModel] with the e-mail field focused.
func NewLoginModel(ctx context.Context, session service.ClientSessionService) *LoginModel {
	email := textinput.New()
	email.Placeholder = "e-mail"
	email.CharLimit = 254
	email.Width = 40
	email.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 256
	password.Width = 40
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'

	token := textinput.New()
	token.Placeholder = "paste a Google ID token (optional)"
	token.Width = 40
	token.EchoMode = textinput.EchoPassword
	token.EchoCharacter = '*'

	return &LoginModel{
		ctx:     ctx,
		session: session,
		inputs:  []textinput.Model{email, password, token},
	}
}

// Init implements [tea.Model].
func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

// reset clears secrets and messages when the screen is opened again.
func (m *LoginModel) reset() {
	m.inputs[loginPassword].SetValue("")
	m.inputs[loginGoogleToken].SetValue("")
	m.submitting = false
	m.errMsg = ""
}

// Update implements [tea.Model]. Handled messages:
//   - [authResultMsg]: clears the submitting state and shows the error.
//   - tab / shift+tab: move focus.
//   - enter: signs in with e-mail and password, or with the Google token when
//     the token field is focused.
//   - ctrl+g: signs in with the Google token.
//   - ctrl+n: opens the signup screen.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(authResultMsg); ok {
		m.submitting = false
		m.errMsg = service.UserMessage(result.err)
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.signup):
			return m, navigate(guard.RouteSignup)
		case key.Matches(keyMsg, keys.tab):
			m.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.federated):
			return m, m.submitFederated()
		case key.Matches(keyMsg, keys.enter):
			if m.focus == loginGoogleToken {
				return m, m.submitFederated()
			}
			return m, m.submitPassword()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *LoginModel) submitPassword() tea.Cmd {
	if m.submitting {
		return nil
	}
	m.errMsg = ""
	m.submitting = true

	ctx, session := m.ctx, m.session
	email := strings.TrimSpace(m.inputs[loginEmail].Value())
	password := m.inputs[loginPassword].Value()

	return func() tea.Msg {
		return authResultMsg{err: session.Login(ctx, email, password)}
	}
}

func (m *LoginModel) submitFederated() tea.Cmd {
	if m.submitting {
		return nil
	}
	m.errMsg = ""
	m.submitting = true

	ctx, session := m.ctx, m.session
	cred := models.FederatedCredential{
		Provider: models.ProviderGoogle,
		IDToken:  strings.TrimSpace(m.inputs[loginGoogleToken].Value()),
	}

	return func() tea.Msg {
		return authResultMsg{err: session.LoginWithFederatedProvider(ctx, cred)}
	}
}

// View implements [tea.Model].
func (m *LoginModel) View() string {
	var b strings.Builder
	b.WriteString("Field    │ Value\n")
	b.WriteString("─────────┼────────────────────────────────────────────\n")
	b.WriteString("E-mail   │ [")
	b.WriteString(m.inputs[loginEmail].View())
	b.WriteString("]\n")
	b.WriteString("Password │ [")
	b.WriteString(m.inputs[loginPassword].View())
	b.WriteString("]\n")
	b.WriteString("\nor sign in with Google\n")
	b.WriteString("ID token │ [")
	b.WriteString(m.inputs[loginGoogleToken].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Logging in...]\n")
	} else {
		b.WriteString("\n[Log in]\n")
	}
	b.WriteString(errorLine(m.errMsg))

	return renderPage("LOG IN", strings.TrimRight(b.String(), "\n"),
		"tab: next field │ enter: log in │ ctrl+g: Google │ ctrl+n: sign up")
}

func (m *LoginModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *LoginModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func navigate(route guard.Route) tea.Cmd {
	return func() tea.Msg { return NavigateTo{Route: route} }
}
