// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-stegano/internal/guard"
	"github.com/MKhiriev/go-stegano/internal/service"
	"github.com/MKhiriev/go-stegano/internal/validators"
	"github.com/MKhiriev/go-stegano/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	signupEmail = iota
	signupPassword
	signupConfirmation
)

// SignupModel is the /signup screen. The form is checked locally (all fields,
// matching passwords, minimum length) before the account is created; the new
// account is signed in right away.
type SignupModel struct {
	ctx       context.Context
	session   service.ClientSessionService
	validator validators.Validator

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

// NewSignupModel creates a [SignupModel] with the e-mail field focused.
func NewSignupModel(ctx context.Context, session service.ClientSessionService) *SignupModel {
	fields := make([]textinput.Model, 3)

	fields[signupEmail] = textinput.New()
	fields[signupEmail].Placeholder = "e-mail"
	fields[signupEmail].CharLimit = 254
	fields[signupEmail].Width = 40
	fields[signupEmail].Focus()

	fields[signupPassword] = textinput.New()
	fields[signupPassword].Placeholder = "password"
	fields[signupPassword].EchoMode = textinput.EchoPassword
	fields[signupPassword].EchoCharacter = '*'
	fields[signupPassword].Width = 40

	fields[signupConfirmation] = textinput.New()
	fields[signupConfirmation].Placeholder = "repeat password"
	fields[signupConfirmation].EchoMode = textinput.EchoPassword
	fields[signupConfirmation].EchoCharacter = '*'
	fields[signupConfirmation].Width = 40

	return &SignupModel{
		ctx:       ctx,
		session:   session,
		validator: validators.NewCredentialsValidator(),
		inputs:    fields,
	}
}

// Init implements [tea.Model].
func (m *SignupModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *SignupModel) reset() {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
	}
	m.submitting = false
	m.errMsg = ""
}

// Update implements [tea.Model]. esc and ctrl+n go back to the login screen.
func (m *SignupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(authResultMsg); ok {
		m.submitting = false
		m.errMsg = service.UserMessage(result.err)
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc), key.Matches(keyMsg, keys.signup):
			return m, navigate(guard.RouteLogin)
		case key.Matches(keyMsg, keys.tab):
			m.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			return m, m.submit()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *SignupModel) submit() tea.Cmd {
	if m.submitting {
		return nil
	}

	creds := models.Credentials{
		Email:                strings.TrimSpace(m.inputs[signupEmail].Value()),
		Password:             m.inputs[signupPassword].Value(),
		PasswordConfirmation: m.inputs[signupConfirmation].Value(),
	}
	if err := m.validator.Validate(m.ctx, creds, validators.SignupFields...); err != nil {
		m.errMsg = service.UserMessage(err)
		return nil
	}

	m.errMsg = ""
	m.submitting = true
	ctx, session := m.ctx, m.session

	return func() tea.Msg {
		return authResultMsg{err: session.Signup(ctx, creds.Email, creds.Password)}
	}
}

// View implements [tea.Model].
func (m *SignupModel) View() string {
	var b strings.Builder
	b.WriteString("Field    │ Value\n")
	b.WriteString("─────────┼────────────────────────────────────────────\n")
	b.WriteString("E-mail   │ [")
	b.WriteString(m.inputs[signupEmail].View())
	b.WriteString("]\n")
	b.WriteString("Password │ [")
	b.WriteString(m.inputs[signupPassword].View())
	b.WriteString("]\n")
	b.WriteString("Repeat   │ [")
	b.WriteString(m.inputs[signupConfirmation].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Creating account...]\n")
	} else {
		b.WriteString("\n[Sign up]\n")
	}
	b.WriteString(errorLine(m.errMsg))

	return renderPage("SIGN UP", strings.TrimRight(b.String(), "\n"),
		"tab: next field │ enter: sign up │ esc: back to log in")
}

func (m *SignupModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *SignupModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
