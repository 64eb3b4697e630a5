// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-stegano/internal/app"
	"github.com/MKhiriev/go-stegano/internal/service"
	"github.com/MKhiriev/go-stegano/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Form rows: the text field, then one path per media kind.
const (
	fieldText = iota
	fieldImage
	fieldVideo
	fieldAudio
	fieldCount
)

const refWidth = 48

// draftForm holds the inputs of one sub-workflow.
type draftForm struct {
	inputs    [fieldCount]textinput.Model
	summaries [fieldCount]string
	focus     int
}

func newDraftForm(mode models.Mode) *draftForm {
	placeholders := [fieldCount]string{"message to hide", "cover PNG image path", "cover video path", "cover WAV audio path"}
	if mode == models.ModeDecode {
		placeholders = [fieldCount]string{"ciphertext", "encoded PNG image path", "encoded video path", "encoded WAV audio path"}
	}

	f := &draftForm{}
	for i := range f.inputs {
		f.inputs[i] = textinput.New()
		f.inputs[i].Placeholder = placeholders[i]
		f.inputs[i].Width = 50
	}
	f.inputs[fieldText].CharLimit = 0
	return f
}

func (f *draftForm) focusNext() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + 1) % fieldCount
	f.inputs[f.focus].Focus()
}

func (f *draftForm) focusPrev() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus - 1 + fieldCount) % fieldCount
	f.inputs[f.focus].Focus()
}

func (f *draftForm) setText(v string) {
	f.inputs[fieldText].SetValue(v)
}

func (f *draftForm) setFile(kind models.MediaKind, path string) {
	field := fieldImage + int(kind)
	f.inputs[field].SetValue(path)
	f.summaries[field] = fileSummary(path)
}

// media opens the selected files. An empty path leaves the file absent so
// that the controller reports it as missing.
func (f *draftForm) media() (models.MediaSet, error) {
	var set models.MediaSet
	for _, kind := range models.MediaKinds {
		path := strings.TrimSpace(f.inputs[fieldImage+int(kind)].Value())
		if path == "" {
			continue
		}
		file, err := models.OpenMediaFile(path)
		if err != nil {
			return models.MediaSet{}, fmt.Errorf("cannot use %s file: %w", kind, err)
		}
		set = set.With(kind, file)
	}
	return set, nil
}

// WorkflowModel is the protected / screen: the encrypt and decrypt forms,
// their results and the artifact actions.
type WorkflowModel struct {
	ctx      context.Context
	session  service.ClientSessionService
	workflow service.ClientWorkflowService

	email    string
	mode     models.Mode
	forms    [2]*draftForm
	snapshot models.WorkflowSnapshot

	lastCiphertext string
	status         string
	localErr       string
	spinner        spinner.Model

	writeClipboard func(string) error
}

// NewWorkflowModel creates the workflow screen in encrypt mode.
func NewWorkflowModel(ctx context.Context, session service.ClientSessionService, workflow service.ClientWorkflowService) *WorkflowModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	m := &WorkflowModel{
		ctx:            ctx,
		session:        session,
		workflow:       workflow,
		mode:           models.ModeEncode,
		forms:          [2]*draftForm{newDraftForm(models.ModeEncode), newDraftForm(models.ModeDecode)},
		spinner:        s,
		writeClipboard: clipboard.WriteAll,
	}
	m.forms[models.ModeEncode].inputs[fieldText].Focus()
	return m
}

// Init implements [tea.Model].
func (m *WorkflowModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *WorkflowModel) reset() {
	m.status = ""
	m.localErr = ""
}

func (m *WorkflowModel) setEmail(email string) {
	m.email = email
}

func (m *WorkflowModel) form() *draftForm {
	return m.forms[m.mode]
}

// applySnapshot takes the controller state. A new ciphertext is copied into
// the decrypt form.
func (m *WorkflowModel) applySnapshot(snapshot models.WorkflowSnapshot) tea.Cmd {
	wasBusy := m.snapshot.EncryptInFlight || m.snapshot.DecryptInFlight
	m.snapshot = snapshot

	if snapshot.Encrypt != nil && snapshot.Encrypt.Ciphertext != m.lastCiphertext {
		m.lastCiphertext = snapshot.Encrypt.Ciphertext
		m.forms[models.ModeDecode].setText(snapshot.Encrypt.Ciphertext)
	}

	if !wasBusy && (snapshot.EncryptInFlight || snapshot.DecryptInFlight) {
		return m.spinner.Tick
	}
	return nil
}

// Update implements [tea.Model]. Handled keys:
//   - ctrl+t: switch between encrypt and decrypt.
//   - tab / shift+tab: move focus.
//   - enter: submit the current form.
//   - ctrl+y: copy the ciphertext or the recovered message.
//   - alt+1, alt+2, alt+3: save the encoded image, video or audio.
//   - ctrl+l: log out.
func (m *WorkflowModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case workflowChangedMsg:
		return m, m.applySnapshot(msg.snapshot)
	case submitDoneMsg:
		// the outcome arrives with the next snapshot
		return m, nil
	case downloadDoneMsg:
		if msg.err != nil {
			m.localErr = fmt.Sprintf("Failed to save the encoded %s: %s", msg.kind, service.UserMessage(msg.err))
			return m, nil
		}
		m.forms[models.ModeDecode].setFile(msg.kind, msg.path)
		m.status = "Saved " + msg.path
		return m, clearStatusLater()
	case copiedMsg:
		if msg.err != nil {
			m.localErr = "Failed to copy: " + msg.err.Error()
			return m, nil
		}
		m.status = app.MsgCopied
		return m, clearStatusLater()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case logoutDoneMsg:
		if msg.err != nil {
			m.localErr = service.UserMessage(msg.err)
		}
		return m, nil
	case spinner.TickMsg:
		if !m.snapshot.EncryptInFlight && !m.snapshot.DecryptInFlight {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.mode):
			m.switchMode()
			return m, nil
		case key.Matches(msg, keys.tab):
			m.form().focusNext()
			return m, nil
		case key.Matches(msg, keys.backtab):
			m.form().focusPrev()
			return m, nil
		case key.Matches(msg, keys.enter):
			return m, m.submit()
		case key.Matches(msg, keys.copy):
			return m, m.copyResult()
		case key.Matches(msg, keys.saveImage):
			return m, m.download(models.MediaImage)
		case key.Matches(msg, keys.saveVideo):
			return m, m.download(models.MediaVideo)
		case key.Matches(msg, keys.saveAudio):
			return m, m.download(models.MediaAudio)
		case key.Matches(msg, keys.logout):
			return m, m.logout()
		}
	}

	f := m.form()
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	if f.focus != fieldText {
		f.summaries[f.focus] = fileSummary(f.inputs[f.focus].Value())
	}
	return m, cmd
}

func (m *WorkflowModel) switchMode() {
	m.form().inputs[m.form().focus].Blur()
	if m.mode == models.ModeEncode {
		m.mode = models.ModeDecode
	} else {
		m.mode = models.ModeEncode
	}
	m.form().inputs[m.form().focus].Focus()
	m.localErr = ""
}

func (m *WorkflowModel) submit() tea.Cmd {
	// the submit control is disabled while the request is outstanding
	if m.snapshot.InFlight(m.mode) {
		return nil
	}
	m.localErr = ""

	f := m.form()
	media, err := f.media()
	if err != nil {
		m.localErr = err.Error()
		return nil
	}

	ctx, workflow, mode := m.ctx, m.workflow, m.mode
	text := f.inputs[fieldText].Value()

	return func() tea.Msg {
		if mode == models.ModeDecode {
			err := workflow.SubmitDecrypt(ctx, models.DecryptDraft{Ciphertext: strings.TrimSpace(text), Media: media})
			return submitDoneMsg{mode: mode, err: err}
		}
		err := workflow.SubmitEncrypt(ctx, models.EncryptDraft{Message: text, Media: media})
		return submitDoneMsg{mode: mode, err: err}
	}
}

func (m *WorkflowModel) copyResult() tea.Cmd {
	var text string
	switch {
	case m.mode == models.ModeEncode && m.snapshot.Encrypt != nil:
		text = m.snapshot.Encrypt.Ciphertext
	case m.mode == models.ModeDecode && m.snapshot.Decrypt != nil:
		text = m.snapshot.Decrypt.RecoveredMessage
	default:
		return nil
	}

	write := m.writeClipboard
	return func() tea.Msg {
		return copiedMsg{err: write(text)}
	}
}

func (m *WorkflowModel) download(kind models.MediaKind) tea.Cmd {
	if m.snapshot.Encrypt == nil {
		return nil
	}

	ctx, workflow := m.ctx, m.workflow
	return func() tea.Msg {
		path, err := workflow.DownloadArtifact(ctx, kind, "")
		return downloadDoneMsg{kind: kind, path: path, err: err}
	}
}

func (m *WorkflowModel) logout() tea.Cmd {
	ctx, session := m.ctx, m.session
	return func() tea.Msg {
		return logoutDoneMsg{err: session.Logout(ctx)}
	}
}

func clearStatusLater() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

// View implements [tea.Model].
func (m *WorkflowModel) View() string {
	var b strings.Builder

	encryptTab, decryptTab := activeTabStyle, tabStyle
	if m.mode == models.ModeDecode {
		encryptTab, decryptTab = tabStyle, activeTabStyle
	}
	b.WriteString(encryptTab.Render("Encrypt"))
	b.WriteString("   ")
	b.WriteString(decryptTab.Render("Decrypt"))
	b.WriteString("\n\n")

	labels := [fieldCount]string{"Message", "Image", "Video", "Audio"}
	if m.mode == models.ModeDecode {
		labels[fieldText] = "Ciphertext"
	}

	f := m.form()
	for i := range f.inputs {
		b.WriteString(fmt.Sprintf("%-10s │ [%s]", labels[i], f.inputs[i].View()))
		if f.summaries[i] != "" {
			b.WriteString("  ")
			b.WriteString(helpStyle.Render(f.summaries[i]))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.submitLabel())
	b.WriteString("\n")

	b.WriteString(errorLine(m.snapshot.ErrorMessage()))
	b.WriteString(errorLine(m.localErr))
	if m.status != "" {
		b.WriteString("\n" + statusStyle.Render(m.status) + "\n")
	}

	b.WriteString(m.resultView())

	title := strings.ToUpper(appName)
	if m.email != "" {
		title += " │ " + m.email
	}

	return renderPage(title, strings.TrimRight(b.String(), "\n"), m.hotKeys())
}

func (m *WorkflowModel) submitLabel() string {
	if m.mode == models.ModeDecode {
		if m.snapshot.DecryptInFlight {
			return "[" + m.spinner.View() + " Decrypting...]"
		}
		return "[Decrypt]"
	}
	if m.snapshot.EncryptInFlight {
		return "[" + m.spinner.View() + " Encrypting...]"
	}
	return "[Encrypt]"
}

func (m *WorkflowModel) resultView() string {
	var b strings.Builder

	if m.mode == models.ModeEncode && m.snapshot.Encrypt != nil {
		r := m.snapshot.Encrypt
		b.WriteString("\nResult\n")
		b.WriteString(fmt.Sprintf("Ciphertext    │ %s\n", fitText(r.Ciphertext, refWidth)))
		b.WriteString(fmt.Sprintf("Encoded image │ %s\n", fitText(r.EncodedImage, refWidth)))
		b.WriteString(fmt.Sprintf("Encoded video │ %s\n", fitText(r.EncodedVideo, refWidth)))
		b.WriteString(fmt.Sprintf("Encoded audio │ %s\n", fitText(r.EncodedAudio, refWidth)))
	}

	if m.mode == models.ModeDecode && m.snapshot.Decrypt != nil {
		b.WriteString("\nDecrypted message\n")
		b.WriteString(m.snapshot.Decrypt.RecoveredMessage)
		b.WriteString("\n")
	}

	return b.String()
}

func (m *WorkflowModel) hotKeys() string {
	help := "ctrl+t: switch mode │ tab: next field │ enter: submit"
	if m.mode == models.ModeEncode && m.snapshot.Encrypt != nil {
		help += " │ ctrl+y: copy ciphertext │ alt+1/2/3: save image/video/audio"
	}
	if m.mode == models.ModeDecode && m.snapshot.Decrypt != nil {
		help += " │ ctrl+y: copy message"
	}
	return help + " │ ctrl+l: log out"
}
