// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/MKhiriev/go-stegano/internal/logger"
	"github.com/MKhiriev/go-stegano/models"
)

//go:embed templates/*.html
var templatesFS embed.FS

const (
	pagePending  = "pending.html"
	pageLogin    = "login.html"
	pageSignup   = "signup.html"
	pageWorkflow = "workflow.html"
)

// formValues are echoed back into a form after a failed submit. Passwords
// are never echoed.
type formValues struct {
	Email string
}

type artifactLink struct {
	Kind     models.MediaKind
	FileName string
}

// pageData is the single view model of every page.
type pageData struct {
	Title   string
	Email   string
	Pending bool
	Error   string
	Status  string
	Form    formValues

	Decrypt    bool
	Ciphertext string
	Snapshot   models.WorkflowSnapshot
	Artifacts  []artifactLink
}

type views struct {
	pages map[string]*template.Template
}

func newViews() *views {
	v := &views{pages: make(map[string]*template.Template)}
	for _, page := range []string{pagePending, pageLogin, pageSignup, pageWorkflow} {
		v.pages[page] = template.Must(template.ParseFS(templatesFS, "templates/layout.html", "templates/"+page))
	}
	return v
}

// render executes page into a buffer first so that a template error still
// produces a clean 500.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, page string, data pageData) {
	log := logger.FromRequest(r)

	tmpl, ok := h.views.pages[page]
	if !ok {
		log.Error().Str("page", page).Msg("unknown page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if data.Email == "" {
		data.Email = h.session.Snapshot().Email()
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		log.Err(err).Str("page", page).Msg("error rendering page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
