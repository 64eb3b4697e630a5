// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/go-stegano/internal/guard"
	"github.com/MKhiriev/go-stegano/models"
)

// NavigateTo asks the router to open a route. The route guard may send the
// user elsewhere.
type NavigateTo struct {
	Route guard.Route
}

type sessionChangedMsg struct {
	session models.Session
}

type workflowChangedMsg struct {
	snapshot models.WorkflowSnapshot
}

type authResultMsg struct {
	err error
}

type logoutDoneMsg struct {
	err error
}

type submitDoneMsg struct {
	mode models.Mode
	err  error
}

type downloadDoneMsg struct {
	kind models.MediaKind
	path string
	err  error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
