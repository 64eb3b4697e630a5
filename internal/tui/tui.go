// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-stegano/internal/logger"
	"github.com/MKhiriev/go-stegano/internal/service"
	"github.com/MKhiriev/go-stegano/models"
	tea "github.com/charmbracelet/bubbletea"
)

// TUI is the terminal front end.
type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, log *logger.Logger) *TUI {
	return &TUI{services: services, buildInfo: buildInfo, logger: log}
}

// Run shows the terminal UI until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	root := t.newRoot(ctx)

	unsubscribeSession := t.services.SessionService.Subscribe(root.sessions.put)
	defer unsubscribeSession()
	unsubscribeWorkflow := t.services.WorkflowService.Subscribe(root.snapshots.put)
	defer unsubscribeWorkflow()

	if _, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("run terminal ui: %w", err)
	}

	t.logger.Debug().Msg("terminal ui closed")
	return nil
}

func (t *TUI) newRoot(ctx context.Context) *RootModel {
	session := t.services.SessionService
	workflow := t.services.WorkflowService

	return NewRootModel(ctx,
		NewLoginModel(ctx, session),
		NewSignupModel(ctx, session),
		NewWorkflowModel(ctx, session, workflow),
		newMailbox[models.Session](),
		newMailbox[models.WorkflowSnapshot](),
		t.buildInfo,
	)
}
