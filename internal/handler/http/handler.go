// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/go-stegano/internal/guard"
	"github.com/MKhiriev/go-stegano/internal/logger"
	"github.com/MKhiriev/go-stegano/internal/service"
	"github.com/MKhiriev/go-stegano/internal/validators"
	"github.com/MKhiriev/go-stegano/models"
)

type Handler struct {
	session   service.ClientSessionService
	workflow  service.ClientWorkflowService
	validator validators.Validator
	guard     *guard.Guard
	views     *views
	buildInfo models.AppBuildInfo

	unsubscribe func()

	logger *logger.Logger
}

// NewHandler creates the web handler. The route guard follows the session
// until Close is called.
func NewHandler(session service.ClientSessionService, workflow service.ClientWorkflowService, buildInfo models.AppBuildInfo, logger *logger.Logger) *Handler {
	h := &Handler{
		session:   session,
		workflow:  workflow,
		validator: validators.NewCredentialsValidator(),
		guard:     guard.New(),
		views:     newViews(),
		buildInfo: buildInfo,
		logger:    logger,
	}

	h.unsubscribe = session.Subscribe(func(s models.Session) {
		if t, changed := h.guard.Update(s); changed {
			logger.Info().
				Str("from", t.From.String()).
				Str("to", t.To.String()).
				Msg("session state changed")
		}
	})

	logger.Info().Msg("http handler created")
	return h
}

// Close stops following the session.
func (h *Handler) Close() {
	h.unsubscribe()
}
