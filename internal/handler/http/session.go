// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-stegano/internal/logger"
	"github.com/MKhiriev/go-stegano/internal/utils"
)

// sessionStatusResponse is the body of GET /session.
type sessionStatusResponse struct {
	State string `json:"state"`
	Email string `json:"email,omitempty"`
}

func (h *Handler) sessionStatus(w http.ResponseWriter, r *http.Request) {
	resp := sessionStatusResponse{
		State: h.guard.State().String(),
		Email: h.session.Snapshot().Email(),
	}

	if _, err := utils.WriteJSON(w, resp, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing session status")
	}
}
