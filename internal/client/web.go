// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	handler "github.com/MKhiriev/go-stegano/internal/handler/http"
	"github.com/MKhiriev/go-stegano/internal/server"
)

// WebFrontEnd serves the local web UI until the context is done.
type WebFrontEnd struct {
	handler *handler.Handler
	server  server.Server
}

func NewWebFrontEnd(h *handler.Handler, srv server.Server) *WebFrontEnd {
	return &WebFrontEnd{handler: h, server: srv}
}

func (w *WebFrontEnd) Run(ctx context.Context) error {
	defer w.handler.Close()
	return w.server.RunServer(ctx)
}
