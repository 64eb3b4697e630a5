// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-stegano/internal/adapter"
	"github.com/MKhiriev/go-stegano/internal/config"
	"github.com/MKhiriev/go-stegano/internal/logger"
)

// ClientServices is the single set of services of one client process. The
// session context is built here once and shared by every front end.
type ClientServices struct {
	SessionService  ClientSessionService
	WorkflowService ClientWorkflowService
	TokenRefreshJob ClientTokenRefreshJob

	identityProvider adapter.IdentityProvider
}

func NewClientServices(identityProvider adapter.IdentityProvider, codec adapter.CodecAdapter, storageCfg config.ClientStorage, log *logger.Logger) *ClientServices {
	return &ClientServices{
		SessionService:   NewClientSessionService(identityProvider, log.GetChildLogger()),
		WorkflowService:  NewClientWorkflowService(codec, storageCfg.DownloadDir, log.GetChildLogger()),
		TokenRefreshJob:  NewClientTokenRefreshJob(identityProvider, log.GetChildLogger()),
		identityProvider: identityProvider,
	}
}

// Close stops the refresh job, closes the workflow controller and the
// session, then the identity provider.
func (s *ClientServices) Close() error {
	s.TokenRefreshJob.Stop()
	s.WorkflowService.Close()
	s.SessionService.Close()
	return s.identityProvider.Close()
}
