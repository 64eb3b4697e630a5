// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-stegano/models"
)

// fakeSession implements service.ClientSessionService for screen tests.
type fakeSession struct {
	mu      sync.Mutex
	session models.Session

	loginCalls  []models.Credentials
	signupCalls []models.Credentials
	federated   []models.FederatedCredential
	logouts     int

	err error
}

func (f *fakeSession) Start() {}
func (f *fakeSession) Close() {}

func (f *fakeSession) CurrentIdentity() *models.Identity {
	return f.Snapshot().Identity.Clone()
}

func (f *fakeSession) Snapshot() models.Session {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.session
}

func (f *fakeSession) Subscribe(fn func(models.Session)) func() {
	fn(f.Snapshot())
	return func() {}
}

func (f *fakeSession) Login(_ context.Context, email, password string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.loginCalls = append(f.loginCalls, models.Credentials{Email: email, Password: password})
	return f.err
}

func (f *fakeSession) Signup(_ context.Context, email, password string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.signupCalls = append(f.signupCalls, models.Credentials{Email: email, Password: password})
	return f.err
}

func (f *fakeSession) LoginWithFederatedProvider(_ context.Context, cred models.FederatedCredential) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.federated = append(f.federated, cred)
	return f.err
}

func (f *fakeSession) Logout(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.logouts++
	return f.err
}

// fakeWorkflow implements service.ClientWorkflowService and records drafts.
type fakeWorkflow struct {
	mu       sync.Mutex
	snapshot models.WorkflowSnapshot

	encrypts  []models.EncryptDraft
	decrypts  []models.DecryptDraft
	downloads []models.MediaKind

	downloadPath string
	err          error
}

func (f *fakeWorkflow) SubmitEncrypt(_ context.Context, draft models.EncryptDraft) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.encrypts = append(f.encrypts, draft)
	return f.err
}

func (f *fakeWorkflow) SubmitDecrypt(_ context.Context, draft models.DecryptDraft) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.decrypts = append(f.decrypts, draft)
	return f.err
}

func (f *fakeWorkflow) Snapshot() models.WorkflowSnapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snapshot
}

func (f *fakeWorkflow) Subscribe(fn func(models.WorkflowSnapshot)) func() {
	fn(f.Snapshot())
	return func() {}
}

func (f *fakeWorkflow) DownloadArtifact(_ context.Context, kind models.MediaKind, _ string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.downloads = append(f.downloads, kind)
	return f.downloadPath, f.err
}

func (f *fakeWorkflow) Reset(models.Mode) {}
func (f *fakeWorkflow) Close()            {}
