// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-stegano/models"
)

// ClientSessionService is the process-wide session context. It mirrors the
// identity reported by the identity provider and fans it out to subscribers.
// Only the provider's change notification writes the state; the wrapper
// operations delegate to the provider and the state follows from its
// notification.
type ClientSessionService interface {
	// Start subscribes to the identity provider. The session becomes resolved
	// with the first notification. Calling Start twice is a no-op.
	Start()

	// Close unsubscribes from the provider and drops all subscribers.
	Close()

	// CurrentIdentity returns a copy of the signed-in identity, or nil.
	CurrentIdentity() *models.Identity

	// Snapshot returns the current session state.
	Snapshot() models.Session

	// Subscribe calls fn with the current snapshot right away and after
	// every change until the returned function is called.
	Subscribe(fn func(models.Session)) (unsubscribe func())

	// Login signs in with e-mail and password. Failures are
	// [*validators.ValidationError] or [*UserError] prefixed with
	// "Failed to log in: ".
	Login(ctx context.Context, email, password string) error

	// Signup creates an account and signs it in.
	Signup(ctx context.Context, email, password string) error

	// LoginWithFederatedProvider signs in with a federated provider token.
	LoginWithFederatedProvider(ctx context.Context, cred models.FederatedCredential) error

	// Logout signs the user out.
	Logout(ctx context.Context) error
}

// ClientWorkflowService is the submission workflow controller: one state
// machine driving both the encode and the decode sub-workflow.
type ClientWorkflowService interface {
	// SubmitEncrypt validates draft and sends one encode request. It returns
	// [ErrSubmissionInFlight] without any effect while an encode request is
	// outstanding, a [*validators.ValidationError] without a network call
	// for an incomplete draft, and the codec error on failure. The outcome
	// is also recorded in the state seen by subscribers.
	SubmitEncrypt(ctx context.Context, draft models.EncryptDraft) error

	// SubmitDecrypt is SubmitEncrypt for the decode sub-workflow.
	SubmitDecrypt(ctx context.Context, draft models.DecryptDraft) error

	// Snapshot returns a copy of the controller state.
	Snapshot() models.WorkflowSnapshot

	// Subscribe calls fn with the current state right away and after every
	// change until the returned function is called.
	Subscribe(fn func(models.WorkflowSnapshot)) (unsubscribe func())

	// DownloadArtifact saves the encoded artifact of kind from the last
	// encode result into dir (the configured download directory when dir is
	// empty) and returns the written path.
	DownloadArtifact(ctx context.Context, kind models.MediaKind, dir string) (string, error)

	// Reset clears the result of mode and the error slot.
	Reset(mode models.Mode)

	// Close stops notifications. Requests completing afterwards are
	// discarded.
	Close()
}

// ClientTokenRefreshJob keeps the session alive by refreshing the ID token
// shortly before it expires.
type ClientTokenRefreshJob interface {
	// Start launches the background goroutine. Every interval it refreshes
	// the token if it expires within window. Any previously running job is
	// stopped first.
	Start(ctx context.Context, interval, window time.Duration)

	// Stop signals the goroutine to exit and waits for it.
	Stop()
}
