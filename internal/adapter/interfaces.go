// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for the two remote
// services the client talks to.
//
// [IdentityProvider] authenticates the user against a Firebase-compatible
// Identity Toolkit REST API and publishes identity changes to observers.
// [CodecAdapter] submits multipart encode/decode requests to the
// steganographic codec service and downloads the encoded artifacts.
//
// Error values defined in errors.go let callers use [errors.Is] and
// [errors.As] for transport-agnostic error handling: [*AuthError] for identity
// failures, [*RequestError] for codec failures, [ErrNetwork] for both when the
// remote side could not be reached.
package adapter

import (
	"context"
	"io"

	"github.com/MKhiriev/go-stegano/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// IdentityProvider defines communication with the identity provider.
// Implementations hold the current identity in memory and notify observers
// on every change.
type IdentityProvider interface {
	// SignIn authenticates with e-mail and password. On success the identity
	// becomes current and observers are notified. Failures are [*AuthError].
	SignIn(ctx context.Context, email, password string) (models.Identity, error)

	// SignInFederated exchanges a federated provider token for a session.
	SignInFederated(ctx context.Context, cred models.FederatedCredential) (models.Identity, error)

	// SignUp creates an account and signs it in.
	SignUp(ctx context.Context, email, password string) (models.Identity, error)

	// SignOut forgets the current identity and notifies observers. It is
	// local and only fails with [ErrAdapterClosed].
	SignOut(ctx context.Context) error

	// Refresh exchanges the refresh token for a fresh ID token. A refresh
	// rejected by the provider signs the user out.
	Refresh(ctx context.Context) (models.Identity, error)

	// Current returns a copy of the current identity, or nil.
	Current() *models.Identity

	// ObserveIdentity calls fn with the current identity right away and then
	// after every change, until the returned function is called. The returned
	// function is idempotent; fn is never called after it returns.
	// fn must not call back into the provider.
	ObserveIdentity(fn func(*models.Identity)) (unsubscribe func())

	// Close drops all observers; later calls fail with [ErrAdapterClosed].
	Close() error
}

// CodecAdapter defines communication with the steganographic codec service.
type CodecAdapter interface {
	// Encrypt sends one multipart POST /encrypt with the fields data, image,
	// video and audio. Failures are [*RequestError].
	Encrypt(ctx context.Context, draft models.EncryptDraft) (models.EncryptResult, error)

	// Decrypt sends one multipart POST /decrypt with the fields ciphertext,
	// encoded_image, encoded_video and encoded_audio.
	Decrypt(ctx context.Context, draft models.DecryptDraft) (models.DecryptResult, error)

	// Download writes the artifact referenced by ref (a data-URI or a URL,
	// absolute or relative to the codec service) to w and returns its media
	// type.
	Download(ctx context.Context, ref string, w io.Writer) (string, error)
}
