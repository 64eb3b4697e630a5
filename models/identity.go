// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ProviderKind identifies a federated identity provider accepted by the
// identity toolkit (the value is sent as "providerId").
type ProviderKind string

// ProviderGoogle is the only federated provider the client offers.
const ProviderGoogle ProviderKind = "google.com"

// Identity represents the authenticated user as reported by the identity
// provider. It is held only in memory for the lifetime of the process.
type Identity struct {
	// UID is the provider-assigned user identifier ("localId").
	UID string `json:"uid"`

	// Email is the user's e-mail address. It is the identifier shown in the UI.
	Email string `json:"email"`

	// DisplayName is an optional human-readable name (federated sign-in only).
	DisplayName string `json:"display_name,omitempty"`

	// ProviderID names the sign-in method ("password", "google.com").
	ProviderID string `json:"provider_id,omitempty"`

	// IDToken is the short-lived provider ID token (JWT).
	// Never rendered, never logged.
	IDToken string `json:"-"`

	// RefreshToken is used to obtain a fresh IDToken before it expires.
	// Never rendered, never logged.
	RefreshToken string `json:"-"`

	// ExpiresAt is the moment IDToken stops being valid.
	ExpiresAt time.Time `json:"expires_at"`
}

// ExpiresWithin reports whether the ID token expires before now+window.
// An identity without an expiry never expires.
func (i *Identity) ExpiresWithin(now time.Time, window time.Duration) bool {
	if i == nil || i.ExpiresAt.IsZero() {
		return false
	}
	return !now.Add(window).Before(i.ExpiresAt)
}

// Clone returns an independent copy of the identity, or nil for nil.
func (i *Identity) Clone() *Identity {
	if i == nil {
		return nil
	}
	c := *i
	return &c
}

// FederatedCredential carries a token issued by a federated provider which
// the identity toolkit exchanges for its own session.
type FederatedCredential struct {
	// Provider is the federated provider kind.
	Provider ProviderKind

	// IDToken is the OAuth ID token issued by Provider.
	IDToken string
}

// Session is a read-only snapshot of the session context.
type Session struct {
	// Identity is the signed-in user, or nil when nobody is signed in.
	Identity *Identity

	// Resolved becomes true once the identity provider reported the session
	// state for the first time. Until then an absent Identity means
	// "still determining", not "signed out".
	Resolved bool
}

// Authenticated reports whether the snapshot carries an identity.
func (s Session) Authenticated() bool {
	return s.Identity != nil
}

// Email returns the signed-in user's e-mail or an empty string.
func (s Session) Email() string {
	if s.Identity == nil {
		return ""
	}
	return s.Identity.Email
}
