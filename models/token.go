// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "github.com/golang-jwt/jwt/v5"

// IdentityClaims is the claim set of an identity-provider ID token.
//
// It embeds [jwt.RegisteredClaims] for the standard claims (sub, exp, iat,
// iss, aud) and adds the profile claims the client displays.
type IdentityClaims struct {
	jwt.RegisteredClaims

	// Email is the user's e-mail address.
	Email string `json:"email,omitempty"`

	// Name is the display name (federated accounts only).
	Name string `json:"name,omitempty"`

	// Firebase holds provider-specific claims.
	Firebase struct {
		// SignInProvider is "password", "google.com", ...
		SignInProvider string `json:"sign_in_provider,omitempty"`
	} `json:"firebase"`
}
