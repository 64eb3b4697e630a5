// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// PasswordAuthRequest is the body of accounts:signInWithPassword and
// accounts:signUp.
type PasswordAuthRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

// IdpAuthRequest is the body of accounts:signInWithIdp.
type IdpAuthRequest struct {
	// PostBody is a form-encoded "id_token=...&providerId=..." string.
	PostBody string `json:"postBody"`
	// RequestURI must be a URI the provider accepts as redirect target.
	RequestURI          string `json:"requestUri"`
	ReturnIdpCredential bool   `json:"returnIdpCredential"`
	ReturnSecureToken   bool   `json:"returnSecureToken"`
}

// AuthResponse is the common subset of the sign-in/sign-up responses.
type AuthResponse struct {
	LocalID      string `json:"localId"`
	Email        string `json:"email"`
	DisplayName  string `json:"displayName,omitempty"`
	ProviderID   string `json:"providerId,omitempty"`
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
	// ExpiresIn is the ID token lifetime in seconds, encoded as a string.
	ExpiresIn string `json:"expiresIn"`
}

// RefreshTokenResponse is the body returned by the secure-token endpoint.
type RefreshTokenResponse struct {
	ExpiresIn    string `json:"expires_in"`
	TokenType    string `json:"token_type"`
	RefreshToken string `json:"refresh_token"`
	IDToken      string `json:"id_token"`
	UserID       string `json:"user_id"`
}

// IdentityErrorResponse is the error envelope of the identity toolkit.
type IdentityErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
