// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Credentials is the e-mail/password form input of the login and signup
// screens.
type Credentials struct {
	Email    string
	Password string
	// PasswordConfirmation is only filled on the signup screen.
	PasswordConfirmation string
}
