// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by both front
// ends (terminal UI and local web UI) and by the service layer.
//
// All Msg* constants are human-readable strings shown to the user. Keeping
// them in one place keeps the wording identical across front ends.
package app

const (
	// MsgErrorEncrypting is shown when an encode request fails and the codec
	// service did not supply its own error message.
	MsgErrorEncrypting = "Error encrypting data"

	// MsgErrorDecrypting is shown when a decode request fails and the codec
	// service did not supply its own error message.
	MsgErrorDecrypting = "Error decrypting data"

	// MsgMissingEncryptFields is shown when the encode draft lacks the
	// message or one of the three cover files.
	MsgMissingEncryptFields = "Please enter text and upload an image, video, and audio file."

	// MsgMissingDecryptFields is shown when the decode draft lacks the
	// ciphertext or one of the three encoded files.
	MsgMissingDecryptFields = "Please enter ciphertext and upload encoded image, video, and audio files."

	// MsgFillAllFields is shown when a login or signup form is incomplete.
	MsgFillAllFields = "Please fill in all fields"

	// MsgPasswordsDoNotMatch is shown when signup password and confirmation
	// differ.
	MsgPasswordsDoNotMatch = "Passwords do not match"

	// MsgPasswordTooShort is shown when the signup password is shorter than
	// the provider minimum.
	MsgPasswordTooShort = "Password must be at least 6 characters"

	// MsgProvideFederatedToken is shown when federated sign-in is requested
	// without a provider token.
	MsgProvideFederatedToken = "Please paste a Google ID token"

	// MsgLoginFailedPrefix prefixes identity-provider errors on sign-in.
	MsgLoginFailedPrefix = "Failed to log in: "

	// MsgFederatedLoginFailedPrefix prefixes errors of federated sign-in.
	MsgFederatedLoginFailedPrefix = "Failed to sign in with Google: "

	// MsgSignupFailedPrefix prefixes identity-provider errors on sign-up.
	MsgSignupFailedPrefix = "Failed to create an account: "

	// MsgLogoutFailedPrefix prefixes sign-out errors.
	MsgLogoutFailedPrefix = "Failed to log out: "

	// MsgCopied is the status shown after a clipboard copy.
	MsgCopied = "Copied to clipboard!"

	// MsgSubmissionInFlight is logged when a submit is ignored because the
	// same sub-workflow already has a request outstanding.
	MsgSubmissionInFlight = "request already in progress"

	// MsgServiceUnavailable replaces low-level network errors in the UI.
	MsgServiceUnavailable = "Network is unavailable or the service is unreachable"
)

// MinPasswordLength is the shortest password the identity provider accepts.
const MinPasswordLength = 6
