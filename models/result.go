// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// EncryptResult is produced by a successful encode request.
type EncryptResult struct {
	// Ciphertext is the opaque token required by the decode step.
	Ciphertext string

	// EncodedImage, EncodedVideo and EncodedAudio are data-URIs or download
	// URLs of the encoded media, usable directly as link targets.
	EncodedImage string
	EncodedVideo string
	EncodedAudio string
}

// Artifact returns the download reference of the given media kind.
func (r EncryptResult) Artifact(kind MediaKind) string {
	switch kind {
	case MediaImage:
		return r.EncodedImage
	case MediaVideo:
		return r.EncodedVideo
	case MediaAudio:
		return r.EncodedAudio
	}
	return ""
}

// DecryptResult is produced by a successful decode request.
type DecryptResult struct {
	// RecoveredMessage is the original plaintext.
	RecoveredMessage string
}

// WorkflowError is the single error slot of the submission controller.
type WorkflowError struct {
	// Mode is the sub-workflow whose attempt produced the error.
	Mode Mode
	// Message is shown to the user verbatim.
	Message string
}

// WorkflowSnapshot is a read-only copy of the submission controller state.
type WorkflowSnapshot struct {
	EncryptInFlight bool
	DecryptInFlight bool

	Encrypt *EncryptResult
	Decrypt *DecryptResult

	Err *WorkflowError
}

// InFlight reports whether the sub-workflow of mode has an outstanding request.
func (s WorkflowSnapshot) InFlight(mode Mode) bool {
	if mode == ModeDecode {
		return s.DecryptInFlight
	}
	return s.EncryptInFlight
}

// ErrorMessage returns the active error message or "".
func (s WorkflowSnapshot) ErrorMessage() string {
	if s.Err == nil {
		return ""
	}
	return s.Err.Message
}
