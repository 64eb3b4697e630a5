// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrSubmissionInFlight is returned when a submit is ignored because the
	// same sub-workflow already has a request outstanding.
	ErrSubmissionInFlight = errors.New("submission already in flight")

	// ErrWorkflowClosed is returned by a closed workflow controller. A
	// request that completes after Close also reports it.
	ErrWorkflowClosed = errors.New("workflow controller is closed")

	ErrSessionClosed = errors.New("session is closed")
)

// UserError is an error whose Message is shown to the user verbatim, such as
// "Failed to log in: The password is incorrect.".
type UserError struct {
	Message string
	err     error
}

func (e *UserError) Error() string {
	return e.Message
}

func (e *UserError) Unwrap() error {
	return e.err
}
