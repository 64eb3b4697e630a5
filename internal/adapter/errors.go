// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for errors.Is() checks.
var (
	// ErrAdapterClosed is returned when an operation is attempted on a closed
	// adapter.
	ErrAdapterClosed = errors.New("adapter has been closed")

	// ErrNoArtifact is returned when there is nothing to download.
	ErrNoArtifact = errors.New("no artifact to download")

	// ErrNotSignedIn is returned by Refresh when there is no identity.
	ErrNotSignedIn = errors.New("not signed in")

	// ErrIdentityChanged is returned by Refresh when the user signed out or
	// signed in as someone else while the refresh was running.
	ErrIdentityChanged = errors.New("identity changed during refresh")

	// ErrNetwork marks failures where no response was received: connection
	// refused, DNS failure, timeout.
	ErrNetwork = errors.New("network is unavailable")

	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrPayloadTooLarge     = errors.New("payload too large")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
)

// RequestError is a failed codec service call. Message is the "error" field
// of the response body, or "" when the service sent none (or no response was
// received at all, in which case StatusCode is 0 and the error wraps
// [ErrNetwork]).
type RequestError struct {
	StatusCode int
	Message    string
	err        error
}

func (e *RequestError) Error() string {
	switch {
	case e.StatusCode == 0 && e.err != nil:
		return fmt.Sprintf("codec request failed: %v", e.err)
	case e.Message != "":
		return fmt.Sprintf("codec error %d: %s", e.StatusCode, e.Message)
	default:
		return fmt.Sprintf("codec error %d", e.StatusCode)
	}
}

func (e *RequestError) Unwrap() error {
	return e.err
}

// Is implements errors.Is for status-based sentinel matching.
func (e *RequestError) Is(target error) bool {
	return statusSentinel(e.StatusCode) == target
}

// AuthError is a failed identity provider call. Code is the provider error
// code ("EMAIL_EXISTS", "INVALID_PASSWORD", ...) and Message its
// human-readable rendering. A transport failure has an empty Code and wraps
// [ErrNetwork].
type AuthError struct {
	StatusCode int
	Code       string
	Message    string
	err        error
}

func (e *AuthError) Error() string {
	return e.Message
}

func (e *AuthError) Unwrap() error {
	return e.err
}

// Is implements errors.Is for status-based sentinel matching.
func (e *AuthError) Is(target error) bool {
	return statusSentinel(e.StatusCode) == target
}

// Rejected reports whether the provider answered and refused the request,
// as opposed to not being reachable.
func (e *AuthError) Rejected() bool {
	return e.StatusCode != 0
}

func statusSentinel(status int) error {
	switch status {
	case http.StatusBadRequest:
		return ErrBadRequest
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusRequestEntityTooLarge:
		return ErrPayloadTooLarge
	case http.StatusInternalServerError:
		return ErrInternalServerError
	case http.StatusBadGateway:
		return ErrBadGateway
	}
	return nil
}
