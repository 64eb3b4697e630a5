// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrMissingField      = errors.New("missing field")
	ErrUnsupportedMedia  = errors.New("unsupported media type")
	ErrPasswordMismatch  = errors.New("passwords do not match")
	ErrPasswordTooShort  = errors.New("password too short")
	ErrMissingFederation = errors.New("missing federated credential")
)

// ValidationError is a local, pre-network rejection of user input. Message
// is meant for the user; Fields names the offending inputs. The wrapped
// sentinel (e.g. [ErrMissingField]) is reachable through errors.Is.
type ValidationError struct {
	Fields  []string
	Message string
	err     error
}

func newValidationError(sentinel error, message string, fields ...string) *ValidationError {
	return &ValidationError{Fields: fields, Message: message, err: sentinel}
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if len(e.Fields) == 0 {
		return e.err.Error()
	}
	return e.err.Error() + ": " + strings.Join(e.Fields, ", ")
}

func (e *ValidationError) Unwrap() error {
	return e.err
}
