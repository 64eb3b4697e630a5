// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-stegano/internal/adapter"
	"github.com/MKhiriev/go-stegano/internal/app"
	"github.com/MKhiriev/go-stegano/internal/validators"
	"github.com/MKhiriev/go-stegano/models"
)

// UserMessage returns the text a front end shows for err.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var userErr *UserError
	if errors.As(err, &userErr) {
		return userErr.Message
	}
	var validationErr *validators.ValidationError
	if errors.As(err, &validationErr) && validationErr.Message != "" {
		return validationErr.Message
	}
	var authErr *adapter.AuthError
	if errors.As(err, &authErr) {
		return authErr.Message
	}
	if errors.Is(err, adapter.ErrNetwork) {
		return app.MsgServiceUnavailable
	}
	return err.Error()
}

// mapAuthError prefixes the provider detail with the operation prefix.
// Validation errors pass through untouched.
func mapAuthError(prefix string, err error) error {
	if err == nil {
		return nil
	}

	var validationErr *validators.ValidationError
	if errors.As(err, &validationErr) {
		return err
	}

	detail := UserMessage(err)
	return &UserError{Message: prefix + detail, err: err}
}

// requestErrorMessage is the text stored in the workflow error slot for a
// failed codec request: the service's own message if it sent one, otherwise
// the generic message of the mode.
func requestErrorMessage(mode models.Mode, err error) string {
	var reqErr *adapter.RequestError
	if errors.As(err, &reqErr) && strings.TrimSpace(reqErr.Message) != "" {
		return reqErr.Message
	}
	return genericErrorMessage(mode)
}

func genericErrorMessage(mode models.Mode) string {
	if mode == models.ModeDecode {
		return app.MsgErrorDecrypting
	}
	return app.MsgErrorEncrypting
}
