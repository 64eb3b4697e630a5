// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestError(t *testing.T) {
	err := &RequestError{StatusCode: http.StatusBadRequest, Message: "bad image"}
	assert.Equal(t, "codec error 400: bad image", err.Error())
	assert.ErrorIs(t, err, ErrBadRequest)
	assert.NotErrorIs(t, err, ErrNotFound)

	err = &RequestError{StatusCode: http.StatusTeapot}
	assert.Equal(t, "codec error 418", err.Error())

	netErr := networkRequestError(errors.New("connection refused"))
	assert.ErrorIs(t, netErr, ErrNetwork)
	assert.Contains(t, netErr.Error(), "connection refused")
}

func TestAuthError(t *testing.T) {
	err := &AuthError{StatusCode: http.StatusBadRequest, Code: "EMAIL_EXISTS", Message: "exists"}
	assert.Equal(t, "exists", err.Error())
	assert.True(t, err.Rejected())
	assert.ErrorIs(t, err, ErrBadRequest)

	netErr := networkAuthError(errors.New("timeout"))
	var authErr *AuthError
	assert.ErrorAs(t, netErr, &authErr)
	assert.False(t, authErr.Rejected())
	assert.ErrorIs(t, netErr, ErrNetwork)
}

func TestHumanizeAuthCode(t *testing.T) {
	assert.Equal(t, "The password is incorrect.", humanizeAuthCode("INVALID_PASSWORD", ""))
	assert.Equal(t, "The identity provider API key is not valid.", humanizeAuthCode("API key not valid. Please pass a valid API key.", ""))
	assert.Equal(t, "detail wins", humanizeAuthCode("NEW_CODE", "detail wins"))
	assert.Equal(t, "new code", humanizeAuthCode("NEW_CODE", ""))
}
