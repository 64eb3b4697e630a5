// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-stegano/internal/adapter"
	"github.com/MKhiriev/go-stegano/internal/service"
	"github.com/MKhiriev/go-stegano/internal/validators"
)

var errorStatusMap = map[error]int{
	validators.ErrMissingField:      http.StatusBadRequest,
	validators.ErrUnsupportedMedia:  http.StatusBadRequest,
	validators.ErrPasswordMismatch:  http.StatusBadRequest,
	validators.ErrPasswordTooShort:  http.StatusBadRequest,
	validators.ErrMissingFederation: http.StatusBadRequest,

	service.ErrSubmissionInFlight: http.StatusConflict,
	service.ErrWorkflowClosed:     http.StatusServiceUnavailable,
	service.ErrSessionClosed:      http.StatusServiceUnavailable,

	adapter.ErrNoArtifact:    http.StatusNotFound,
	adapter.ErrNotSignedIn:   http.StatusUnauthorized,
	adapter.ErrAdapterClosed: http.StatusServiceUnavailable,
	adapter.ErrNetwork:       http.StatusBadGateway,
	errUnknownMediaKind:      http.StatusNotFound,
}

// statusFromError picks the response status for err. Provider rejections are
// 401, other upstream failures 502.
func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}

	var authErr *adapter.AuthError
	if errors.As(err, &authErr) {
		if authErr.Rejected() {
			return http.StatusUnauthorized
		}
		return http.StatusBadGateway
	}

	var requestErr *adapter.RequestError
	if errors.As(err, &requestErr) {
		return http.StatusBadGateway
	}

	return http.StatusInternalServerError
}
