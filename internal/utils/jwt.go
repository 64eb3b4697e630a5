// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-stegano/models"
	"github.com/golang-jwt/jwt/v5"
)

// ErrEmptyToken is returned when an empty token string is parsed.
var ErrEmptyToken = errors.New("empty token")

// ParseIdentityClaims decodes the claims of an identity-provider ID token
// without verifying its signature.
//
// The client receives the token directly from the provider over TLS and only
// reads profile claims and the expiry from it; verification is the job of
// whatever service the token is later presented to.
func ParseIdentityClaims(tokenString string) (*models.IdentityClaims, error) {
	if tokenString == "" {
		return nil, ErrEmptyToken
	}

	claims := &models.IdentityClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return nil, fmt.Errorf("error occurred parsing ID token: %w", err)
	}

	return claims, nil
}

// TokenExpiry returns the exp claim of an ID token, or the zero time when the
// token cannot be parsed or carries no expiry.
func TokenExpiry(tokenString string) time.Time {
	claims, err := ParseIdentityClaims(tokenString)
	if err != nil || claims.ExpiresAt == nil {
		return time.Time{}
	}
	return claims.ExpiresAt.Time
}
