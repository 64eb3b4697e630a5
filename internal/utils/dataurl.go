// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrNotDataURI is returned by [DecodeDataURI] for strings that do not start
// with "data:".
var ErrNotDataURI = errors.New("not a data URI")

// IsDataURI reports whether s is an inline "data:" reference.
func IsDataURI(s string) bool {
	return len(s) >= 5 && strings.EqualFold(s[:5], "data:")
}

// DecodeDataURI decodes an RFC 2397 data URI into its media type and payload.
// Both base64 and percent-encoded payloads are accepted; a missing media type
// defaults to "text/plain;charset=US-ASCII".
func DecodeDataURI(s string) (mediaType string, data []byte, err error) {
	if !IsDataURI(s) {
		return "", nil, ErrNotDataURI
	}

	header, payload, found := strings.Cut(s[5:], ",")
	if !found {
		return "", nil, fmt.Errorf("%w: missing comma", ErrNotDataURI)
	}

	isBase64 := false
	if strings.HasSuffix(strings.ToLower(header), ";base64") {
		isBase64 = true
		header = header[:len(header)-len(";base64")]
	}

	mediaType = header
	if mediaType == "" {
		mediaType = "text/plain;charset=US-ASCII"
	}

	if isBase64 {
		data, err = decodeBase64(payload)
		if err != nil {
			return "", nil, fmt.Errorf("error decoding data URI payload: %w", err)
		}
		return mediaType, data, nil
	}

	unescaped, err := url.PathUnescape(payload)
	if err != nil {
		return "", nil, fmt.Errorf("error decoding data URI payload: %w", err)
	}
	return mediaType, []byte(unescaped), nil
}

func decodeBase64(payload string) ([]byte, error) {
	payload = strings.TrimSpace(payload)
	if data, err := base64.StdEncoding.DecodeString(payload); err == nil {
		return data, nil
	}
	return base64.RawStdEncoding.DecodeString(strings.TrimRight(payload, "="))
}
