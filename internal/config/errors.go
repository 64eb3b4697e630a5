// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid codec adapter settings
	// (for example, a non-HTTP codec address or a non-positive timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidIdentityConfigs indicates invalid identity provider settings
	// (for example, a missing API key).
	ErrInvalidIdentityConfigs = errors.New("invalid identity configuration")
	// ErrInvalidStorageConfigs indicates an empty download directory.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidWebConfigs indicates a malformed web listen address.
	ErrInvalidWebConfigs = errors.New("invalid web configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, zero refresh interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
