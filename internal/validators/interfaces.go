// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds the local, pre-network input checks of the client.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values. Supports
//     optional field-level scoping for targeted validation.
//   - ValidationError: the error every failed check returns; it carries the
//     user-facing message and wraps a sentinel such as [ErrMissingField].
//
// Validators never touch the network; a draft that fails validation must not
// reach the codec service.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
