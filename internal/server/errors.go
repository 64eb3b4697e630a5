// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoHandlerProvided = errors.New("no http handler provided")
	errNoAddressProvided = errors.New("no listen address provided")
)
