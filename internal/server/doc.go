// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the HTTP server of the local web front end.
//
// It owns the server lifecycle: startup, waiting for the stop signal carried
// by the context, and graceful shutdown.
package server
