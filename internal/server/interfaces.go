// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server defines the lifecycle contract of the web server.
type Server interface {
	// RunServer starts serving requests and blocks until ctx is done or the
	// listener fails. The server is shut down gracefully before it returns.
	RunServer(ctx context.Context) error

	// Shutdown gracefully stops the server.
	Shutdown()
}
