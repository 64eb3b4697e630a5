// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the runtime of the two client front ends.
//
// It wires the session context, the background workers and a front end
// (terminal UI or local web server) into a single process lifecycle.
package client
