// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the local web front end of the client.
//
// It serves server-rendered pages for the /login, /signup and protected /
// routes, consulting the route guard on every request. Cross-cutting
// concerns such as request tracing, access logging and panic recovery are
// handled by middleware before requests reach the session and workflow
// services.
package http
