// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for both front ends of the client.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. Environment variables, including those loaded from a .env file
//  3. Command-line flags
//  4. JSON config file
//
// The main entry points are [GetClientConfig] for the terminal client and
// [GetWebConfig] for the local web front end.
package config
