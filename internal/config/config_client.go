// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds the codec service settings used by the adapter layer.
type ClientAdapter struct {
	// CodecAddress is the codec service base URL.
	CodecAddress string
	// RequestTimeout is the timeout of every outbound request.
	RequestTimeout time.Duration
}

// ClientIdentity holds the identity provider settings.
type ClientIdentity struct {
	Address      string
	TokenAddress string
	APIKey       string
}

// ClientStorage holds local file-system settings.
type ClientStorage struct {
	// DownloadDir is where encoded artifacts are saved.
	DownloadDir string
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// TokenRefreshInterval defines how often the refresh job runs.
	TokenRefreshInterval time.Duration
	// TokenRefreshWindow is the remaining lifetime below which the ID token
	// is refreshed.
	TokenRefreshWindow time.Duration
}

// ClientConfig is the configuration of the terminal client assembled from
// [StructuredConfig].
type ClientConfig struct {
	Adapter  ClientAdapter
	Identity ClientIdentity
	Storage  ClientStorage
	Workers  ClientWorkers
}

// WebConfig is the configuration of the local web front end: everything the
// terminal client needs plus the listen address.
type WebConfig struct {
	ClientConfig

	// Address is the listen address of the web server.
	Address string
}

// GetClientConfig builds and validates the terminal client configuration.
// args are the command-line arguments without the program name.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

// GetWebConfig builds and validates the web front end configuration.
func GetWebConfig(args []string) (*WebConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	webCfg := &WebConfig{
		ClientConfig: *newClientConfig(cfg),
		Address:      cfg.Web.Address,
	}
	return webCfg, webCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		Adapter: ClientAdapter{
			CodecAddress:   cfg.Adapter.CodecAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Identity: ClientIdentity{
			Address:      cfg.Identity.Address,
			TokenAddress: cfg.Identity.TokenAddress,
			APIKey:       cfg.Identity.APIKey,
		},
		Storage: ClientStorage{DownloadDir: cfg.Storage.DownloadDir},
		Workers: ClientWorkers{
			TokenRefreshInterval: cfg.Workers.TokenRefreshInterval,
			TokenRefreshWindow:   cfg.Workers.TokenRefreshWindow,
		},
	}
}
