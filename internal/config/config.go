// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Defaults applied before any other source.
const (
	DefaultCodecAddress         = "http://127.0.0.1:5000"
	DefaultRequestTimeout       = 30 * time.Second
	DefaultIdentityAddress      = "https://identitytoolkit.googleapis.com"
	DefaultIdentityTokenAddress = "https://securetoken.googleapis.com"
	DefaultDownloadDir          = "."
	DefaultWebAddress           = "127.0.0.1:3000"
	DefaultTokenRefreshInterval = time.Minute
	DefaultTokenRefreshWindow   = 5 * time.Minute
	DefaultEnvFile              = ".env"
)

// StructuredConfig is the top-level configuration container. It aggregates
// all sub-configurations and is populated by merging values from defaults,
// environment variables, command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Adapter holds the codec service connection settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Identity holds the identity provider connection settings.
	Identity Identity `envPrefix:"IDENTITY_"`

	// Storage holds local file-system settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Web holds the listen address of the local web front end.
	Web Web `envPrefix:"WEB_"`

	// Workers holds background job settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// EnvFile is the dotenv file loaded into the environment before env
	// variables are read. Populated via ENV_FILE or the -env-file flag.
	EnvFile string `env:"ENV_FILE"`
}

// Adapter holds settings of the codec service adapter.
type Adapter struct {
	// CodecAddress is the base URL of the codec service
	// (e.g. "http://127.0.0.1:5000").
	// Env: ADAPTER_CODEC_ADDRESS
	CodecAddress string `env:"CODEC_ADDRESS"`

	// RequestTimeout bounds every outbound request (e.g. "30s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Identity holds settings of the identity provider adapter.
type Identity struct {
	// Address is the base URL of the identity toolkit REST API.
	// Env: IDENTITY_ADDRESS
	Address string `env:"ADDRESS"`

	// TokenAddress is the base URL of the secure-token (refresh) API.
	// Env: IDENTITY_TOKEN_ADDRESS
	TokenAddress string `env:"TOKEN_ADDRESS"`

	// APIKey is the project web API key sent as the "key" query parameter.
	// Env: IDENTITY_API_KEY
	APIKey string `env:"API_KEY"`
}

// Storage holds local file-system settings.
type Storage struct {
	// DownloadDir is where encoded artifacts are saved.
	// Env: STORAGE_DOWNLOAD_DIR
	DownloadDir string `env:"DOWNLOAD_DIR"`
}

// Web holds settings of the local web front end.
type Web struct {
	// Address is the listen address in "host:port" format.
	// Env: WEB_ADDRESS
	Address string `env:"ADDRESS"`
}

// Workers holds configuration for background jobs.
type Workers struct {
	// TokenRefreshInterval is how often the refresh job checks the ID token.
	// Env: WORKERS_TOKEN_REFRESH_INTERVAL
	TokenRefreshInterval time.Duration `env:"TOKEN_REFRESH_INTERVAL"`

	// TokenRefreshWindow is how close to expiry a token gets refreshed.
	// Env: WORKERS_TOKEN_REFRESH_WINDOW
	TokenRefreshWindow time.Duration `env:"TOKEN_REFRESH_WINDOW"`
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Adapter: Adapter{
			CodecAddress:   DefaultCodecAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Identity: Identity{
			Address:      DefaultIdentityAddress,
			TokenAddress: DefaultIdentityTokenAddress,
		},
		Storage: Storage{DownloadDir: DefaultDownloadDir},
		Web:     Web{Address: DefaultWebAddress},
		Workers: Workers{
			TokenRefreshInterval: DefaultTokenRefreshInterval,
			TokenRefreshWindow:   DefaultTokenRefreshWindow,
		},
	}
}

// GetStructuredConfig loads and merges the configuration from all sources.
// args are the command-line arguments without the program name.
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder(args).
		withDefaults().
		withDotEnv().
		withEnv().
		withFlags().
		withJSON().
		build()
}
