// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validClientConfig() *ClientConfig {
	return newClientConfig(&StructuredConfig{
		Adapter:  Adapter{CodecAddress: "http://127.0.0.1:5000", RequestTimeout: time.Second},
		Identity: Identity{Address: "https://idp", TokenAddress: "https://token", APIKey: "key"},
		Storage:  Storage{DownloadDir: "."},
		Workers:  Workers{TokenRefreshInterval: time.Minute, TokenRefreshWindow: time.Minute},
	})
}

func TestClientConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *ClientConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(cfg *ClientConfig) {}},
		{name: "codec address without scheme", mutate: func(cfg *ClientConfig) { cfg.Adapter.CodecAddress = "127.0.0.1:5000" }, wantErr: ErrInvalidAdapterConfigs},
		{name: "zero timeout", mutate: func(cfg *ClientConfig) { cfg.Adapter.RequestTimeout = 0 }, wantErr: ErrInvalidAdapterConfigs},
		{name: "missing api key", mutate: func(cfg *ClientConfig) { cfg.Identity.APIKey = " " }, wantErr: ErrInvalidIdentityConfigs},
		{name: "bad identity address", mutate: func(cfg *ClientConfig) { cfg.Identity.Address = "ftp://idp" }, wantErr: ErrInvalidIdentityConfigs},
		{name: "empty download dir", mutate: func(cfg *ClientConfig) { cfg.Storage.DownloadDir = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "zero refresh interval", mutate: func(cfg *ClientConfig) { cfg.Workers.TokenRefreshInterval = 0 }, wantErr: ErrInvalidWorkerConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validClientConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestWebConfig_Validate(t *testing.T) {
	cfg := &WebConfig{ClientConfig: *validClientConfig(), Address: "127.0.0.1:3000"}
	require.NoError(t, cfg.validate())

	cfg.Address = "nonsense"
	require.ErrorIs(t, cfg.validate(), ErrInvalidWebConfigs)

	cfg.Address = "127.0.0.1:3000"
	cfg.Adapter.RequestTimeout = 0
	require.ErrorIs(t, cfg.validate(), ErrInvalidAdapterConfigs)
}

func TestGetClientConfig(t *testing.T) {
	unsetForTest(t, configEnvKeys...)
	t.Chdir(t.TempDir())

	_, err := GetClientConfig(nil)
	require.ErrorIs(t, err, ErrInvalidIdentityConfigs)

	cfg, err := GetClientConfig([]string{"-api-key", "key"})
	require.NoError(t, err)
	assert.Equal(t, DefaultCodecAddress, cfg.Adapter.CodecAddress)
	assert.Equal(t, "key", cfg.Identity.APIKey)
}

func TestGetWebConfig(t *testing.T) {
	unsetForTest(t, configEnvKeys...)
	t.Chdir(t.TempDir())

	cfg, err := GetWebConfig([]string{"-api-key", "key", "-a", "localhost:3100"})
	require.NoError(t, err)
	assert.Equal(t, "localhost:3100", cfg.Address)
	assert.Equal(t, DefaultRequestTimeout, cfg.Adapter.RequestTimeout)
}
