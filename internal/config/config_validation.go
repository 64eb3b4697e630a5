// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net"
	"net/url"
	"strings"
)

func (cfg *ClientConfig) validate() error {
	if !isHTTPURL(cfg.Adapter.CodecAddress) || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if !isHTTPURL(cfg.Identity.Address) || !isHTTPURL(cfg.Identity.TokenAddress) {
		return ErrInvalidIdentityConfigs
	}
	if strings.TrimSpace(cfg.Identity.APIKey) == "" {
		return fmt.Errorf("%w: api key is required", ErrInvalidIdentityConfigs)
	}

	if strings.TrimSpace(cfg.Storage.DownloadDir) == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Workers.TokenRefreshInterval <= 0 || cfg.Workers.TokenRefreshWindow < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *WebConfig) validate() error {
	if err := cfg.ClientConfig.validate(); err != nil {
		return err
	}

	if _, _, err := net.SplitHostPort(cfg.Address); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidWebConfigs, err)
	}

	return nil
}

func isHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
