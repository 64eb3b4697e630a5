// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the shape of the optional JSON config file.
type StructuredJSONConfig struct {
	Adapter struct {
		CodecAddress   string   `json:"codec_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Identity struct {
		Address      string `json:"address"`
		TokenAddress string `json:"token_address"`
		APIKey       string `json:"api_key"`
	} `json:"identity,omitempty"`

	Storage struct {
		DownloadDir string `json:"download_dir"`
	} `json:"storage,omitempty"`

	Web struct {
		Address string `json:"address"`
	} `json:"web,omitempty"`

	Workers struct {
		TokenRefreshInterval Duration `json:"token_refresh_interval"`
		TokenRefreshWindow   Duration `json:"token_refresh_window"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Adapter: Adapter{
			CodecAddress:   jsonCfg.Adapter.CodecAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Identity: Identity{
			Address:      jsonCfg.Identity.Address,
			TokenAddress: jsonCfg.Identity.TokenAddress,
			APIKey:       jsonCfg.Identity.APIKey,
		},
		Storage: Storage{DownloadDir: jsonCfg.Storage.DownloadDir},
		Web:     Web{Address: jsonCfg.Web.Address},
		Workers: Workers{
			TokenRefreshInterval: time.Duration(jsonCfg.Workers.TokenRefreshInterval),
			TokenRefreshWindow:   time.Duration(jsonCfg.Workers.TokenRefreshWindow),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as from nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
