// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"os"

	"dario.cat/mergo"
)

type configBuilder struct {
	configs []*StructuredConfig

	// flags are parsed eagerly: -env-file must be known before the
	// environment is read, while the flag values themselves are merged later.
	flags *StructuredConfig
	err   error
}

func newConfigBuilder(args []string) *configBuilder {
	b := &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
	}

	flags, err := parseFlags(args)
	if err != nil {
		b.err = err
		flags = &StructuredConfig{}
	}
	b.flags = flags

	return b
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occurred during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, nil
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append(b.configs, defaultConfig())
	return b
}

// withDotEnv loads the dotenv file into the process environment. The file
// named by -env-file or ENV_FILE must exist; the default one is optional.
func (b *configBuilder) withDotEnv() *configBuilder {
	path, explicit := b.flags.EnvFile, true
	if path == "" {
		path = os.Getenv("ENV_FILE")
	}
	if path == "" {
		path, explicit = DefaultEnvFile, false
	}

	err := loadDotEnv(path)
	if err != nil && (explicit || !errors.Is(err, os.ErrNotExist)) {
		b.err = errors.Join(b.err, err)
	}

	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags() *configBuilder {
	b.configs = append(b.configs, b.flags)
	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string
	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
		}
	}

	if jsonPath == "" {
		return b
	}

	jsonCfg, err := parseJSON(jsonPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.configs = append(b.configs, jsonCfg)

	return b
}
