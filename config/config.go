// Copyright 2026 The Altyapi Authors
// SPDX-License-Identifier: Apache-2.0

// Package config loads process-wide settings from an optional YAML file and
// the environment. Credentials resolve once at startup; per-query overrides
// are the caller's business (see infra.ResolveCredentials).
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Config is the process-wide configuration.
type Config struct {
	// Listen is the address of the web API.
	Listen string `mapstructure:"listen"`

	// DbPath is the directory holding the carrier address-code database.
	DbPath string `mapstructure:"db_path"`

	// HTTPTrace dumps remote-lookup transactions to stderr.
	HTTPTrace bool `mapstructure:"http_trace"`

	Wiradius WiradiusConfig `mapstructure:"wiradius"`
}

// WiradiusConfig carries the remote-lookup credentials and tuning.
type WiradiusConfig struct {
	APICode        string `mapstructure:"api_code"`
	UniqCode       string `mapstructure:"uniq_code"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
	BaseURL        string `mapstructure:"base_url"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("listen", "127.0.0.1:8080")
	v.SetDefault("db_path", "./db")
	v.SetDefault("wiradius.timeout_seconds", 20)
	v.SetDefault("wiradius.base_url", "https://api.wiradius.com")
}

// Load reads the configuration. With an empty path it looks for an optional
// altyapi.yaml in the working directory; a missing file is fine, a broken
// one is not. WIRADIUS_API_CODE and WIRADIUS_UNIQ_CODE always win over the
// file.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	// historical variable names, predating the config file
	_ = v.BindEnv("wiradius.api_code", "WIRADIUS_API_CODE")
	_ = v.BindEnv("wiradius.uniq_code", "WIRADIUS_UNIQ_CODE")

	if path != "" {
		v.SetConfigFile(path)

		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	} else {
		v.SetConfigName("altyapi")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")

		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("reading config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return &cfg, nil
}
