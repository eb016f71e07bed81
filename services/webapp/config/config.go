// Copyright (C) 2025 DocuMedic (tactualcoder24@gmail.com)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package config loads the webapp service configuration from an
// optional YAML file with environment variable overrides.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config is the webapp service configuration.
type Config struct {
	// Port the HTTP API listens on. Env: DOCUMEDIC_PORT.
	Port int `yaml:"port"`

	// StoreURL is the remote blob endpoint holding the whole document.
	// Env: DOCUMEDIC_STORE_URL.
	StoreURL string `yaml:"store_url"`

	// LogDir enables file logging when set. Env: DOCUMEDIC_LOG_DIR.
	LogDir string `yaml:"log_dir"`

	// LogLevel: debug, info, warn, error. Env: DOCUMEDIC_LOG_LEVEL.
	LogLevel string `yaml:"log_level"`

	// LegacyTimestampIDs switches id generation back to the original
	// millisecond-timestamp scheme. Collides under rapid inserts; only
	// for byte-compatibility with documents written by the old client.
	LegacyTimestampIDs bool `yaml:"legacy_timestamp_ids"`
}

// Default returns the configuration used when no file and no env
// overrides are present.
func Default() Config {
	return Config{
		Port:     12310,
		StoreURL: "http://localhost:3001/document",
		LogLevel: "info",
	}
}

// Load reads the YAML file at path (if path is non-empty and the file
// exists), then applies environment overrides. A missing file is not
// an error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// Fine: defaults + env.
		case err != nil:
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(raw, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	applyEnv(&cfg)

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("invalid port %d", cfg.Port)
	}
	if cfg.StoreURL == "" {
		return Config{}, fmt.Errorf("store_url cannot be empty")
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("DOCUMEDIC_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Port = port
		}
	}
	if v := os.Getenv("DOCUMEDIC_STORE_URL"); v != "" {
		cfg.StoreURL = v
	}
	if v := os.Getenv("DOCUMEDIC_LOG_DIR"); v != "" {
		cfg.LogDir = v
	}
	if v := os.Getenv("DOCUMEDIC_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}
