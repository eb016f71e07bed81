// Copyright (C) 2025 DocuMedic (tactualcoder24@gmail.com)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing file must not be an error: %v", err)
	}
	if cfg.Port != Default().Port || cfg.StoreURL != Default().StoreURL {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoadFromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "documedic.yaml")
	body := "port: 9999\nstore_url: http://store:3001/doc\nlog_level: debug\nlegacy_timestamp_ids: true\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Port != 9999 {
		t.Errorf("port = %d", cfg.Port)
	}
	if cfg.StoreURL != "http://store:3001/doc" {
		t.Errorf("store_url = %q", cfg.StoreURL)
	}
	if !cfg.LegacyTimestampIDs {
		t.Error("legacy_timestamp_ids not parsed")
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "documedic.yaml")
	if err := os.WriteFile(path, []byte("port: 9999\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("DOCUMEDIC_PORT", "8111")
	t.Setenv("DOCUMEDIC_STORE_URL", "http://env-store/doc")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Port != 8111 {
		t.Errorf("env should win, port = %d", cfg.Port)
	}
	if cfg.StoreURL != "http://env-store/doc" {
		t.Errorf("env should win, store_url = %q", cfg.StoreURL)
	}
}

func TestMalformedYAMLIsAnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("port: [not a number"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("malformed YAML must fail loudly")
	}
}

func TestInvalidPortRejected(t *testing.T) {
	t.Setenv("DOCUMEDIC_PORT", "-1")
	if _, err := Load(""); err == nil {
		t.Error("negative port must be rejected")
	}
}
