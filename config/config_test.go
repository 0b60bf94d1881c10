// Copyright 2026 The Altyapi Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "altyapi.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8080", cfg.Listen)
	assert.Equal(t, "./db", cfg.DbPath)
	assert.False(t, cfg.HTTPTrace)
	assert.Equal(t, 20, cfg.Wiradius.TimeoutSeconds)
	assert.Equal(t, "https://api.wiradius.com", cfg.Wiradius.BaseURL)
	assert.Empty(t, cfg.Wiradius.APICode)
	assert.Empty(t, cfg.Wiradius.UniqCode)
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfigFile(t, `
listen: "0.0.0.0:9090"
db_path: "/var/lib/altyapi"
http_trace: true
wiradius:
  api_code: "abc"
  uniq_code: "def"
  timeout_seconds: 5
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9090", cfg.Listen)
	assert.Equal(t, "/var/lib/altyapi", cfg.DbPath)
	assert.True(t, cfg.HTTPTrace)
	assert.Equal(t, "abc", cfg.Wiradius.APICode)
	assert.Equal(t, "def", cfg.Wiradius.UniqCode)
	assert.Equal(t, 5, cfg.Wiradius.TimeoutSeconds)

	// unset keys still fall back to defaults
	assert.Equal(t, "https://api.wiradius.com", cfg.Wiradius.BaseURL)
}

func TestLoadEnvironmentWinsOverFile(t *testing.T) {
	path := writeConfigFile(t, `
wiradius:
  api_code: "file-api"
  uniq_code: "file-uniq"
`)

	t.Setenv("WIRADIUS_API_CODE", "env-api")
	t.Setenv("WIRADIUS_UNIQ_CODE", "env-uniq")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "env-api", cfg.Wiradius.APICode)
	assert.Equal(t, "env-uniq", cfg.Wiradius.UniqCode)
}

func TestLoadEnvironmentWithoutFile(t *testing.T) {
	t.Setenv("WIRADIUS_API_CODE", "env-api")
	t.Setenv("WIRADIUS_UNIQ_CODE", "env-uniq")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "env-api", cfg.Wiradius.APICode)
	assert.Equal(t, "env-uniq", cfg.Wiradius.UniqCode)
}

func TestLoadExplicitFileMustExist(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "yok.yaml"))
	assert.Error(t, err)
}

func TestLoadBrokenFile(t *testing.T) {
	path := writeConfigFile(t, "listen: [unclosed")

	_, err := Load(path)
	assert.Error(t, err)
}
