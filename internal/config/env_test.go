// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"BACKEND_URL":     "https://api.casamento.example",
		"REQUEST_TIMEOUT": "30s",

		"STORAGE_DRIVER": "file",
		"STORAGE_DSN":    "/tmp/session.json",

		"LOG_LEVEL": "warn",
		"LOG_FILE":  "/tmp/guestadmin.log",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "https://api.casamento.example", cfg.Adapter.BackendURL)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "file", cfg.Storage.Driver)
	assert.Equal(t, "/tmp/session.json", cfg.Storage.DSN)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "/tmp/guestadmin.log", cfg.Log.File)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{"REQUEST_TIMEOUT": "not-a-duration"})

	err := parseEnv(&StructuredConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

func TestLoadDotEnv(t *testing.T) {
	const key = "GUESTADMIN_DOTENV_PROBE"
	t.Cleanup(func() { _ = os.Unsetenv(key) })

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(key+"=from-dotenv\n"), 0o600))

	require.NoError(t, loadDotEnv(path))
	assert.Equal(t, "from-dotenv", os.Getenv(key))
}

func TestLoadDotEnv_ProcessEnvWins(t *testing.T) {
	const key = "GUESTADMIN_DOTENV_KEEP"
	t.Setenv(key, "from-process")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(key+"=from-dotenv\n"), 0o600))

	require.NoError(t, loadDotEnv(path))
	assert.Equal(t, "from-process", os.Getenv(key))
}

func TestLoadDotEnv_MissingFileIgnored(t *testing.T) {
	assert.NoError(t, loadDotEnv(filepath.Join(t.TempDir(), ".env")))
	assert.NoError(t, loadDotEnv(""))
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}
