package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags_AllFields(t *testing.T) {
	cfg, err := parseFlags([]string{
		"-u", "http://127.0.0.1:8000",
		"-request-timeout", "20s",
		"-storage-driver", "file",
		"-storage-dsn", "/tmp/s.json",
		"-log-level", "debug",
		"-log-file", "/tmp/l.log",
		"-config", "/tmp/c.json",
	})
	require.NoError(t, err)

	assert.Equal(t, "http://127.0.0.1:8000", cfg.Adapter.BackendURL)
	assert.Equal(t, 20*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "file", cfg.Storage.Driver)
	assert.Equal(t, "/tmp/s.json", cfg.Storage.DSN)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/l.log", cfg.Log.File)
	assert.Equal(t, "/tmp/c.json", cfg.JSONFilePath)
}

func TestParseFlags_ShortConfigAlias(t *testing.T) {
	cfg, err := parseFlags([]string{"-c", "/tmp/c.json"})
	require.NoError(t, err)
	assert.Equal(t, "/tmp/c.json", cfg.JSONFilePath)
}

func TestParseFlags_Empty(t *testing.T) {
	cfg, err := parseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown flag", args: []string{"-a", "localhost:8080"}},
		{name: "bad duration", args: []string{"-request-timeout", "soon"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseFlags(tt.args)
			require.Error(t, err)
		})
	}
}
