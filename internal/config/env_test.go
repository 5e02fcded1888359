// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_DATA_DIR":  "/var/wiki",
		"APP_WRITER_ID": "laptop-1",
		"APP_VERSION":   "1.2.3",

		"SERVER_ADDRESS":         "localhost:8080",
		"SERVER_REQUEST_TIMEOUT": "30s",

		// Storage has nested prefixes: STORAGE_ + DB_
		"STORAGE_DB_PATH": "/var/wiki/notes.db",

		"REMOTE_ENDPOINT": "https://store.example.com",
		"REMOTE_TOKEN":    "secret-token",
		"REMOTE_PREFIX":   "wikis/home",
		"REMOTE_TIMEOUT":  "15s",
		"REMOTE_ENABLED":  "true",

		"SYNC_PULL_INTERVAL":   "45s",
		"SYNC_PUSH_TIMEOUT":    "10s",
		"SYNC_MAX_RETRIES":     "6",
		"SYNC_BACKOFF_MIN":     "500ms",
		"SYNC_BACKOFF_MAX":     "20s",
		"SYNC_RETRY_CEILING":   "12",
		"SYNC_DEBOUNCE_WINDOW": "3s",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "/var/wiki", cfg.App.DataDir)
	assert.Equal(t, "laptop-1", cfg.App.WriterID)
	assert.Equal(t, "1.2.3", cfg.App.Version)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)

	assert.Equal(t, "/var/wiki/notes.db", cfg.Storage.DB.Path)

	assert.Equal(t, "https://store.example.com", cfg.Remote.Endpoint)
	assert.Equal(t, "secret-token", cfg.Remote.Token)
	assert.Equal(t, "wikis/home", cfg.Remote.Prefix)
	assert.Equal(t, 15*time.Second, cfg.Remote.Timeout)
	assert.True(t, cfg.Remote.Enabled)

	assert.Equal(t, 45*time.Second, cfg.Sync.PullInterval)
	assert.Equal(t, 10*time.Second, cfg.Sync.PushTimeout)
	assert.Equal(t, 6, cfg.Sync.MaxRetries)
	assert.Equal(t, 500*time.Millisecond, cfg.Sync.BackoffMin)
	assert.Equal(t, 20*time.Second, cfg.Sync.BackoffMax)
	assert.Equal(t, 12, cfg.Sync.RetryCeiling)
	assert.Equal(t, 3*time.Second, cfg.Sync.DebounceWindow)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"SERVER_ADDRESS":  "localhost:8080",
		"STORAGE_DB_PATH": "/tmp/wiki.db",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, "/tmp/wiki.db", cfg.Storage.DB.Path)

	// незаданные поля остаются нулевыми
	assert.Empty(t, cfg.Remote.Endpoint)
	assert.Zero(t, cfg.Sync.PullInterval)
	assert.False(t, cfg.Remote.Enabled)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{
		"SYNC_PULL_INTERVAL": "not-a-duration",
	})

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	assert.Error(t, err)
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		require.NoError(t, os.Setenv(k, v))
		t.Cleanup(func() { _ = os.Unsetenv(k) })
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"CONFIG",
		"APP_DATA_DIR",
		"APP_WRITER_ID",
		"APP_VERSION",
		"SERVER_ADDRESS",
		"SERVER_REQUEST_TIMEOUT",
		"STORAGE_DB_PATH",
		"REMOTE_ENDPOINT",
		"REMOTE_TOKEN",
		"REMOTE_PREFIX",
		"REMOTE_TIMEOUT",
		"REMOTE_ENABLED",
		"SYNC_PULL_INTERVAL",
		"SYNC_PUSH_TIMEOUT",
		"SYNC_MAX_RETRIES",
		"SYNC_BACKOFF_MIN",
		"SYNC_BACKOFF_MAX",
		"SYNC_RETRY_CEILING",
		"SYNC_DEBOUNCE_WINDOW",
	}
	for _, k := range keys {
		require.NoError(t, os.Unsetenv(k))
	}
}
