// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-wiki-sync application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line
// flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the data directory,
	// writer identity, and the application version.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the local durable store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP
	// server that the editor surface talks to.
	Server Server `envPrefix:"SERVER_"`

	// Remote holds the shared object store endpoint and credentials.
	Remote Remote `envPrefix:"REMOTE_"`

	// Sync holds timing and retry settings for the background sync loop.
	Sync Sync `envPrefix:"SYNC_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// DataDir is the directory where per-collection database files live.
	// Env: APP_DATA_DIR
	DataDir string `env:"DATA_DIR"`

	// WriterID identifies this device in the remote index. When empty, a
	// random identity is generated at startup and persisted in DataDir.
	// Env: APP_WRITER_ID
	WriterID string `env:"WRITER_ID"`

	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Exposed via the sync status endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "127.0.0.1:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration for the local persistence backend.
type Storage struct {
	// DB holds the SQLite database settings.
	DB StorageDB `envPrefix:"DB_"`
}

// StorageDB holds connection settings for the local SQLite database.
type StorageDB struct {
	// Path is the filesystem path of the database file. Created on first
	// open. When empty, a per-collection path under App.DataDir is used.
	// Env: STORAGE_DB_PATH
	Path string `env:"PATH"`
}

// Remote holds the shared object store endpoint settings.
type Remote struct {
	// Endpoint is the base URL of the remote object store
	// (e.g. "https://store.example.com").
	// Env: REMOTE_ENDPOINT
	Endpoint string `env:"ENDPOINT"`

	// Token is the bearer credential sent with every remote request.
	// Env: REMOTE_TOKEN
	Token string `env:"TOKEN"`

	// Prefix is the namespace prepended to every remote key, shared by
	// all devices syncing the same wiki.
	// Env: REMOTE_PREFIX
	Prefix string `env:"PREFIX"`

	// Timeout bounds every remote request (e.g. "15s").
	// Env: REMOTE_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`

	// Enabled turns remote synchronization on. When false the engine runs
	// purely locally and pushes become no-ops.
	// Env: REMOTE_ENABLED
	Enabled bool `env:"ENABLED"`
}

// Sync holds timing and retry settings for the background sync loop.
type Sync struct {
	// PullInterval is the period of the background pull ticker.
	// Env: SYNC_PULL_INTERVAL
	PullInterval time.Duration `env:"PULL_INTERVAL"`

	// PushTimeout bounds a single foreground push attempt.
	// Env: SYNC_PUSH_TIMEOUT
	PushTimeout time.Duration `env:"PUSH_TIMEOUT"`

	// MaxRetries is how many extra attempts an atomic index update gets
	// before giving up on a contended write.
	// Env: SYNC_MAX_RETRIES
	MaxRetries int `env:"MAX_RETRIES"`

	// BackoffMin and BackoffMax bound the exponential backoff between
	// contended index update attempts.
	// Env: SYNC_BACKOFF_MIN / SYNC_BACKOFF_MAX
	BackoffMin time.Duration `env:"BACKOFF_MIN"`
	BackoffMax time.Duration `env:"BACKOFF_MAX"`

	// RetryCeiling is the queue retry count past which a stuck entry is
	// surfaced in the sync status instead of retried silently. The entry
	// is never dropped.
	// Env: SYNC_RETRY_CEILING
	RetryCeiling int `env:"RETRY_CEILING"`

	// DebounceWindow is how long after the last system-record change the
	// engine waits before exporting a wiki snapshot.
	// Env: SYNC_DEBOUNCE_WINDOW
	DebounceWindow time.Duration `env:"DEBOUNCE_WINDOW"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
