// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Defaults applied to fields left unset by every configuration source.
const (
	DefaultHTTPAddress    = "127.0.0.1:8080"
	DefaultPullInterval   = 30 * time.Second
	DefaultPushTimeout    = 20 * time.Second
	DefaultRequestTimeout = 30 * time.Second
	DefaultRemoteTimeout  = 15 * time.Second
	DefaultMaxRetries     = 4
	DefaultBackoffMin     = 250 * time.Millisecond
	DefaultBackoffMax     = 10 * time.Second
	DefaultRetryCeiling   = 8
	DefaultDebounceWindow = 5 * time.Second
	DefaultDataDir        = "./data"
)

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.DataDir == "" {
		cfg.App.DataDir = DefaultDataDir
	}
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Remote.Timeout == 0 {
		cfg.Remote.Timeout = DefaultRemoteTimeout
	}
	if cfg.Sync.PullInterval == 0 {
		cfg.Sync.PullInterval = DefaultPullInterval
	}
	if cfg.Sync.PushTimeout == 0 {
		cfg.Sync.PushTimeout = DefaultPushTimeout
	}
	if cfg.Sync.MaxRetries == 0 {
		cfg.Sync.MaxRetries = DefaultMaxRetries
	}
	if cfg.Sync.BackoffMin == 0 {
		cfg.Sync.BackoffMin = DefaultBackoffMin
	}
	if cfg.Sync.BackoffMax == 0 {
		cfg.Sync.BackoffMax = DefaultBackoffMax
	}
	if cfg.Sync.RetryCeiling == 0 {
		cfg.Sync.RetryCeiling = DefaultRetryCeiling
	}
	if cfg.Sync.DebounceWindow == 0 {
		cfg.Sync.DebounceWindow = DefaultDebounceWindow
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Remote.Enabled && cfg.Remote.Endpoint == "" {
		return ErrInvalidRemoteConfigs
	}

	if cfg.Sync.PullInterval < 0 || cfg.Sync.BackoffMin > cfg.Sync.BackoffMax {
		return ErrInvalidSyncConfigs
	}

	return nil
}
