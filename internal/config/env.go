// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from environment variables via the `env` and
// `envPrefix` tags on [StructuredConfig] and its nested sections, so a
// deployment can be configured entirely through APP_*, STORAGE_DB_*,
// SERVER_*, REMOTE_* and SYNC_* variables without a config file.
//
// Returns a wrapped error if env.Parse fails (e.g. a value cannot be
// converted to the target type, such as a malformed SYNC_PULL_INTERVAL).
func parseEnv(cfg any) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
