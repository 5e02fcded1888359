package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidRemoteConfigs indicates invalid remote store settings
	// (for example, sync enabled without an endpoint).
	ErrInvalidRemoteConfigs = errors.New("invalid remote configuration")
	// ErrInvalidSyncConfigs indicates invalid sync loop settings
	// (for example, a negative pull interval or inverted backoff bounds).
	ErrInvalidSyncConfigs = errors.New("invalid sync configuration")
)
