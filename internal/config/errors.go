package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty database path or an in-memory database).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a missing token sign key or zero preview length).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidMonitorConfigs indicates invalid clipboard monitor settings
	// (for example, a non-positive poll interval or text size cap).
	ErrInvalidMonitorConfigs = errors.New("invalid monitor configuration")
)
