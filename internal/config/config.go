// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"time"
)

// Default values applied as the lowest-priority configuration layer so the
// application starts without any flags, env vars, or config file present.
const (
	defaultTokenSignKey       = "clip-keeper-local-secret"
	defaultTokenIssuer        = "clip-keeper"
	defaultTokenDuration      = 720 * time.Hour
	defaultSessionName        = "Основная"
	defaultPreviewLength      = 100
	defaultLogLevel           = "debug"
	defaultPollInterval       = time.Second
	defaultMaxTextSize        = ByteSize(1 << 20)
	defaultDatabaseFileName   = "clipkeeper.db"
	defaultStateFileName      = "clipkeeper_state.json"
)

// StructuredConfig is the top-level configuration container for the
// clip-keeper application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// an optional JSON file, and built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
//
// All environment lookups additionally carry the global "CLIPKEEPER_" prefix,
// e.g. CLIPKEEPER_APP_TOKEN_SIGN_KEY or CLIPKEEPER_STORAGE_DB_PATH.
type StructuredConfig struct {
	// App holds application-level settings such as token parameters,
	// the default session name, and presentation limits.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the persistence backends: the
	// embedded database file and the JSON client state file.
	Storage Storage `envPrefix:"STORAGE_"`

	// Monitor holds the clipboard polling settings.
	Monitor Monitor `envPrefix:"MONITOR_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged below the values
	// already loaded from environment variables and flags.
	// Populated via the CLIPKEEPER_CONFIG environment variable or the
	// -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control the
// remember-me token lifecycle and presentation defaults.
type App struct {
	// TokenSignKey is the secret key used to sign and verify the local
	// remember-me JWT. Env: CLIPKEEPER_APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued token and
	// validated when a stored token is restored.
	// Env: CLIPKEEPER_APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a remember-me token remains valid
	// after issuance (e.g. "720h").
	// Env: CLIPKEEPER_APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// DefaultSessionName is the name of the session created automatically
	// for users that have no live sessions.
	// Env: CLIPKEEPER_APP_DEFAULT_SESSION_NAME
	DefaultSessionName string `env:"DEFAULT_SESSION_NAME"`

	// PreviewLength is the maximum number of runes shown for a text entry
	// in history lists. Env: CLIPKEEPER_APP_PREVIEW_LENGTH
	PreviewLength int `env:"PREVIEW_LENGTH"`

	// LogLevel selects the minimum emitted log level
	// ("debug", "info", "warn", "error").
	// Env: CLIPKEEPER_APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Storage groups the configuration for all persistence backends used by the
// application.
type Storage struct {
	// DB holds the embedded database settings.
	DB DB `envPrefix:"DB_"`

	// State holds the JSON client state file settings.
	State State `envPrefix:"STATE_"`
}

// DB holds settings for the embedded SQLite database.
type DB struct {
	// Path is the filesystem path of the SQLite database file. The file is
	// created on first launch. In-memory databases are rejected because
	// the whole point of the application is a durable local history.
	// Env: CLIPKEEPER_STORAGE_DB_PATH
	Path string `env:"PATH"`
}

// State holds settings for the local client state file
// (install ID, remember-me token, last selected sessions).
type State struct {
	// Path is the filesystem path of the JSON state file.
	// Env: CLIPKEEPER_STORAGE_STATE_PATH
	Path string `env:"PATH"`
}

// Monitor holds the clipboard polling settings.
type Monitor struct {
	// PollInterval is the delay between consecutive clipboard samples
	// (e.g. "1s", "500ms"). Env: CLIPKEEPER_MONITOR_POLL_INTERVAL
	PollInterval time.Duration `env:"POLL_INTERVAL"`

	// MaxTextSize caps the stored size of a text entry. Larger text is cut
	// at a rune boundary and a truncation marker is appended. Accepts plain
	// byte counts and human-readable sizes ("1MB", "512KB").
	// Env: CLIPKEEPER_MONITOR_MAX_TEXT_SIZE
	MaxTextSize ByteSize `env:"MAX_TEXT_SIZE"`
}

// GetConfig loads, merges, and validates the application configuration from
// all available sources in the following priority order (earlier sources win
// for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}

// defaultConfig returns the built-in defaults merged in as the last, lowest
// priority source. Data files live next to the executable, same as the log
// file, so a portable install keeps everything in one directory.
func defaultConfig() *StructuredConfig {
	var dir string
	if execPath, err := os.Executable(); err == nil {
		dir = filepath.Dir(execPath)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:       defaultTokenSignKey,
			TokenIssuer:        defaultTokenIssuer,
			TokenDuration:      defaultTokenDuration,
			DefaultSessionName: defaultSessionName,
			PreviewLength:      defaultPreviewLength,
			LogLevel:           defaultLogLevel,
		},
		Storage: Storage{
			DB:    DB{Path: filepath.Join(dir, defaultDatabaseFileName)},
			State: State{Path: filepath.Join(dir, defaultStateFileName)},
		},
		Monitor: Monitor{
			PollInterval: defaultPollInterval,
			MaxTextSize:  defaultMaxTextSize,
		},
	}
}
