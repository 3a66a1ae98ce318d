// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or one of the sentinel errors
// from errors.go otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.Path == "" || strings.Contains(cfg.Storage.DB.Path, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Storage.State.Path == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Monitor.PollInterval <= 0 || cfg.Monitor.MaxTextSize <= 0 {
		return ErrInvalidMonitorConfigs
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.App.PreviewLength <= 0 || strings.TrimSpace(cfg.App.DefaultSessionName) == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}
