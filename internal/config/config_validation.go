// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] can be used:
// both file paths are set and distinct, and the log level is known to
// zerolog.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Vault.Path == "" {
		return ErrInvalidVaultConfigs
	}

	if cfg.Session.Path == "" {
		return ErrInvalidSessionConfigs
	}

	if filepath.Clean(cfg.Vault.Path) == filepath.Clean(cfg.Session.Path) {
		return fmt.Errorf("%w: session path must differ from vault path", ErrInvalidSessionConfigs)
	}

	if cfg.Log.Path == "" {
		return ErrInvalidLogConfigs
	}

	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
	}

	return nil
}
