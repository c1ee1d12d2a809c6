// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"github.com/spf13/pflag"
)

// StructuredConfig is the top-level configuration container for encnotes. It
// is populated by merging command-line flags, environment variables, an
// optional JSON file and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
//
// Every variable is additionally prefixed with ENCNOTES_.
type StructuredConfig struct {
	// Vault holds the location of the encrypted vault file.
	Vault Vault `envPrefix:"VAULT_"`

	// Session holds the location of the session cache file.
	Session Session `envPrefix:"SESSION_"`

	// Log holds the log destination and verbosity.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via ENCNOTES_CONFIG or the -c / --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Vault holds settings of the encrypted vault file.
type Vault struct {
	// Path is the vault file location (e.g. "vault.enc").
	// Env: ENCNOTES_VAULT_PATH
	Path string `env:"PATH"`
}

// Session holds settings of the session cache, a plaintext file that keeps
// the master password between commands after `login`.
type Session struct {
	// Path is the session file location.
	// Env: ENCNOTES_SESSION_PATH
	Path string `env:"PATH"`
}

// Log holds logger settings.
type Log struct {
	// Path is the file JSON log lines are appended to.
	// Env: ENCNOTES_LOG_PATH
	Path string `env:"PATH"`

	// Level is a zerolog level name ("debug", "info", "warn", ...).
	// Env: ENCNOTES_LOG_LEVEL
	Level string `env:"LEVEL"`
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources in the following priority order (earlier sources
// win for non-zero fields):
//  1. Command-line flags registered by [RegisterFlags] on fs
//  2. Environment variables
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(fs *pflag.FlagSet) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(fs).
		withEnv().
		withJSON().
		withDefaults().
		build()
}
