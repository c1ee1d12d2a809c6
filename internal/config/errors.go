package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidVaultConfigs indicates invalid vault settings
	// (for example, an empty vault path).
	ErrInvalidVaultConfigs = errors.New("invalid vault configuration")
	// ErrInvalidSessionConfigs indicates invalid session cache settings
	// (for example, a session path that points at the vault file).
	ErrInvalidSessionConfigs = errors.New("invalid session configuration")
	// ErrInvalidLogConfigs indicates invalid logger settings
	// (for example, an unknown log level).
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
)
