package config

import (
	"os"
	"path/filepath"
)

const (
	// DefaultVaultPath is relative to the working directory.
	DefaultVaultPath = "vault.enc"
	// DefaultLogLevel is used when no source sets a level.
	DefaultLogLevel = "info"

	defaultSessionFile = "encnotes.session"
	defaultLogFile     = "encnotes.log"
)

// defaultConfig is the lowest-priority source.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Vault: Vault{
			Path: DefaultVaultPath,
		},
		Session: Session{
			Path: filepath.Join(os.TempDir(), defaultSessionFile),
		},
		Log: Log{
			Path:  filepath.Join(os.TempDir(), defaultLogFile),
			Level: DefaultLogLevel,
		},
	}
}
