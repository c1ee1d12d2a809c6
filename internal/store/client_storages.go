package store

import (
	"github.com/MKhiriev/enc-notes/internal/config"
	"github.com/MKhiriev/enc-notes/internal/logger"
)

// ClientStorages groups the file-backed storages used by the CLI into a
// single value that can be passed to the service layer and the client App.
type ClientStorages struct {
	// VaultStorage holds the encrypted vault envelope.
	VaultStorage VaultFileStorage
	// SessionStorage caches the master password between invocations.
	SessionStorage SessionStorage
}

// NewClientStorages wires the storages to the paths in cfg. Nothing is read
// or created on disk here.
func NewClientStorages(cfg *config.StructuredConfig, logger *logger.Logger) *ClientStorages {
	logger.Debug().
		Str("vault", cfg.Vault.Path).
		Str("session", cfg.Session.Path).
		Msg("creating new storages...")

	return &ClientStorages{
		VaultStorage:   NewVaultFileStorage(cfg.Vault.Path, logger),
		SessionStorage: NewSessionFileStorage(cfg.Session.Path, logger),
	}
}
