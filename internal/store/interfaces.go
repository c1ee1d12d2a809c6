package store

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// VaultFileStorage holds the encoded envelope of the vault. It deals in
// opaque bytes only; encryption happens in the service layer.
type VaultFileStorage interface {
	// Exists reports whether the vault file is present.
	Exists(ctx context.Context) (bool, error)
	// Load returns the whole file. A missing file yields ErrVaultFileNotFound.
	Load(ctx context.Context) ([]byte, error)
	// Save replaces the whole file in a single step.
	Save(ctx context.Context, data []byte) error
}

// SessionStorage caches the master password between CLI invocations.
type SessionStorage interface {
	// GetPassword returns the cached password and true, or "" and false when
	// no session exists.
	GetPassword(ctx context.Context) (string, bool, error)
	SetPassword(ctx context.Context, password string) error
	// ClearPassword removes the session. Clearing an absent session is not an
	// error.
	ClearPassword(ctx context.Context) error
}
