package service

import (
	"context"

	"github.com/MKhiriev/enc-notes/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// VaultService is the encrypted round trip between a [models.Vault] and the
// vault file. Each call derives the key from the given password, uses it for
// one operation and wipes it; nothing secret outlives the call.
type VaultService interface {
	// Init creates an empty vault. It fails with ErrVaultAlreadyExists rather
	// than overwrite an existing file.
	Init(ctx context.Context, password string) error

	// Read decrypts the vault. A missing file is an empty vault, not an error.
	Read(ctx context.Context, password string) (models.Vault, error)

	// Write encrypts vault under a fresh salt and nonce and replaces the file.
	Write(ctx context.Context, vault models.Vault, password string) error

	// Verify checks that password opens the vault. Unlike Read, a missing file
	// fails with ErrVaultMissing.
	Verify(ctx context.Context, password string) error

	// ChangePassword decrypts the vault under oldPassword and writes it back
	// under newPassword.
	ChangePassword(ctx context.Context, oldPassword, newPassword string) error
}

// NoteService is note CRUD on top of [VaultService]. Every mutation is a full
// read-modify-write of the vault; a lookup miss writes nothing.
type NoteService interface {
	List(ctx context.Context, password string) ([]models.Note, error)
	Add(ctx context.Context, password, title, description string) (models.Note, error)
	// Get matches the note ID exactly.
	Get(ctx context.Context, password, id string) (models.Note, error)
	// Find matches the note ID or, ignoring case, the title. The first match
	// in insertion order wins.
	Find(ctx context.Context, password, query string) (models.Note, error)
	Edit(ctx context.Context, password, id, title, description string) (models.Note, error)
	Delete(ctx context.Context, password, id string) error
}

// IDGenerator hands out note identifiers.
type IDGenerator interface {
	Generate() (string, error)
}
