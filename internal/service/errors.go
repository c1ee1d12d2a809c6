package service

import "errors"

// Closed set of failures returned by VaultService and NoteService. Every
// error leaving the service layer matches exactly one of these with
// [errors.Is]; the lower-level cause stays in the chain.
var (
	// ErrVaultAlreadyExists is returned by Init when a vault file is present.
	ErrVaultAlreadyExists = errors.New("vault already exists")

	// ErrVaultMissing is returned when an operation needs an existing vault
	// file and there is none. Read never returns it.
	ErrVaultMissing = errors.New("vault not found")

	// ErrAuthenticationFailed is the only signal for a wrong password, a
	// corrupted ciphertext or a tampered file. The causes cannot be told apart.
	ErrAuthenticationFailed = errors.New("wrong password or corrupt vault")

	// ErrFormat is returned when the envelope framing or the decrypted vault
	// document is structurally invalid.
	ErrFormat = errors.New("invalid vault format")

	// ErrNoteNotFound is returned when no note matches an id or title.
	ErrNoteNotFound = errors.New("note not found")

	// ErrIO wraps filesystem and system entropy failures.
	ErrIO = errors.New("vault i/o failure")
)
