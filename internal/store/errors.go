package store

import "errors"

// Sentinel errors returned by the file storages. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrVaultFileNotFound is returned by Load when the vault file does not
	// exist yet.
	ErrVaultFileNotFound = errors.New("vault file not found")

	// ErrReadingVaultFile is returned when the vault file exists but cannot be
	// inspected or read.
	ErrReadingVaultFile = errors.New("error reading vault file")

	// ErrWritingVaultFile is returned when replacing the vault file fails at
	// any step (temp file, sync, chmod or rename).
	ErrWritingVaultFile = errors.New("error writing vault file")
)

var (
	ErrReadingSession  = errors.New("error reading session file")
	ErrWritingSession  = errors.New("error writing session file")
	ErrClearingSession = errors.New("error clearing session file")
)
