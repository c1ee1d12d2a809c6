package crypto

import "errors"

var (
	// ErrAuthentication is returned by Decrypt when the Poly1305 tag does not
	// verify. It is the only signal for a wrong key as well as for a
	// corrupted or tampered ciphertext; the two cannot be told apart.
	ErrAuthentication = errors.New("message authentication failed")

	// ErrInvalidKeyLength is returned when a key is not [KeySize] bytes.
	ErrInvalidKeyLength = errors.New("invalid key length")

	// ErrInvalidNonceLength is returned when a nonce is not [NonceSize] bytes.
	ErrInvalidNonceLength = errors.New("invalid nonce length")

	// ErrInvalidSalt is returned by DeriveKey for a salt Argon2 cannot use.
	ErrInvalidSalt = errors.New("invalid key derivation salt")

	// ErrRandomSource is returned when the CSPRNG cannot be read.
	ErrRandomSource = errors.New("random source failure")

	// ErrSecureMemory is returned by LockKey when no locked memory can be
	// allocated for the key.
	ErrSecureMemory = errors.New("secure memory unavailable")
)
