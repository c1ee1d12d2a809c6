// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"

	"github.com/awnumar/memguard"
	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"
)

const (
	// SaltSize is the length of the key-derivation salt in bytes.
	SaltSize = 16
	// NonceSize is the XChaCha20-Poly1305 nonce length in bytes.
	NonceSize = chacha20poly1305.NonceSizeX
	// KeySize is the length of a derived key in bytes.
	KeySize = chacha20poly1305.KeySize
	// TagSize is the length of the authentication tag appended by Encrypt.
	TagSize = chacha20poly1305.Overhead

	// minSaltSize is the shortest salt Argon2 accepts (RFC 9106).
	minSaltSize = 8
)

// keyChainService is the private implementation of [KeyChainService].
type keyChainService struct {
	// Argon2id cost parameters. They are fixed at build time so that a key
	// can always be reproduced from (password, salt) alone.
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32

	random io.Reader
}

// NewKeyChainService constructs a [KeyChainService] with the default
// Argon2id profile:
//   - time cost:   2 iterations
//   - memory cost: 19 MiB
//   - parallelism: 1 thread
//   - key length:  32 bytes (256 bits)
func NewKeyChainService() KeyChainService {
	return &keyChainService{
		argonTime:    2,
		argonMemory:  19 * 1024, // 19 MiB
		argonThreads: 1,
		argonKeyLen:  KeySize,
		random:       rand.Reader,
	}
}

// GenerateSalt implements [KeyChainService]. It reads [SaltSize] bytes from
// the OS CSPRNG.
func (k *keyChainService) GenerateSalt() ([]byte, error) {
	return k.randomBytes(SaltSize)
}

// GenerateNonce implements [KeyChainService]. It reads [NonceSize] bytes
// from the OS CSPRNG.
func (k *keyChainService) GenerateNonce() ([]byte, error) {
	return k.randomBytes(NonceSize)
}

// DeriveKey implements [KeyChainService]. It returns [ErrInvalidSalt] when
// the salt is shorter than Argon2 allows; no other input is rejected.
func (k *keyChainService) DeriveKey(password string, salt []byte) ([]byte, error) {
	if len(salt) < minSaltSize {
		return nil, fmt.Errorf("%w: got %d bytes", ErrInvalidSalt, len(salt))
	}

	return argon2.IDKey(
		[]byte(password),
		salt,
		k.argonTime,
		k.argonMemory,
		k.argonThreads,
		k.argonKeyLen,
	), nil
}

// Encrypt implements [KeyChainService]. No associated data is bound in.
func (k *keyChainService) Encrypt(plaintext, key, nonce []byte) ([]byte, error) {
	aead, err := newAEAD(key, nonce)
	if err != nil {
		return nil, err
	}

	return aead.Seal(nil, nonce, plaintext, nil), nil
}

// Decrypt implements [KeyChainService]. Any tag mismatch (wrong key,
// corrupted or tampered ciphertext, ciphertext shorter than the tag) is
// reported as [ErrAuthentication].
func (k *keyChainService) Decrypt(ciphertext, key, nonce []byte) ([]byte, error) {
	aead, err := newAEAD(key, nonce)
	if err != nil {
		return nil, err
	}

	plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrAuthentication
	}

	return plaintext, nil
}

// LockKey moves key into a read-only memguard buffer (mlocked, surrounded by
// guard pages) and wipes key. The caller must Destroy the buffer once the
// key is no longer needed.
func LockKey(key []byte) (*memguard.LockedBuffer, error) {
	if len(key) == 0 {
		return nil, fmt.Errorf("%w: got 0 bytes", ErrInvalidKeyLength)
	}

	buf := memguard.NewBufferFromBytes(key)
	if buf.Size() != len(key) {
		// memguard hands back a null buffer and leaves key untouched
		Wipe(key)
		return nil, ErrSecureMemory
	}
	return buf, nil
}

// Wipe overwrites b with zeroes. Callers use it on derived keys and
// decrypted plaintext once an operation is done with them.
func Wipe(b []byte) {
	memguard.WipeBytes(b)
}

func (k *keyChainService) randomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(k.random, b); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRandomSource, err)
	}
	return b, nil
}

// newAEAD validates key and nonce lengths up front: the cipher panics on a
// wrong nonce length instead of returning an error.
func newAEAD(key, nonce []byte) (cipher.AEAD, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: got %d bytes", ErrInvalidKeyLength, len(key))
	}
	if len(nonce) != NonceSize {
		return nil, fmt.Errorf("%w: got %d bytes", ErrInvalidNonceLength, len(nonce))
	}

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	return aead, nil
}
