// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/enc-notes/internal/crypto"
	"github.com/MKhiriev/enc-notes/internal/envelope"
	"github.com/MKhiriev/enc-notes/internal/store"
)

// mapError translates crypto, envelope and store errors into the service
// error set. Errors that already belong to the set, and context errors, are
// returned unchanged.
func mapError(err error) error {
	if err == nil || isServiceError(err) {
		return err
	}

	switch {
	case errors.Is(err, store.ErrVaultFileNotFound):
		return fmt.Errorf("%w: %w", ErrVaultMissing, err)

	case errors.Is(err, store.ErrReadingVaultFile),
		errors.Is(err, store.ErrWritingVaultFile),
		errors.Is(err, crypto.ErrRandomSource),
		errors.Is(err, crypto.ErrSecureMemory):
		return fmt.Errorf("%w: %w", ErrIO, err)

	case errors.Is(err, envelope.ErrFormat),
		errors.Is(err, crypto.ErrInvalidSalt),
		errors.Is(err, crypto.ErrInvalidNonceLength),
		errors.Is(err, crypto.ErrInvalidKeyLength):
		return fmt.Errorf("%w: %w", ErrFormat, err)

	case errors.Is(err, crypto.ErrAuthentication):
		return fmt.Errorf("%w: %w", ErrAuthenticationFailed, err)
	}

	return err
}

func isServiceError(err error) bool {
	for _, target := range []error{
		ErrVaultAlreadyExists,
		ErrVaultMissing,
		ErrAuthenticationFailed,
		ErrFormat,
		ErrNoteNotFound,
		ErrIO,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
