// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/enc-notes/internal/crypto"
	"github.com/MKhiriev/enc-notes/internal/envelope"
	"github.com/MKhiriev/enc-notes/internal/logger"
	"github.com/MKhiriev/enc-notes/internal/store"
	"github.com/MKhiriev/enc-notes/models"
	"github.com/awnumar/memguard"
)

type vaultService struct {
	storage  store.VaultFileStorage
	keyChain crypto.KeyChainService
	logger   *logger.Logger
}

// NewVaultService builds a [VaultService] over storage using keyChain for
// all cryptography.
func NewVaultService(storage store.VaultFileStorage, keyChain crypto.KeyChainService, logger *logger.Logger) VaultService {
	return &vaultService{
		storage:  storage,
		keyChain: keyChain,
		logger:   logger,
	}
}

func (v *vaultService) Init(ctx context.Context, password string) error {
	exists, err := v.storage.Exists(ctx)
	if err != nil {
		return mapError(err)
	}
	if exists {
		v.logger.Warn().Str("func", "vaultService.Init").Msg("vault file already exists")
		return ErrVaultAlreadyExists
	}

	if err = v.Write(ctx, models.NewVault(), password); err != nil {
		return err
	}

	v.logger.Info().Str("func", "vaultService.Init").Msg("vault initialized")
	return nil
}

func (v *vaultService) Read(ctx context.Context, password string) (models.Vault, error) {
	raw, err := v.storage.Load(ctx)
	if err != nil {
		if errors.Is(err, store.ErrVaultFileNotFound) {
			v.logger.Debug().Str("func", "vaultService.Read").Msg("no vault file, returning empty vault")
			return models.NewVault(), nil
		}
		return models.Vault{}, mapError(err)
	}

	plaintext, err := v.open(ctx, raw, password)
	if err != nil {
		return models.Vault{}, err
	}
	defer crypto.Wipe(plaintext)

	vault, err := unmarshalVault(plaintext)
	if err != nil {
		v.logger.Err(err).Str("func", "vaultService.Read").Msg("decrypted vault is malformed")
		return models.Vault{}, err
	}

	v.logger.Debug().Str("func", "vaultService.Read").Int("notes", len(vault.Notes)).Msg("vault read")
	return vault, nil
}

func (v *vaultService) Write(ctx context.Context, vault models.Vault, password string) error {
	plaintext, err := marshalVault(vault)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFormat, err)
	}
	defer crypto.Wipe(plaintext)

	data, err := v.seal(ctx, plaintext, password)
	if err != nil {
		return err
	}

	if err = v.storage.Save(ctx, data); err != nil {
		return mapError(err)
	}

	v.logger.Debug().Str("func", "vaultService.Write").Int("notes", len(vault.Notes)).Msg("vault written")
	return nil
}

func (v *vaultService) Verify(ctx context.Context, password string) error {
	raw, err := v.storage.Load(ctx)
	if err != nil {
		return mapError(err)
	}

	plaintext, err := v.open(ctx, raw, password)
	if err != nil {
		return err
	}
	crypto.Wipe(plaintext)

	return nil
}

func (v *vaultService) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	exists, err := v.storage.Exists(ctx)
	if err != nil {
		return mapError(err)
	}
	if !exists {
		return ErrVaultMissing
	}

	vault, err := v.Read(ctx, oldPassword)
	if err != nil {
		return err
	}

	if err = v.Write(ctx, vault, newPassword); err != nil {
		return err
	}

	v.logger.Info().Str("func", "vaultService.ChangePassword").Msg("master password changed")
	return nil
}

// open decodes the envelope in raw and decrypts its ciphertext. The caller
// owns the returned plaintext and must wipe it.
func (v *vaultService) open(ctx context.Context, raw []byte, password string) ([]byte, error) {
	env, err := envelope.Decode(raw)
	if err != nil {
		v.logger.Err(err).Str("func", "vaultService.open").Msg("decode envelope failed")
		return nil, mapError(err)
	}
	if len(env.Salt) != crypto.SaltSize {
		return nil, fmt.Errorf("%w: salt is %d bytes, want %d", ErrFormat, len(env.Salt), crypto.SaltSize)
	}
	if len(env.Nonce) != crypto.NonceSize {
		return nil, fmt.Errorf("%w: nonce is %d bytes, want %d", ErrFormat, len(env.Nonce), crypto.NonceSize)
	}

	if err = ctx.Err(); err != nil {
		return nil, err
	}

	key, err := v.lockedKey(password, env.Salt)
	if err != nil {
		return nil, err
	}
	defer key.Destroy()

	plaintext, err := v.keyChain.Decrypt(env.Ciphertext, key.Bytes(), env.Nonce)
	if err != nil {
		v.logger.Warn().Str("func", "vaultService.open").Msg("vault authentication failed")
		return nil, mapError(err)
	}

	return plaintext, nil
}

// seal encrypts plaintext under a key derived from password with a fresh
// salt and nonce and returns the encoded envelope.
func (v *vaultService) seal(ctx context.Context, plaintext []byte, password string) ([]byte, error) {
	salt, err := v.keyChain.GenerateSalt()
	if err != nil {
		return nil, mapError(err)
	}
	nonce, err := v.keyChain.GenerateNonce()
	if err != nil {
		return nil, mapError(err)
	}

	if err = ctx.Err(); err != nil {
		return nil, err
	}

	key, err := v.lockedKey(password, salt)
	if err != nil {
		return nil, err
	}
	defer key.Destroy()

	ciphertext, err := v.keyChain.Encrypt(plaintext, key.Bytes(), nonce)
	if err != nil {
		return nil, mapError(err)
	}

	data, err := envelope.Encode(envelope.Envelope{
		Ciphertext: ciphertext,
		Salt:       salt,
		Nonce:      nonce,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFormat, err)
	}

	return data, nil
}

// lockedKey derives the key for password and salt and keeps it in locked
// memory for the rest of the operation.
func (v *vaultService) lockedKey(password string, salt []byte) (*memguard.LockedBuffer, error) {
	key, err := v.keyChain.DeriveKey(password, salt)
	if err != nil {
		return nil, mapError(err)
	}

	locked, err := crypto.LockKey(key)
	if err != nil {
		v.logger.Err(err).Str("func", "vaultService.lockedKey").Msg("failed to lock derived key")
		return nil, mapError(err)
	}
	return locked, nil
}
