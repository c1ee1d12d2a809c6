// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/MKhiriev/enc-notes/internal/logger"
)

const (
	vaultFilePerm = 0o600
	vaultDirPerm  = 0o700
)

type vaultFileStorage struct {
	path   string
	logger *logger.Logger
}

// NewVaultFileStorage returns a [VaultFileStorage] backed by the file at path.
// The file is not touched until the first call.
func NewVaultFileStorage(path string, logger *logger.Logger) VaultFileStorage {
	return &vaultFileStorage{
		path:   path,
		logger: logger,
	}
}

func (v *vaultFileStorage) Exists(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	_, err := os.Stat(v.path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}

	v.logger.Err(err).Str("func", "vaultFileStorage.Exists").Str("path", v.path).Msg("stat vault file failed")
	return false, fmt.Errorf("%w: %w", ErrReadingVaultFile, err)
}

func (v *vaultFileStorage) Load(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(v.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrVaultFileNotFound, v.path)
		}
		v.logger.Err(err).Str("func", "vaultFileStorage.Load").Str("path", v.path).Msg("read vault file failed")
		return nil, fmt.Errorf("%w: %w", ErrReadingVaultFile, err)
	}

	v.logger.Debug().Str("func", "vaultFileStorage.Load").Int("bytes", len(data)).Msg("vault file loaded")
	return data, nil
}

// Save writes data to a temporary file next to the vault and renames it over
// the old one, so a crash never leaves a half-written vault behind.
func (v *vaultFileStorage) Save(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if dir := filepath.Dir(v.path); dir != "." {
		if err := os.MkdirAll(dir, vaultDirPerm); err != nil {
			v.logger.Err(err).Str("func", "vaultFileStorage.Save").Msg("create vault dir failed")
			return fmt.Errorf("%w: %w", ErrWritingVaultFile, err)
		}
	}

	if err := writeFileAtomic(v.path, data, vaultFilePerm); err != nil {
		v.logger.Err(err).Str("func", "vaultFileStorage.Save").Str("path", v.path).Msg("replace vault file failed")
		return fmt.Errorf("%w: %w", ErrWritingVaultFile, err)
	}

	v.logger.Debug().Str("func", "vaultFileStorage.Save").Int("bytes", len(data)).Msg("vault file saved")
	return nil
}

func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err = os.Chmod(tmpPath, perm); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err = os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}
