package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/enc-notes/internal/config"
	"github.com/MKhiriev/enc-notes/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestVaultStorage(t *testing.T) (VaultFileStorage, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vault.enc")
	return NewVaultFileStorage(path, logger.Nop()), path
}

func TestVaultFileStorage_Exists(t *testing.T) {
	ctx := context.Background()
	s, path := newTestVaultStorage(t)

	ok, err := s.Exists(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o600))

	ok, err = s.Exists(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestVaultFileStorage_LoadMissing(t *testing.T) {
	s, _ := newTestVaultStorage(t)

	data, err := s.Load(context.Background())
	assert.Nil(t, data)
	assert.ErrorIs(t, err, ErrVaultFileNotFound)
}

func TestVaultFileStorage_LoadDirectory(t *testing.T) {
	s := NewVaultFileStorage(t.TempDir(), logger.Nop())

	_, err := s.Load(context.Background())
	assert.ErrorIs(t, err, ErrReadingVaultFile)
}

func TestVaultFileStorage_SaveThenLoad(t *testing.T) {
	ctx := context.Background()
	s, path := newTestVaultStorage(t)

	require.NoError(t, s.Save(ctx, []byte("first")))
	require.NoError(t, s.Save(ctx, []byte("second")))

	data, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), data)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestVaultFileStorage_SaveLeavesNoTempFiles(t *testing.T) {
	ctx := context.Background()
	s, path := newTestVaultStorage(t)

	require.NoError(t, s.Save(ctx, []byte("payload")))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "vault.enc", entries[0].Name())
}

func TestVaultFileStorage_SaveCreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "vault.enc")
	s := NewVaultFileStorage(path, logger.Nop())

	require.NoError(t, s.Save(context.Background(), []byte("x")))
	assert.FileExists(t, path)
}

func TestVaultFileStorage_SaveFailure(t *testing.T) {
	// the target is an existing non-empty directory, so rename must fail
	dir := t.TempDir()
	target := filepath.Join(dir, "vault.enc")
	require.NoError(t, os.MkdirAll(filepath.Join(target, "child"), 0o700))

	s := NewVaultFileStorage(target, logger.Nop())
	err := s.Save(context.Background(), []byte("x"))
	assert.ErrorIs(t, err, ErrWritingVaultFile)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file must be cleaned up")
}

func TestVaultFileStorage_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s, path := newTestVaultStorage(t)

	_, err := s.Exists(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	_, err = s.Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, s.Save(ctx, []byte("x")), context.Canceled)
	assert.NoFileExists(t, path)
}

func TestNewClientStorages(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.StructuredConfig{
		Vault:   config.Vault{Path: filepath.Join(dir, "vault.enc")},
		Session: config.Session{Path: filepath.Join(dir, "encnotes.session")},
	}

	storages := NewClientStorages(cfg, logger.Nop())
	require.NotNil(t, storages)
	require.NotNil(t, storages.VaultStorage)
	require.NotNil(t, storages.SessionStorage)

	ctx := context.Background()
	require.NoError(t, storages.VaultStorage.Save(ctx, []byte("v")))
	require.NoError(t, storages.SessionStorage.SetPassword(ctx, "pw"))
	assert.FileExists(t, cfg.Vault.Path)
	assert.FileExists(t, cfg.Session.Path)
}
