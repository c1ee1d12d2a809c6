package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/enc-notes/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionFileStorage_RoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "encnotes.session")
	s := NewSessionFileStorage(path, logger.Nop())

	pw, ok, err := s.GetPassword(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, pw)

	require.NoError(t, s.SetPassword(ctx, "hunter2"))

	pw, ok, err = s.GetPassword(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "hunter2", pw)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	require.NoError(t, s.ClearPassword(ctx))
	assert.NoFileExists(t, path)

	_, ok, err = s.GetPassword(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSessionFileStorage_GetPassword(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
		wantOK  bool
	}{
		{name: "plain", content: "secret", want: "secret", wantOK: true},
		{name: "trailing newline", content: "secret\n", want: "secret", wantOK: true},
		{name: "surrounding spaces", content: "  secret \r\n", want: "secret", wantOK: true},
		{name: "inner spaces kept", content: "correct horse", want: "correct horse", wantOK: true},
		{name: "whitespace only", content: " \n", want: "", wantOK: false},
		{name: "empty", content: "", want: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "encnotes.session")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o600))

			pw, ok, err := NewSessionFileStorage(path, logger.Nop()).GetPassword(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, pw)
		})
	}
}

func TestSessionFileStorage_SetPasswordOverwrites(t *testing.T) {
	ctx := context.Background()
	s := NewSessionFileStorage(filepath.Join(t.TempDir(), "s"), logger.Nop())

	require.NoError(t, s.SetPassword(ctx, "old"))
	require.NoError(t, s.SetPassword(ctx, "new"))

	pw, ok, err := s.GetPassword(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "new", pw)
}

func TestSessionFileStorage_ClearAbsent(t *testing.T) {
	s := NewSessionFileStorage(filepath.Join(t.TempDir(), "missing"), logger.Nop())
	assert.NoError(t, s.ClearPassword(context.Background()))
}

func TestSessionFileStorage_ReadError(t *testing.T) {
	s := NewSessionFileStorage(t.TempDir(), logger.Nop())

	_, _, err := s.GetPassword(context.Background())
	assert.ErrorIs(t, err, ErrReadingSession)
}
