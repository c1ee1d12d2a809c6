package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/enc-notes/internal/logger"
)

const sessionFilePerm = 0o600

type sessionFileStorage struct {
	path   string
	logger *logger.Logger
}

// NewSessionFileStorage returns a [SessionStorage] that keeps the password
// as plain text in the file at path. Anyone able to read that file can open
// the vault; the file is created with owner-only permissions.
func NewSessionFileStorage(path string, logger *logger.Logger) SessionStorage {
	return &sessionFileStorage{
		path:   path,
		logger: logger,
	}
}

// GetPassword treats a missing file and a file holding only whitespace
// alike: there is no session.
func (s *sessionFileStorage) GetPassword(ctx context.Context) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", false, nil
		}
		s.logger.Err(err).Str("func", "sessionFileStorage.GetPassword").Msg("read session file failed")
		return "", false, fmt.Errorf("%w: %w", ErrReadingSession, err)
	}

	password := strings.TrimSpace(string(data))
	if password == "" {
		return "", false, nil
	}
	return password, true, nil
}

func (s *sessionFileStorage) SetPassword(ctx context.Context, password string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, vaultDirPerm); err != nil {
			s.logger.Err(err).Str("func", "sessionFileStorage.SetPassword").Msg("create session dir failed")
			return fmt.Errorf("%w: %w", ErrWritingSession, err)
		}
	}

	if err := writeFileAtomic(s.path, []byte(password), sessionFilePerm); err != nil {
		s.logger.Err(err).Str("func", "sessionFileStorage.SetPassword").Msg("write session file failed")
		return fmt.Errorf("%w: %w", ErrWritingSession, err)
	}

	s.logger.Debug().Str("func", "sessionFileStorage.SetPassword").Msg("session stored")
	return nil
}

func (s *sessionFileStorage) ClearPassword(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		s.logger.Err(err).Str("func", "sessionFileStorage.ClearPassword").Msg("remove session file failed")
		return fmt.Errorf("%w: %w", ErrClearingSession, err)
	}

	s.logger.Debug().Str("func", "sessionFileStorage.ClearPassword").Msg("session cleared")
	return nil
}
