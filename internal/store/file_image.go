package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-spine-client/internal/logger"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// fileImageStorage is the local filesystem implementation of [ImageStorage].
type fileImageStorage struct {
	dir string

	logger *logger.Logger
}

// NewFileImageStorage constructs an [ImageStorage] rooted at dir. The
// directory is created on the first Save, not here.
func NewFileImageStorage(dir string, logger *logger.Logger) (ImageStorage, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return nil, ErrEmptyOutputDir
	}

	return &fileImageStorage{dir: filepath.Clean(dir), logger: logger}, nil
}

// Save implements [ImageStorage]. The file is written to a temporary name in
// the same directory and renamed into place, so a reader never sees a
// partial image.
func (s *fileImageStorage) Save(ctx context.Context, name string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	base, err := sanitizeName(name)
	if err != nil {
		return "", err
	}

	if err = os.MkdirAll(s.dir, dirPerm); err != nil {
		return "", fmt.Errorf("%w: %w", ErrCreatingDir, err)
	}

	tmp, err := os.CreateTemp(s.dir, "."+base+".*.tmp")
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrWritingFile, err)
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return "", fmt.Errorf("%w: %w", ErrWritingFile, err)
	}
	if err = tmp.Chmod(filePerm); err != nil {
		_ = tmp.Close()
		return "", fmt.Errorf("%w: %w", ErrWritingFile, err)
	}
	if err = tmp.Close(); err != nil {
		return "", fmt.Errorf("%w: %w", ErrWritingFile, err)
	}

	path := filepath.Join(s.dir, base)
	if err = os.Rename(tmp.Name(), path); err != nil {
		return "", fmt.Errorf("%w: %w", ErrWritingFile, err)
	}

	s.logger.Info().Str("path", path).Int("bytes", len(data)).Msg("image saved")
	return path, nil
}

// Dir implements [ImageStorage].
func (s *fileImageStorage) Dir() string {
	return s.dir
}

func sanitizeName(name string) (string, error) {
	base := filepath.Base(strings.TrimSpace(name))
	switch base {
	case "", ".", "..", string(filepath.Separator):
		return "", fmt.Errorf("%w: %q", ErrEmptyFileName, name)
	}
	return base, nil
}
