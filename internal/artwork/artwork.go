// Package artwork persists extracted cover images and maps between their
// serving paths and on-disk locations.
package artwork

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/soundvault/soundvault/internal/constants"
	"github.com/soundvault/soundvault/internal/storage"
)

// Store writes cover images under a single directory and hands back the
// path they are served from.
type Store struct {
	dir string
}

func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Save writes data under a fresh unique name and returns the serving path.
func (s *Store) Save(data []byte, mimeType string) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("empty cover data")
	}
	if len(data) > constants.MaxCoverSize {
		return "", fmt.Errorf("cover exceeds %d byte limit", constants.MaxCoverSize)
	}

	if err := storage.EnsureDir(s.dir); err != nil {
		return "", fmt.Errorf("failed to create covers directory: %w", err)
	}

	name := uuid.New().String() + extForMIME(mimeType)
	if err := storage.WriteFile(filepath.Join(s.dir, name), data); err != nil {
		return "", fmt.Errorf("failed to write cover: %w", err)
	}

	return constants.CoversPathPrefix + name, nil
}

// Remove deletes the file behind a serving path. An absent file is success.
func (s *Store) Remove(servingPath string) error {
	name, ok := strings.CutPrefix(servingPath, constants.CoversPathPrefix)
	if !ok || name == "" {
		return nil
	}
	return storage.RemoveFile(filepath.Join(s.dir, filepath.Base(name)))
}

// Read returns the bytes behind a serving path, or nil if the path is
// empty or does not resolve to a stored cover.
func (s *Store) Read(servingPath string) []byte {
	name, ok := strings.CutPrefix(servingPath, constants.CoversPathPrefix)
	if !ok || name == "" {
		return nil
	}
	data, err := os.ReadFile(filepath.Join(s.dir, filepath.Base(name)))
	if err != nil {
		return nil
	}
	return data
}

func extForMIME(mimeType string) string {
	switch mimeType {
	case constants.MimeTypePNG:
		return constants.ExtPNG
	case constants.MimeTypeJPEG:
		return constants.ExtJPG
	default:
		// Embedded covers are overwhelmingly JPEG; treat it as the default.
		return constants.ExtJPG
	}
}
