// Package storage provides small filesystem helpers shared by the upload
// and artwork pipelines.
package storage

import (
	"os"
	"strings"

	"github.com/soundvault/soundvault/internal/constants"
)

// Sanitize strips characters that are unsafe in file names.
func Sanitize(s string) string {
	mapped := strings.Map(func(r rune) rune {
		if strings.ContainsRune(constants.InvalidPathChars, r) {
			return -1
		}
		return r
	}, s)

	return strings.TrimRight(mapped, ". ")
}

func EnsureDir(path string) error {
	return os.MkdirAll(path, constants.DirPermissions)
}

func WriteFile(path string, data []byte) error {
	return os.WriteFile(path, data, constants.FilePermissions)
}

// RemoveFile deletes path. A file that is already absent is success, so
// delete flows stay idempotent.
func RemoveFile(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
