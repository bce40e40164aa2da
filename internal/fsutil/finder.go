// Package fsutil provides file system utility functions.
package fsutil

import (
	"errors"
	"fmt"
	"os"
)

// ErrIsDirectory is returned when a path expected to name a file names a
// directory.
var ErrIsDirectory = errors.New("is a directory")

// RequireFile checks that path exists and is not a directory. Pipes and
// devices pass, so process substitution like <(printf '1\n2\n') works.
func RequireFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%s: %w", path, ErrIsDirectory)
	}
	return nil
}
