// Package preflight validates a target folder before a run touches any
// file. Failures here are run-level: the batch never starts.
package preflight

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"golang.org/x/sys/unix"
)

// CheckTarget verifies that path exists, is a directory, and grants the
// read/write/traverse access a triage run needs.
func CheckTarget(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("target folder %s does not exist", path)
		}
		return fmt.Errorf("inspect target folder %s: %w", path, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("target %s is not a directory", path)
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return fmt.Errorf("target folder %s: insufficient permissions: %w", path, err)
	}
	return nil
}
