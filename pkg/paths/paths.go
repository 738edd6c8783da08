// Package paths provides path canonicalization for the installer's
// same-directory guard.
package paths

import (
	"os"
	"path/filepath"

	"github.com/csmaptools/mapinstall/pkg/errors"
)

// Resolve returns path in canonical absolute form, following symlinks when
// the path exists on the OS. Paths that do not exist resolve to their
// cleaned absolute form, so comparisons against not-yet-created paths still
// work.
func Resolve(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to make %s absolute", path)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return filepath.Clean(abs), nil
		}
		return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to resolve %s", path)
	}
	return resolved, nil
}
