// Package lister provides directory listing with an explicit absent
// sentinel, plus the deterministic directory walk the scanner and copier are
// built on. Absent paths are a routine condition for the installer, so they
// are reported as a nil Set instead of an error; callers branch on
// membership, never on exceptions.
package lister

import (
	"os"
	"path/filepath"

	"github.com/csmaptools/mapinstall/pkg/errors"
	"github.com/csmaptools/mapinstall/pkg/types"
)

// Set is an unordered collection of child names. The nil Set is the absent
// sentinel returned for paths that do not exist or are not directories;
// membership tests on it are valid and always false.
type Set map[string]struct{}

// Contains reports whether name is in the set. Safe on the nil Set.
func (s Set) Contains(name string) bool {
	_, ok := s[name]
	return ok
}

// Absent reports whether the set is the absent sentinel.
func (s Set) Absent() bool {
	return s == nil
}

// ListDirs returns the names of the immediate child directories of path.
// A nonexistent path or a non-directory yields the nil Set and no error.
func ListDirs(fsys types.FS, path string) (Set, error) {
	return list(fsys, path, true)
}

// ListFiles returns the names of the immediate non-directory children of
// path, with the same absent sentinel as ListDirs.
func ListFiles(fsys types.FS, path string) (Set, error) {
	return list(fsys, path, false)
}

func list(fsys types.FS, path string, dirs bool) (Set, error) {
	info, err := fsys.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to stat %s", path)
	}
	if !info.IsDir() {
		return nil, nil
	}

	entries, err := fsys.ReadDir(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to list %s", path)
	}
	set := make(Set, len(entries))
	for _, entry := range entries {
		if entry.IsDir() == dirs {
			set[entry.Name()] = struct{}{}
		}
	}
	return set, nil
}

// FindFirstDirNamed descends root in pre-order, siblings in lexical order,
// and returns the path of the first directory whose own name equals name.
// Returns "" when root contains no such directory or does not exist.
func FindFirstDirNamed(fsys types.FS, name, root string) (string, error) {
	entries, err := fsys.ReadDir(root)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to list %s", root)
	}

	// Check all children of this level before descending, matching the
	// top-down order callers expect.
	for _, entry := range entries {
		if entry.IsDir() && entry.Name() == name {
			return filepath.Join(root, entry.Name()), nil
		}
	}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		found, err := FindFirstDirNamed(fsys, name, filepath.Join(root, entry.Name()))
		if err != nil {
			return "", err
		}
		if found != "" {
			return found, nil
		}
	}
	return "", nil
}
