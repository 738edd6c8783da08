package lister

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/csmaptools/mapinstall/pkg/errors"
	"github.com/csmaptools/mapinstall/pkg/types"
)

// WalkFunc is invoked once per visited directory with the directory's path
// and the names of its non-directory children in lexical order. Returning
// fs.SkipDir prunes the directory's subtree; returning fs.SkipAll ends the
// walk early with a nil error from Walk.
type WalkFunc func(dir string, files []string) error

// Walk visits root and every directory below it in pre-order, siblings in
// lexical order, so traversal results are reproducible. A nonexistent root
// is a no-op, mirroring the absent sentinel of the listing functions.
func Walk(fsys types.FS, root string, fn WalkFunc) error {
	err := walk(fsys, root, fn)
	if err == fs.SkipAll {
		return nil
	}
	return err
}

func walk(fsys types.FS, dir string, fn WalkFunc) error {
	entries, err := fsys.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(err, errors.ErrFileAccess, "failed to list %s", dir)
	}

	var dirs, files []string
	for _, entry := range entries {
		if entry.IsDir() {
			dirs = append(dirs, entry.Name())
		} else {
			files = append(files, entry.Name())
		}
	}

	if err := fn(dir, files); err != nil {
		if err == fs.SkipDir {
			return nil
		}
		return err
	}
	for _, name := range dirs {
		if err := walk(fsys, filepath.Join(dir, name), fn); err != nil {
			return err
		}
	}
	return nil
}
