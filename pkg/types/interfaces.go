package types

import (
	"io"
	"io/fs"
	"time"
)

// FS is the filesystem the installer operates on. Implementations exist for
// the real OS and for afero filesystems (used in tests).
//
// ReadDir must return entries sorted by name; both the os and afero
// implementations do, and the deterministic traversal order of the conflict
// scanner and merge copier depends on it.
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	Lstat(name string) (fs.FileInfo, error)

	// Open opens a file for reading (streaming, used by the hasher).
	Open(name string) (io.ReadCloser, error)
	// OpenFile opens a file for writing with the given flags and permissions.
	OpenFile(name string, flag int, perm fs.FileMode) (io.WriteCloser, error)

	ReadDir(name string) ([]fs.DirEntry, error)
	MkdirAll(path string, perm fs.FileMode) error
	Remove(name string) error
	RemoveAll(path string) error

	// Chtimes sets access and modification times, used to preserve file
	// metadata on copy.
	Chtimes(name string, atime, mtime time.Time) error

	// TempDir creates a new unique directory under dir (the system default
	// when dir is empty) and returns its path.
	TempDir(dir, prefix string) (string, error)
}
