// Package copier performs the merge copy of a canonical map tree into a game
// installation. It only ever creates directories and writes files; nothing is
// deleted.
package copier

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/csmaptools/mapinstall/pkg/errors"
	"github.com/csmaptools/mapinstall/pkg/lister"
	"github.com/csmaptools/mapinstall/pkg/logging"
	"github.com/csmaptools/mapinstall/pkg/types"
)

// Stats summarizes what a copy operation did.
type Stats struct {
	FilesCopied  int
	FilesSkipped int
	DirsCreated  int
}

// MergeCopy mirrors sourcePath/<game> into gamePath, creating missing
// destination directories and copying files with their metadata. When a
// same-named destination file already exists it is overwritten only if
// replace is true; otherwise that single file is skipped and the walk
// continues, which makes repeated runs with replace=false no-ops for files
// already in place.
//
// sourcePath must be game-rooted; callers normalize first.
func MergeCopy(fsys types.FS, sourcePath, gamePath string, game types.GameType, replace bool, sink types.Sink) (*Stats, error) {
	logger := logging.GetLogger("copier")
	stats := &Stats{}

	err := lister.Walk(fsys, filepath.Join(sourcePath, game.Dir()), func(dir string, files []string) error {
		rel, err := filepath.Rel(sourcePath, dir)
		if err != nil {
			return errors.Wrapf(err, errors.ErrFileAccess, "failed to relativize %s", dir)
		}
		destDir := filepath.Join(gamePath, rel)

		if _, err := fsys.Stat(destDir); err != nil {
			if !os.IsNotExist(err) {
				return errors.Wrapf(err, errors.ErrFileAccess, "failed to stat %s", destDir)
			}
			logger.Debug().Str("dir", destDir).Msg("Creating missing destination directory")
			if err := fsys.MkdirAll(destDir, 0o755); err != nil {
				return errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", destDir)
			}
			stats.DirsCreated++
			sink.Emit(types.Event{Kind: types.EventDirCreated, Dest: destDir})
		}

		for _, name := range files {
			src := filepath.Join(dir, name)
			dest := filepath.Join(destDir, name)

			if info, err := fsys.Stat(dest); err == nil && !info.IsDir() && !replace {
				logger.Debug().Str("source", src).Str("dest", dest).Msg("Skipping existing file")
				stats.FilesSkipped++
				sink.Emit(types.Event{Kind: types.EventFileSkipped, Source: src, Dest: dest})
				continue
			}

			logger.Debug().Str("source", src).Str("dest", dest).Msg("Copying file")
			if err := copyFile(fsys, src, dest); err != nil {
				return err
			}
			stats.FilesCopied++
			sink.Emit(types.Event{Kind: types.EventFileCopied, Source: src, Dest: dest})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info().
		Int("copied", stats.FilesCopied).
		Int("skipped", stats.FilesSkipped).
		Int("dirs_created", stats.DirsCreated).
		Msg("Merge copy finished")
	return stats, nil
}

// CopyTree copies the directory tree rooted at src into dest (which may not
// yet exist), preserving file modes and modification times. Used to
// materialize the canonical staging layout for non-game-rooted sources.
func CopyTree(fsys types.FS, src, dest string) error {
	return lister.Walk(fsys, src, func(dir string, files []string) error {
		rel, err := filepath.Rel(src, dir)
		if err != nil {
			return errors.Wrapf(err, errors.ErrFileAccess, "failed to relativize %s", dir)
		}
		destDir := filepath.Join(dest, rel)
		if err := fsys.MkdirAll(destDir, 0o755); err != nil {
			return errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", destDir)
		}
		for _, name := range files {
			if err := copyFile(fsys, filepath.Join(dir, name), filepath.Join(destDir, name)); err != nil {
				return err
			}
		}
		return nil
	})
}

// copyFile copies src to dest, truncating any existing destination, and
// carries over the source's permission bits and modification time.
func copyFile(fsys types.FS, src, dest string) error {
	info, err := fsys.Stat(src)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "failed to stat %s", src)
	}

	in, err := fsys.Open(src)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "failed to open %s", src)
	}
	defer func() { _ = in.Close() }()

	out, err := fsys.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileCopy, "failed to create %s", dest)
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return errors.Wrapf(err, errors.ErrFileCopy, "failed to copy %s to %s", src, dest)
	}
	if err := out.Close(); err != nil {
		return errors.Wrapf(err, errors.ErrFileCopy, "failed to finish writing %s", dest)
	}

	if err := fsys.Chtimes(dest, time.Now(), info.ModTime()); err != nil {
		return errors.Wrapf(err, errors.ErrFileCopy, "failed to preserve times on %s", dest)
	}
	return nil
}
