// Package scanner detects content conflicts between a canonical map source
// tree and an installed game tree before anything is overwritten.
package scanner

import (
	"io/fs"
	"path/filepath"

	"github.com/csmaptools/mapinstall/pkg/checksum"
	"github.com/csmaptools/mapinstall/pkg/errors"
	"github.com/csmaptools/mapinstall/pkg/lister"
	"github.com/csmaptools/mapinstall/pkg/logging"
	"github.com/csmaptools/mapinstall/pkg/paths"
	"github.com/csmaptools/mapinstall/pkg/types"
)

// FindConflict walks sourcePath/<game> and its mirror under gamePath in
// lockstep and returns the first pair of same-named files whose fingerprints
// differ. The walk is short-circuiting: at most one pair is reported, and
// traversal is deterministic (directories and files in lexical order), so
// "first" is reproducible.
//
// sourcePath must already be game-rooted; callers normalize first. Branches
// whose mirrored destination directory is absent are pruned whole.
func FindConflict(fsys types.FS, sourcePath, gamePath string, game types.GameType) (*types.ConflictPair, error) {
	logger := logging.GetLogger("scanner")

	srcReal, err := paths.Resolve(sourcePath)
	if err != nil {
		return nil, err
	}
	dstReal, err := paths.Resolve(gamePath)
	if err != nil {
		return nil, err
	}
	if srcReal == dstReal {
		return nil, errors.Newf(errors.ErrSameDirectory,
			"'%s' and '%s' are the same directory", sourcePath, gamePath)
	}

	var conflict *types.ConflictPair
	err = lister.Walk(fsys, filepath.Join(sourcePath, game.Dir()), func(dir string, files []string) error {
		rel, err := filepath.Rel(sourcePath, dir)
		if err != nil {
			return errors.Wrapf(err, errors.ErrFileAccess, "failed to relativize %s", dir)
		}
		destDir := filepath.Join(gamePath, rel)

		destFiles, err := lister.ListFiles(fsys, destDir)
		if err != nil {
			return err
		}
		if destFiles.Absent() {
			return fs.SkipDir
		}

		for _, name := range files {
			if !destFiles.Contains(name) {
				continue
			}
			srcFile := filepath.Join(dir, name)
			destFile := filepath.Join(destDir, name)

			srcSum, err := checksum.Fingerprint(fsys, srcFile)
			if err != nil {
				return err
			}
			destSum, err := checksum.Fingerprint(fsys, destFile)
			if err != nil {
				return err
			}
			if srcSum != destSum {
				logger.Info().
					Str("source", srcFile).
					Str("dest", destFile).
					Msg("Found conflicting file")
				conflict = &types.ConflictPair{Source: srcFile, Dest: destFile}
				return fs.SkipAll
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return conflict, nil
}
