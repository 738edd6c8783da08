// Package layout classifies a map source directory against the canonical
// <gameType>/maps shape. Map archives come in three real-world authoring
// conventions; classifying up front saves the user from restructuring files
// by hand.
package layout

import (
	"path/filepath"
	"strings"

	"github.com/csmaptools/mapinstall/pkg/errors"
	"github.com/csmaptools/mapinstall/pkg/lister"
	"github.com/csmaptools/mapinstall/pkg/logging"
	"github.com/csmaptools/mapinstall/pkg/types"
)

// Classify determines which recognized layout sourcePath has for game.
//
// A <gameType> subdirectory that lacks the required maps child is a
// malformed canonical attempt and fails outright; it never falls through to
// the other shapes.
func Classify(fsys types.FS, sourcePath string, game types.GameType) (types.MapSourceLayout, error) {
	logger := logging.GetLogger("layout")

	dirs, err := lister.ListDirs(fsys, sourcePath)
	if err != nil {
		return types.LayoutInvalid, err
	}

	if dirs.Contains(game.Dir()) {
		inner, err := lister.ListDirs(fsys, filepath.Join(sourcePath, game.Dir()))
		if err != nil {
			return types.LayoutInvalid, err
		}
		if !inner.Contains(types.MapsDirName) {
			return types.LayoutInvalid, errors.Newf(errors.ErrInvalidMapDir,
				"'%s' is not a valid map directory (directory '%s' not found)",
				sourcePath, filepath.Join(sourcePath, game.Dir(), types.MapsDirName))
		}
		logger.Debug().Str("source", sourcePath).Msg("Source is game-rooted")
		return types.LayoutGameRooted, nil
	}

	if dirs.Contains(types.MapsDirName) {
		logger.Debug().Str("source", sourcePath).Msg("Source is maps-rooted")
		return types.LayoutMapsRooted, nil
	}

	files, err := lister.ListFiles(fsys, sourcePath)
	if err != nil {
		return types.LayoutInvalid, err
	}
	for name := range files {
		if strings.HasSuffix(name, types.MapFileSuffix) {
			logger.Debug().Str("source", sourcePath).Msg("Source holds bare map files")
			return types.LayoutBareMapFiles, nil
		}
	}

	return types.LayoutInvalid, errors.Newf(errors.ErrInvalidMapDir,
		"'%s' is not a valid map directory (no '%s' or '%s' subdirectory and no %s files)",
		sourcePath, game.Dir(), types.MapsDirName, types.MapFileSuffix)
}
