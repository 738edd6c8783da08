// Package detect suggests a plausible game installation path for pre-filling
// user input. Everything here is best-effort: failures mean "no suggestion",
// never an error the caller must handle.
package detect

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/csmaptools/mapinstall/pkg/lister"
	"github.com/csmaptools/mapinstall/pkg/logging"
	"github.com/csmaptools/mapinstall/pkg/types"
)

// SuggestGamePath searches each candidate root, in order, for a directory
// named after one of the given games and returns the parent of the first
// match. Returns "" when nothing matches.
func SuggestGamePath(fsys types.FS, roots []string, games []types.GameType) string {
	logger := logging.GetLogger("detect")

	for _, root := range roots {
		info, err := fsys.Stat(root)
		if err != nil || !info.IsDir() {
			continue
		}
		for _, game := range games {
			found, err := lister.FindFirstDirNamed(fsys, game.Dir(), root)
			if err != nil {
				logger.Debug().Err(err).Str("root", root).Msg("Skipping unreadable candidate root")
				continue
			}
			if found != "" {
				suggestion := filepath.Dir(found)
				logger.Debug().Str("path", suggestion).Str("game", game.String()).Msg("Suggesting game path")
				return suggestion
			}
		}
	}
	return ""
}

// DefaultCandidateRoots lists the places a Steam Half-Life installation
// usually lives on this machine.
func DefaultCandidateRoots() []string {
	var roots []string
	if home, err := os.UserHomeDir(); err == nil {
		roots = append(roots,
			filepath.Join(home, ".local", "share", "Steam", "steamapps", "common"),
			filepath.Join(home, ".steam", "steam", "steamapps", "common"),
			filepath.Join(home, ".steam", "root", "steamapps", "common"),
			filepath.Join(home, ".var", "app", "com.valvesoftware.Steam", "data", "Steam", "steamapps", "common"),
		)
	}
	for _, dataDir := range xdg.DataDirs {
		roots = append(roots, filepath.Join(dataDir, "Steam", "steamapps", "common"))
	}
	return roots
}
