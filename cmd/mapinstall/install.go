package main

import (
	"fmt"

	"github.com/csmaptools/mapinstall/pkg/detect"
	"github.com/csmaptools/mapinstall/pkg/filesystem"
	"github.com/csmaptools/mapinstall/pkg/install"
	"github.com/csmaptools/mapinstall/pkg/layout"
	"github.com/csmaptools/mapinstall/pkg/scanner"
	"github.com/csmaptools/mapinstall/pkg/types"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	installGame    string
	installReplace bool
	installYes     bool
)

var installCmd = &cobra.Command{
	Use:   "install MAP_PATH [GAME_PATH]",
	Short: "Install a map bundle into a game directory",
	Long: `Install the map bundle at MAP_PATH into a game installation.

GAME_PATH may be omitted when a default is configured or a Steam
installation can be detected. Existing files are kept unless --replace is
given; when a content conflict is found you are asked before anything is
overwritten.`,
	Example: `  mapinstall install ~/Downloads/de_dust_cz --game czero
  mapinstall install ./mappack "~/.steam/steam/steamapps/common/Half-Life" -g cstrike --replace`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runInstall,
}

func init() {
	installCmd.Flags().StringVarP(&installGame, "game", "g", "", "game type: czero or cstrike")
	installCmd.Flags().BoolVarP(&installReplace, "replace", "r", false, "overwrite files that already exist in the game directory")
	installCmd.Flags().BoolVarP(&installYes, "yes", "y", false, "never prompt; keep existing files unless --replace is given")
	rootCmd.AddCommand(installCmd)
}

func runInstall(cmd *cobra.Command, args []string) error {
	game, err := resolveGame(installGame)
	if err != nil {
		return err
	}

	mapPath := args[0]
	gamePath, err := resolveGamePath(args)
	if err != nil {
		return err
	}

	fsys := filesystem.NewOS()
	replace := installReplace || cfg.Replace

	// Conflict pre-check, so the user can decide before anything is
	// written. Only a game-rooted source can be scanned against the
	// installation directly; other layouts have nothing in place to
	// conflict with until staged, and the merge itself never overwrites
	// without replace.
	if !replace && !installYes {
		lay, err := layout.Classify(fsys, mapPath, game)
		if err != nil {
			return err
		}
		if lay == types.LayoutGameRooted {
			pair, err := scanner.FindConflict(fsys, mapPath, gamePath, game)
			if err != nil {
				return err
			}
			if pair != nil {
				pterm.Warning.Printfln("Conflicting file found:")
				pterm.Printfln("  map:  %s", pair.Source)
				pterm.Printfln("  game: %s", pair.Dest)
				overwrite, err := pterm.DefaultInteractiveConfirm.
					WithDefaultValue(false).
					Show("Overwrite files that differ from the installed ones?")
				if err != nil {
					return err
				}
				replace = overwrite
			}
		}
	}

	res, err := install.Install(install.Options{
		MapPath:  mapPath,
		GamePath: gamePath,
		Game:     game,
		Replace:  replace,
	})
	if err != nil {
		return err
	}

	pterm.Success.Printfln("Installed %s map into %s (%d copied, %d skipped)",
		game, gamePath, res.FilesCopied, res.FilesSkipped)
	return nil
}

// resolveGame picks the game type from the flag, then the config default.
func resolveGame(flagValue string) (types.GameType, error) {
	if flagValue != "" {
		return types.ParseGameType(flagValue)
	}
	if cfg.GameType != "" {
		return types.ParseGameType(cfg.GameType)
	}
	return "", fmt.Errorf("no game type given; pass --game czero or --game cstrike")
}

// resolveGamePath picks the game path from the argument, then the config
// default, then Steam detection.
func resolveGamePath(args []string) (string, error) {
	if len(args) > 1 {
		return args[1], nil
	}
	if cfg.GamePath != "" {
		return cfg.GamePath, nil
	}
	if found := detect.SuggestGamePath(filesystem.NewOS(), detect.DefaultCandidateRoots(), types.KnownGameTypes()); found != "" {
		pterm.Info.Printfln("Using detected game path %s", found)
		return found, nil
	}
	return "", fmt.Errorf("no game path given and no installation could be detected; pass GAME_PATH")
}
