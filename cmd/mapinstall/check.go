package main

import (
	"github.com/csmaptools/mapinstall/pkg/filesystem"
	"github.com/csmaptools/mapinstall/pkg/layout"
	"github.com/csmaptools/mapinstall/pkg/scanner"
	"github.com/csmaptools/mapinstall/pkg/types"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var checkGame string

var checkCmd = &cobra.Command{
	Use:   "check MAP_PATH GAME_PATH",
	Short: "Classify a map bundle and report conflicts without installing",
	Args:  cobra.ExactArgs(2),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().StringVarP(&checkGame, "game", "g", "", "game type: czero or cstrike")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	game, err := resolveGame(checkGame)
	if err != nil {
		return err
	}
	mapPath, gamePath := args[0], args[1]
	fsys := filesystem.NewOS()

	lay, err := layout.Classify(fsys, mapPath, game)
	if err != nil {
		return err
	}
	pterm.Info.Printfln("Layout: %s", lay)

	if lay != types.LayoutGameRooted {
		pterm.Println("Conflict scan needs a game-rooted source; this layout is reshaped during install and only then merged, file by file, without overwriting.")
		return nil
	}

	pair, err := scanner.FindConflict(fsys, mapPath, gamePath, game)
	if err != nil {
		return err
	}
	if pair == nil {
		pterm.Success.Println("No conflicting files found.")
		return nil
	}
	pterm.Warning.Printfln("Conflicting file found:")
	pterm.Printfln("  map:  %s", pair.Source)
	pterm.Printfln("  game: %s", pair.Dest)
	return nil
}
