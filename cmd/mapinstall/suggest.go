package main

import (
	"fmt"

	"github.com/csmaptools/mapinstall/pkg/detect"
	"github.com/csmaptools/mapinstall/pkg/filesystem"
	"github.com/csmaptools/mapinstall/pkg/types"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Print the detected game installation path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		found := detect.SuggestGamePath(filesystem.NewOS(), detect.DefaultCandidateRoots(), types.KnownGameTypes())
		if found == "" {
			return fmt.Errorf("no game installation found in the usual Steam locations")
		}
		pterm.Println(found)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(suggestCmd)
}
