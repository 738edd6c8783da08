package main

import (
	"github.com/csmaptools/mapinstall/pkg/config"
	"github.com/csmaptools/mapinstall/pkg/logging"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	verbosity int
	cfgFile   string
	cfg       *config.Config

	rootCmd = &cobra.Command{
		Use:   "mapinstall",
		Short: "Install Counter-Strike and Condition Zero map bundles",
		Long: `mapinstall copies map asset bundles into a Counter-Strike or
Condition Zero installation. It recognizes the common archive layouts
(game-rooted, maps-rooted, loose .bsp files), reshapes them to the canonical
<game>/maps form, and merges them into the game directory without ever
deleting anything already there.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(cfgFile)
			if err != nil {
				return err
			}
			if verbosity == 0 && cfg.Verbosity > 0 {
				verbosity = cfg.Verbosity
			}
			logging.Setup(verbosity)
			initTerminalOutput()
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default is $XDG_CONFIG_HOME/mapinstall/config.toml)")
}
