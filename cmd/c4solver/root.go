package main

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/connect4lab/solver/internal/config"
)

// rootFlags collects the persistent flags shared by every subcommand.
type rootFlags struct {
	configPath string
	fs         *pflag.FlagSet
}

func newRootCmd(logger zerolog.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:   "c4solver",
		Short: "Perfect solver for Connect Four",
	}

	rf := &rootFlags{}
	root.PersistentFlags().StringVar(&rf.configPath, "config", "", "path to a YAML config file")
	config.BindFlags(root.PersistentFlags())
	rf.fs = root.PersistentFlags()

	root.AddCommand(
		newSolveCmd(logger, rf),
		newAnalyzeCmd(logger, rf),
		newBenchCmd(logger, rf),
		newBookCmd(logger, rf),
	)

	return root
}

func loadConfig(rf *rootFlags) (config.Config, error) {
	return config.Load(rf.configPath, rf.fs)
}
