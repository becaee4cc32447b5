package main

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/connect4lab/solver/internal/bench"
)

func newBenchCmd(logger zerolog.Logger, rf *rootFlags) *cobra.Command {
	var shuffle bool

	cmd := &cobra.Command{
		Use:   "bench <dir>",
		Short: "Run every dataset file in a directory against the solver",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(rf)
			if err != nil {
				return err
			}

			runner := &bench.Runner{Weak: cfg.Weak, Shuffle: shuffle, Logger: logger}
			results, err := runner.RunDir(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			total, passed := 0, 0
			for _, fr := range results {
				for _, res := range fr.Results {
					total++
					if res.Passed {
						passed++
					}
				}
			}

			logger.Info().Int("total", total).Int("passed", passed).Msg("bench complete")
			cmd.Printf("%d/%d passed\n", passed, total)
			return nil
		},
	}

	cmd.Flags().BoolVar(&shuffle, "shuffle", false, "randomize case order within each file")
	return cmd
}
