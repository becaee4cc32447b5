package main

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/connect4lab/solver/internal/book"
	"github.com/connect4lab/solver/internal/position"
	"github.com/connect4lab/solver/internal/solver"
)

func newSolveCmd(logger zerolog.Logger, rf *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "solve <moves>",
		Short: "Print the game-theoretic score of a position",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(rf)
			if err != nil {
				return err
			}

			p, err := position.FromMoves(args[0])
			if err != nil {
				return err
			}
			if p.CanWinNext() {
				return fmt.Errorf("position has an immediate winning move; use analyze instead")
			}

			// The book caches strong scores keyed by Key3; weak mode only
			// wants a sign, so it skips the cache rather than mix the two
			// score spaces under one key.
			var store *book.Store
			if !cfg.Weak {
				store, err = openBookStore(cfg)
				if err != nil {
					return err
				}
				if store != nil {
					defer store.Close()

					if cached, ok := store.Lookup(p.Key3()); ok {
						logger.Info().Str("moves", args[0]).Int("score", cached).Bool("bookHit", true).Msg("solved")
						cmd.Println(cached)
						return nil
					}
				}
			}

			s := solver.New()
			start := time.Now()
			score := s.Solve(p, cfg.Weak)
			elapsed := time.Since(start)

			logger.Info().
				Str("moves", args[0]).
				Int("score", score).
				Uint64("nodes", s.NodeCount()).
				Dur("elapsed", elapsed).
				Msg("solved")

			if store != nil {
				if err := store.Store(p.Key3(), score); err != nil {
					return err
				}
			}

			cmd.Println(score)
			return nil
		},
	}
}
