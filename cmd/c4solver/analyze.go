package main

import (
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/connect4lab/solver/internal/book"
	"github.com/connect4lab/solver/internal/position"
	"github.com/connect4lab/solver/internal/solver"
)

func newAnalyzeCmd(logger zerolog.Logger, rf *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "analyze <moves>",
		Short: "Print the score of every playable column",
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

			// Same restriction as solve: the book only caches strong
			// scores keyed by Key3, so weak mode skips it entirely.
			var store *book.Store
			if !cfg.Weak {
				store, err = openBookStore(cfg)
				if err != nil {
					return err
				}
				if store != nil {
					defer store.Close()
				}
			}

			s := solver.New()
			scores, err := analyzeColumns(s, store, p, cfg.Weak)
			if err != nil {
				return err
			}

			logger.Info().Str("moves", args[0]).Uint64("nodes", s.NodeCount()).Msg("analyzed")

			fields := make([]string, position.W)
			for c, v := range scores {
				if v == nil {
					fields[c] = "-"
					continue
				}
				fields[c] = strconv.Itoa(*v)
			}
			cmd.Println(strings.Join(fields, " "))
			return nil
		},
	}
}

// analyzeColumns mirrors Solver.Analyze column by column (spec §4.4),
// but — unlike Analyze, which the core solver owns and which never
// imports the book per the one-way-dependency rule — consults store as
// an early-exit cache before each child Solve and fills it back with
// whatever the search finds, so the CLI actually exercises the book's
// "optionally preload a map from position-key to precomputed score"
// contract (spec §1) for analyze too, not just solve. store is nil when
// no book path is configured or cfg.Weak is set, in which case this
// behaves exactly like Solver.Analyze.
func analyzeColumns(s *solver.Solver, store *book.Store, p position.Position, weak bool) ([position.W]*int, error) {
	var scores [position.W]*int
	immediateWin := (position.BoardSize + 1 - p.Moves()) / 2

	for c := 0; c < position.W; c++ {
		if !p.CanPlay(c) {
			continue
		}
		if p.IsWinningMove(c) {
			v := immediateWin
			if weak {
				v = signOf(v)
			}
			scores[c] = &v
			continue
		}

		child := p
		child.Play(c)

		if store != nil {
			if cached, ok := store.Lookup(child.Key3()); ok {
				v := -cached
				scores[c] = &v
				continue
			}
		}

		childScore := s.Solve(child, weak)
		v := -childScore
		scores[c] = &v

		if store != nil {
			if err := store.Store(child.Key3(), childScore); err != nil {
				return scores, err
			}
		}
	}

	return scores, nil
}

func signOf(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
