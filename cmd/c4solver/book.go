package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/connect4lab/solver/internal/book"
	"github.com/connect4lab/solver/internal/config"
	"github.com/connect4lab/solver/internal/position"
)

// openBookStore opens the badger-backed Store at cfg.BookPath, or
// returns (nil, nil) when no book path is configured. solve and analyze
// treat a nil Store as "no cache": they skip the early-exit lookup and
// run a full search instead. Unlike book build/lookup, a missing book
// path here is not an error — the book is strictly an optional speedup.
func openBookStore(cfg config.Config) (*book.Store, error) {
	if cfg.BookPath == "" {
		return nil, nil
	}
	return book.Open(cfg.BookPath, 0)
}

func newBookCmd(logger zerolog.Logger, rf *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "book",
		Short: "Manage the opening-book cache",
	}

	cmd.AddCommand(newBookBuildCmd(logger, rf), newBookLookupCmd(logger, rf))
	return cmd
}

// newBookBuildCmd loads an on-disk book file (produced by the
// out-of-scope generator) and preloads it into the badger-backed Store
// at the configured path. It never generates book entries itself.
func newBookBuildCmd(logger zerolog.Logger, rf *rootFlags) *cobra.Command {
	var maxDepth int

	cmd := &cobra.Command{
		Use:   "build <book-file>",
		Short: "Preload a badger cache from an on-disk book file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(rf)
			if err != nil {
				return err
			}
			if cfg.BookPath == "" {
				return errBookPathRequired
			}

			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			bookFile, err := book.Load(f)
			if err != nil {
				return err
			}

			store, err := book.Open(cfg.BookPath, maxDepth)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Preload(bookFile); err != nil {
				return err
			}

			logger.Info().Int("entries", len(bookFile.Entries())).Str("store", cfg.BookPath).Msg("book preloaded")
			return nil
		},
	}

	cmd.Flags().IntVar(&maxDepth, "max-depth", 0, "skip preloading book files deeper than this")
	return cmd
}

func newBookLookupCmd(logger zerolog.Logger, rf *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <moves>",
		Short: "Look up a position's cached score without invoking the solver",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(rf)
			if err != nil {
				return err
			}
			if cfg.BookPath == "" {
				return errBookPathRequired
			}

			p, err := position.FromMoves(args[0])
			if err != nil {
				return err
			}

			store, err := book.Open(cfg.BookPath, 0)
			if err != nil {
				return err
			}
			defer store.Close()

			score, ok := store.Lookup(p.Key3())
			if !ok {
				cmd.Println("miss")
				return nil
			}
			cmd.Println(score)
			return nil
		},
	}
}
