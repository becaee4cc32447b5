// Command c4solver is the thin external shell around the core solver:
// it parses a move string, calls the solver, and prints the result. Per
// the core's non-goals, none of the search logic lives here.
package main

import (
	"os"

	"github.com/rs/zerolog"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	root := newRootCmd(logger)
	if err := root.Execute(); err != nil {
		logger.Fatal().Err(err).Msg("c4solver failed")
	}
}
