package bench

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"lukechampine.com/frand"

	"github.com/connect4lab/solver/internal/position"
	"github.com/connect4lab/solver/internal/solver"
)

// Result is the outcome of running one Case through the solver.
type Result struct {
	Case     Case
	Got      int
	Nodes    uint64
	Elapsed  time.Duration
	Passed   bool
	ParseErr error
}

// FileResult groups every Result from one dataset file under its path.
type FileResult struct {
	Path    string
	Results []Result
}

// Runner drives the benchmark datasets against the solver. It holds no
// solver state itself: every case gets a fresh solver.Solver so one
// file's transposition table never leaks into another's timing.
type Runner struct {
	// Weak selects weak-mode solving (sign only) instead of strong.
	Weak bool
	// Shuffle randomizes case order within a file before timing, so a
	// benchmark accidentally sorted by difficulty doesn't skew
	// early-abort measurements.
	Shuffle bool
	// Logger receives one structured event per case; the zero value
	// (zerolog.Nop()) silences it.
	Logger zerolog.Logger
}

// RunFile parses and solves every case in one dataset file sequentially.
func (r *Runner) RunFile(path string) (FileResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return FileResult{}, err
	}
	defer f.Close()

	cases, err := ParseDataset(f)
	if err != nil {
		return FileResult{}, err
	}

	if r.Shuffle {
		frand.Shuffle(len(cases), func(i, j int) {
			cases[i], cases[j] = cases[j], cases[i]
		})
	}

	results := make([]Result, len(cases))
	for i, c := range cases {
		results[i] = r.runCase(path, c)
	}

	return FileResult{Path: path, Results: results}, nil
}

func (r *Runner) runCase(path string, c Case) Result {
	p, err := position.FromMoves(c.Moves)
	if err != nil {
		return Result{Case: c, ParseErr: err}
	}

	s := solver.New()
	start := time.Now()
	got := s.Solve(p, r.Weak)
	elapsed := time.Since(start)

	passed := got == c.Expected
	r.Logger.Debug().
		Str("file", filepath.Base(path)).
		Str("moves", c.Moves).
		Int("expected", c.Expected).
		Int("got", got).
		Uint64("nodes", s.NodeCount()).
		Dur("elapsed", elapsed).
		Bool("passed", passed).
		Msg("bench case")

	return Result{Case: c, Got: got, Nodes: s.NodeCount(), Elapsed: elapsed, Passed: passed}
}

// RunDir runs every *.txt dataset file under dir concurrently, one
// goroutine per file via errgroup — concurrency is strictly across
// independent files, never inside a single solve, so the solver's
// single-threaded-search invariant holds throughout.
func (r *Runner) RunDir(ctx context.Context, dir string) ([]FileResult, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".txt" {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}

	results := make([]FileResult, len(paths))
	g, _ := errgroup.WithContext(ctx)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			fr, err := r.RunFile(path)
			if err != nil {
				return err
			}
			results[i] = fr
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
