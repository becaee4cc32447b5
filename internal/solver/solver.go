// Package solver implements the negamax search with alpha-beta pruning,
// transposition-table lookups, and null-window iterative deepening
// described in the design: given a legal, non-terminal Position, it
// returns the game-theoretic score under optimal play.
package solver

import (
	"github.com/connect4lab/solver/internal/position"
	"github.com/connect4lab/solver/internal/sorter"
	"github.com/connect4lab/solver/internal/ttable"
)

// boundOffset (maxScore - 2*minScore + 2) is added to a lower bound when
// it is stored and subtracted back out when a lower bound is decoded.
// Upper bounds use the offset -minScore + 1 instead; upperBoundCeiling
// below is the threshold that tells the two ranges apart.
const boundOffset = position.MaxScore - 2*position.MinScore + 2

// upperBoundCeiling is the largest value an encoded upper bound can take
// (maxScore - minScore + 1). Any stored value greater than this is a
// lower bound instead; this is the sole discriminator between the two,
// so an implementation must keep both offsets and this test in lockstep.
const upperBoundCeiling = position.MaxScore - position.MinScore + 1

// Solver owns the transposition table and node counter for repeated
// Solve/Analyze calls against a stream of positions. It is not
// goroutine-safe: the search is single-threaded, and one Solver must not
// be shared across concurrent callers. Every Solver also draws its move
// sorters from the sorter package's single process-wide pool, indexed by
// search depth, so two searches running at the same time on distinct
// Solvers use the same pool slots.
type Solver struct {
	tt        *ttable.Table
	nodeCount uint64
}

// New returns a Solver with a freshly zeroed, default-sized
// transposition table.
func New() *Solver {
	return &Solver{tt: ttable.New(ttable.DefaultLog2Size)}
}

// NodeCount returns the number of negamax frames visited since
// construction or the last Reset.
func (s *Solver) NodeCount() uint64 { return s.nodeCount }

// Reset clears the transposition table and the node counter.
func (s *Solver) Reset() {
	s.tt.Reset()
	s.nodeCount = 0
}

// Solve returns the game-theoretic score of p from the perspective of
// the side to move. In strong mode the magnitude encodes how quickly
// the game ends (a faster win scores higher, a slower loss scores less
// negative); in weak mode only the sign survives.
//
// Precondition: p is not terminal and the side to move cannot win on
// their very next move (p.CanWinNext() == false). The caller is
// responsible for this; Solve does not special-case it (Analyze does,
// for exactly the columns where it would otherwise apply).
func (s *Solver) Solve(p position.Position, weak bool) int {
	var lo, hi int
	if weak {
		lo, hi = -1, 1
	} else {
		lo = -(position.BoardSize - p.Moves()) / 2
		hi = (position.BoardSize + 1 - p.Moves()) / 2
	}

	for lo < hi {
		mid := lo + (hi-lo)/2
		switch {
		case mid <= 0 && lo/2 < mid:
			mid = lo / 2
		case mid >= 0 && hi/2 > mid:
			mid = hi / 2
		}

		r := s.negamax(p, mid, mid+1)
		if r <= mid {
			hi = r
		} else {
			lo = r
		}
	}
	return lo
}

// Analyze scores every column of p individually: Analyze(p)[c] is nil
// if column c is unplayable, the immediate-win ceiling if playing c
// wins outright, and -Solve(p.after(c), weak) otherwise. It is the only
// place that handles a position one ply away from CanWinNext, since
// Solve's precondition forbids passing such a position in directly.
func (s *Solver) Analyze(p position.Position, weak bool) [position.W]*int {
	var scores [position.W]*int

	immediateWin := (position.BoardSize + 1 - p.Moves()) / 2

	for c := 0; c < position.W; c++ {
		if !p.CanPlay(c) {
			continue
		}
		if p.IsWinningMove(c) {
			v := immediateWin
			if weak {
				v = sign(v)
			}
			scores[c] = &v
			continue
		}

		child := p
		child.Play(c)
		v := -s.Solve(child, weak)
		scores[c] = &v
	}

	return scores
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// negamax evaluates p under the null window (alpha, beta), assuming the
// side to move cannot win immediately (Solve's caller guarantees this at
// the root, and this function preserves it for every recursive
// call by only ever advancing through PossibleNonLosingMoves).
func (s *Solver) negamax(p position.Position, alpha, beta int) int {
	s.nodeCount++

	next := p.PossibleNonLosingMoves()
	if next == 0 {
		// Every reply lets the opponent win on their next move.
		return -(position.BoardSize - p.Moves()) / 2
	}

	if p.Moves() == position.BoardSize {
		return 0
	}

	// We cannot lose on the very next ply (next != 0 ruled that out), so
	// tighten alpha to the best score a loss-next-ply position could
	// reach.
	minBound := -(position.BoardSize - 2 - p.Moves()) / 2
	if alpha < minBound {
		alpha = minBound
		if alpha >= beta {
			return alpha
		}
	}

	// By precondition we cannot win on this ply either, so beta can be
	// capped the same way.
	maxBound := (position.BoardSize - 1 - p.Moves()) / 2
	if beta > maxBound {
		beta = maxBound
		if alpha >= beta {
			return beta
		}
	}

	key := p.Key()
	if v := s.tt.Get(key); v != 0 {
		if v > int8(upperBoundCeiling) {
			lower := int(v) - boundOffset
			if alpha < lower {
				alpha = lower
				if alpha >= beta {
					return alpha
				}
			}
		} else {
			upper := int(v) + position.MinScore - 1
			if beta > upper {
				beta = upper
				if alpha >= beta {
					return beta
				}
			}
		}
	}

	moves := sorter.New(p.Moves())
	for _, c := range columnOrder {
		move := next & position.ColumnMask(c)
		if move != 0 {
			moves.Add(move, p.MoveScore(move))
		}
	}

	for {
		move, ok := moves.Next()
		if !ok {
			break
		}

		child := p
		child.PlayMove(move)
		score := -s.negamax(child, -beta, -alpha)

		if score >= beta {
			s.tt.Put(key, int8(score+boundOffset))
			return score
		}
		if score > alpha {
			alpha = score
		}
	}

	s.tt.Put(key, int8(alpha-position.MinScore+1))
	return alpha
}
