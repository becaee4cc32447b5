// Package sorter implements the MoveSorter described in the solver's
// component design: a small (at most W entries), in-place, descending-
// score ranking of the candidate moves at one search node.
//
// Sorter borrows a depth-indexed slice of a process-lifetime pool,
// matching the original design's cache-locality optimisation (the
// search is single-threaded and strictly depth-first, so no two live
// Sorters ever share a slice).
package sorter

import "github.com/connect4lab/solver/internal/position"

type entry struct {
	move  uint64
	score int
}

// pool backs every Sorter constructed via New. It holds W·H·W entries:
// one W-entry slot per depth the search can ever be called at.
var pool = make([]entry, position.BoardSize*position.W)

// Sorter ranks up to W candidate moves in descending score, backed by
// the shared pool slot for its search depth.
type Sorter struct {
	slots []entry
	count int
}

// New returns a Sorter using the pool slot reserved for search depth d.
// Precondition: 0 <= d < BoardSize, and no sibling Sorter at depth d is
// currently live.
func New(d int) *Sorter {
	start := d * position.W
	return &Sorter{slots: pool[start : start+position.W : start+position.W]}
}

// Add inserts move with the given score via insertion sort: entries
// already present with a strictly greater score are shifted up to make
// room, so the slots end up ascending by score (ties keep the
// earlier-inserted entry below, so it pops after the new one).
// Precondition: fewer than W moves have been added so far.
func (s *Sorter) Add(move uint64, score int) {
	i := s.count
	for i > 0 && s.slots[i-1].score > score {
		s.slots[i] = s.slots[i-1]
		i--
	}
	s.slots[i] = entry{move: move, score: score}
	s.count++
}

// Next pops the highest-scored remaining move. ok is false once every
// added move has been returned; the sequence does not restart.
func (s *Sorter) Next() (move uint64, ok bool) {
	if s.count == 0 {
		return 0, false
	}
	s.count--
	return s.slots[s.count].move, true
}
