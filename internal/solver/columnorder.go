package solver

import "github.com/connect4lab/solver/internal/position"

// columnOrder explores the centre column first, then alternates outward
// ([3,2,4,1,5,0,6] for W=7): the centre column intersects the most lines
// of four, so trying it first tends to cut the widest subtrees earliest.
var columnOrder = buildColumnOrder()

func buildColumnOrder() [position.W]int {
	var order [position.W]int
	for i := 0; i < position.W; i++ {
		offset := (i + 1) / 2
		if i%2 == 0 {
			order[i] = position.Centre + offset
		} else {
			order[i] = position.Centre - offset
		}
	}
	return order
}
