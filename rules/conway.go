package rules

/*
NextState applies Conway's Game of Life rules (B3/S23) to determine the next
state of a single cell from its current state and live-neighbour count.

The numeric encoding folds birth and survival into two comparisons:
nbrs == 3 covers birth and survival with three neighbours, while
alive+nbrs == 3 covers a live cell with exactly two neighbours.
*/
func NextState(alive uint8, nbrs int) uint8 {
	if nbrs == 3 || int(alive)+nbrs == 3 {
		return 1
	}
	return 0
}
