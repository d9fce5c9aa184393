package engine

// neighborOrder lets tests permute the flood's visitation order
type neighborOrder func([]Coordinate) []Coordinate

func naturalOrder(coords []Coordinate) []Coordinate {
	return coords
}

// ExclusiveReveal returns only the coordinates a reveal of target would
// newly expose. The result is empty when target is already revealed or is
// flagged. None of the input sets are modified.
func ExclusiveReveal(grid Grid, flags, mines, revealed CoordinateSet, target Coordinate) CoordinateSet {
	return floodFill(grid, flags, mines, revealed, target, naturalOrder)
}

// Reveal returns revealed plus everything a reveal of target exposes
func Reveal(grid Grid, flags, mines, revealed CoordinateSet, target Coordinate) CoordinateSet {
	return revealed.Union(ExclusiveReveal(grid, flags, mines, revealed, target))
}

// Chord reveals every neighbour of an already revealed cell when at least
// as many neighbours are flagged as there are adjacent mines.
//
// The comparison is >= rather than ==, so an over-flagged cell still chords
// and unflagged mines among its neighbours get revealed. Classic minesweeper
// requires an exact match instead.
func Chord(grid Grid, flags, mines, revealed CoordinateSet, target Coordinate) CoordinateSet {
	result := revealed.Clone()
	if !revealed.Has(target) {
		return result
	}
	if grid.countAdjacent(target, flags) < grid.countAdjacent(target, mines) {
		return result
	}

	for _, n := range grid.neighborList(target) {
		exposed := ExclusiveReveal(grid, flags, mines, result, n)
		exposed.Each(result.Put)
	}
	return result
}

// floodFill expands from target through blank cells using an explicit stack.
// Each coordinate is marked before it is pushed, so nothing is visited twice
// and the stack never holds more than CellCount entries.
func floodFill(grid Grid, flags, mines, revealed CoordinateSet, target Coordinate, order neighborOrder) CoordinateSet {
	exposed := NewCoordinateSet()
	if revealed.Has(target) || flags.Has(target) {
		return exposed
	}

	exposed.Put(target)
	stack := []Coordinate{target}

	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// Mines and numbered cells are shown but do not propagate
		if mines.Has(c) || grid.countAdjacent(c, mines) > 0 {
			continue
		}

		for _, n := range order(grid.neighborList(c)) {
			if exposed.Has(n) || revealed.Has(n) || flags.Has(n) {
				continue
			}
			exposed.Put(n)
			stack = append(stack, n)
		}
	}

	return exposed
}
