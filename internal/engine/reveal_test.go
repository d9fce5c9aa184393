package engine

import (
	mathrand "math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// board parses rows of '.' and '*' into a grid and its mines
func board(rows ...string) (Grid, CoordinateSet) {
	grid := Grid{Width: len(rows[0]), Height: len(rows)}
	mines := NewCoordinateSet()
	for y, row := range rows {
		for x, ch := range row {
			if ch == '*' {
				mines.Put(Coordinate{X: x, Y: y})
			}
		}
	}
	return grid, mines
}

func allExcept(grid Grid, excluded ...Coordinate) CoordinateSet {
	result := NewCoordinateSet(grid.Coordinates()...)
	for _, c := range excluded {
		result.Remove(c)
	}
	return result
}

func TestRevealBlankBoardFloodsEverything(t *testing.T) {
	grid, mines := board(
		"...",
		"...",
		"...",
	)

	revealed := Reveal(grid, NewCoordinateSet(), mines, NewCoordinateSet(), Coordinate{0, 0})

	assert.Equal(t, 9, revealed.Size())
}

func TestRevealStopsAtNumberedCells(t *testing.T) {
	grid, mines := board(
		".*...",
		".....",
		".....",
	)

	revealed := Reveal(grid, NewCoordinateSet(), mines, NewCoordinateSet(), Coordinate{4, 2})

	// (0,0) only borders numbered cells, so the flood never reaches it
	assert.True(t, revealed.Equal(allExcept(grid, Coordinate{1, 0}, Coordinate{0, 0})))
}

func TestRevealNumberedCellDoesNotPropagate(t *testing.T) {
	grid, mines := board(
		".*...",
		".....",
	)

	revealed := Reveal(grid, NewCoordinateSet(), mines, NewCoordinateSet(), Coordinate{2, 1})

	assert.True(t, revealed.Equal(NewCoordinateSet(Coordinate{2, 1})))
}

func TestRevealMineRevealsOnlyItself(t *testing.T) {
	grid, mines := board(
		"....",
		".*..",
		"....",
	)

	revealed := Reveal(grid, NewCoordinateSet(), mines, NewCoordinateSet(), Coordinate{1, 1})

	assert.True(t, revealed.Equal(NewCoordinateSet(Coordinate{1, 1})))
}

func TestRevealSkipsFlaggedAndRevealedTargets(t *testing.T) {
	grid, mines := board(
		"...",
		"...",
	)
	target := Coordinate{0, 0}

	flagged := ExclusiveReveal(grid, NewCoordinateSet(target), mines, NewCoordinateSet(), target)
	assert.Equal(t, 0, flagged.Size())

	already := NewCoordinateSet(target)
	exposed := ExclusiveReveal(grid, NewCoordinateSet(), mines, already, target)
	assert.Equal(t, 0, exposed.Size())
	assert.True(t, Reveal(grid, NewCoordinateSet(), mines, already, target).Equal(already))
}

func TestRevealFlagsBlockTheFlood(t *testing.T) {
	grid, mines := board(".....")
	flags := NewCoordinateSet(Coordinate{2, 0})

	revealed := Reveal(grid, flags, mines, NewCoordinateSet(), Coordinate{0, 0})

	assert.True(t, revealed.Equal(NewCoordinateSet(Coordinate{0, 0}, Coordinate{1, 0})))
}

func TestRevealDoesNotMutateInputs(t *testing.T) {
	grid, mines := board(
		"....",
		"....",
		"...*",
	)
	flags := NewCoordinateSet(Coordinate{0, 2})
	revealed := NewCoordinateSet(Coordinate{3, 0})

	result := Reveal(grid, flags, mines, revealed, Coordinate{0, 0})

	assert.Equal(t, 1, revealed.Size())
	assert.Equal(t, 1, flags.Size())
	assert.Equal(t, 1, mines.Size())
	assert.True(t, revealed.SubsetOf(result))
	assert.False(t, result.Has(Coordinate{0, 2}))
}

func TestExclusiveRevealReturnsOnlyNewCells(t *testing.T) {
	grid, mines := board(
		"...",
		"...",
	)
	revealed := NewCoordinateSet(Coordinate{2, 1})

	exposed := ExclusiveReveal(grid, NewCoordinateSet(), mines, revealed, Coordinate{0, 0})

	assert.Equal(t, 5, exposed.Size())
	assert.False(t, exposed.Has(Coordinate{2, 1}))
}

func TestFloodFillIsOrderIndependent(t *testing.T) {
	rng := mathrand.New(mathrand.NewPCG(1, 2))

	for trial := 0; trial < 200; trial++ {
		grid := Grid{Width: 3 + rng.IntN(10), Height: 3 + rng.IntN(10)}
		mines := NewCoordinateSet()
		flags := NewCoordinateSet()
		revealed := NewCoordinateSet()
		for _, c := range grid.Coordinates() {
			switch roll := rng.IntN(100); {
			case roll < 12:
				mines.Put(c)
			case roll < 16:
				flags.Put(c)
			case roll < 18:
				revealed.Put(c)
			}
		}
		target := Coordinate{X: rng.IntN(grid.Width), Y: rng.IntN(grid.Height)}

		want := floodFill(grid, flags, mines, revealed, target, naturalOrder)

		shuffled := func(coords []Coordinate) []Coordinate {
			rng.Shuffle(len(coords), func(i, j int) { coords[i], coords[j] = coords[j], coords[i] })
			return coords
		}
		reversed := func(coords []Coordinate) []Coordinate {
			for i, j := 0, len(coords)-1; i < j; i, j = i+1, j-1 {
				coords[i], coords[j] = coords[j], coords[i]
			}
			return coords
		}

		require.True(t, want.Equal(floodFill(grid, flags, mines, revealed, target, shuffled)),
			"trial %d: shuffled order changed the result", trial)
		require.True(t, want.Equal(floodFill(grid, flags, mines, revealed, target, reversed)),
			"trial %d: reversed order changed the result", trial)
	}
}

func TestFloodFillLargeBlankBoard(t *testing.T) {
	grid := Grid{Width: 300, Height: 300}

	exposed := ExclusiveReveal(grid, NewCoordinateSet(), NewCoordinateSet(), NewCoordinateSet(), Coordinate{150, 150})

	assert.Equal(t, grid.CellCount(), exposed.Size())
}

// Chord

func chordBoard() (Grid, CoordinateSet) {
	return board(
		"*...",
		"....",
		"*...",
	)
}

func TestChordOnUnrevealedCellIsNoop(t *testing.T) {
	grid, mines := chordBoard()
	flags := NewCoordinateSet(Coordinate{0, 0}, Coordinate{0, 2})
	revealed := NewCoordinateSet(Coordinate{3, 1})

	result := Chord(grid, flags, mines, revealed, Coordinate{1, 1})

	assert.True(t, result.Equal(revealed))
}

func TestChordWithTooFewFlagsIsNoop(t *testing.T) {
	grid, mines := chordBoard()
	revealed := NewCoordinateSet(Coordinate{1, 1})

	for _, flags := range []CoordinateSet{
		NewCoordinateSet(),
		NewCoordinateSet(Coordinate{0, 0}),
	} {
		result := Chord(grid, flags, mines, revealed, Coordinate{1, 1})
		assert.True(t, result.Equal(revealed))
	}
}

func TestChordWithMatchingFlagsRevealsNeighbours(t *testing.T) {
	grid, mines := chordBoard()
	flags := NewCoordinateSet(Coordinate{0, 0}, Coordinate{0, 2})
	revealed := NewCoordinateSet(Coordinate{1, 1})

	result := Chord(grid, flags, mines, revealed, Coordinate{1, 1})

	// The blank neighbours flood the right-hand side; every safe cell is shown
	assert.True(t, result.Equal(allExcept(grid, Coordinate{0, 0}, Coordinate{0, 2})))
	assert.Equal(t, 1, revealed.Size(), "input set must not be modified")
}

func TestChordTriggersWithMoreFlagsThanMines(t *testing.T) {
	grid, mines := chordBoard()
	revealed := NewCoordinateSet(Coordinate{1, 1})

	// Two misplaced flags satisfy flags >= mines, so the chord fires and
	// uncovers both unflagged mines
	wrongFlags := NewCoordinateSet(Coordinate{1, 0}, Coordinate{2, 1})
	result := Chord(grid, wrongFlags, mines, revealed, Coordinate{1, 1})

	assert.True(t, result.Has(Coordinate{0, 0}))
	assert.True(t, result.Has(Coordinate{0, 2}))
	assert.False(t, result.Has(Coordinate{1, 0}))
	assert.False(t, result.Has(Coordinate{2, 1}))

	// Three flags around two mines also fires
	extraFlags := NewCoordinateSet(Coordinate{0, 0}, Coordinate{0, 2}, Coordinate{1, 2})
	result = Chord(grid, extraFlags, mines, revealed, Coordinate{1, 1})
	assert.True(t, result.Has(Coordinate{2, 2}))
	assert.False(t, result.Intersects(mines))
}

func TestChordComposesFloods(t *testing.T) {
	grid, mines := board(
		".....",
		"..*..",
		".....",
		".....",
		".....",
	)
	flags := NewCoordinateSet(Coordinate{2, 1})
	revealed := NewCoordinateSet(Coordinate{2, 2})

	result := Chord(grid, flags, mines, revealed, Coordinate{2, 2})

	// (2,0) only touches numbered cells, so no flood reaches it
	assert.True(t, result.Equal(allExcept(grid, Coordinate{2, 1}, Coordinate{2, 0})))
}
