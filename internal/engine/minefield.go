package engine

import (
	"fmt"

	"github.com/mcoot/minesweeper-go/internal/dependencies/random"
)

// MinePlacer produces a mine layout that leaves the first click and its
// neighbours free
type MinePlacer interface {
	Generate(grid Grid, mineCount int, firstClick Coordinate) (CoordinateSet, error)
}

// Generator places mines uniformly at random outside the safe zone
type Generator struct {
	random random.Random
}

// NewGenerator creates a Generator drawing from the given random source
func NewGenerator(random random.Random) *Generator {
	return &Generator{random: random}
}

var _ MinePlacer = (*Generator)(nil)

// Generate selects mineCount distinct coordinates outside the 3x3 (or
// smaller, at edges) zone centred on firstClick
func (g *Generator) Generate(grid Grid, mineCount int, firstClick Coordinate) (CoordinateSet, error) {
	excluded := grid.Neighbors(firstClick)
	excluded.Put(firstClick)

	pool := make([]Coordinate, 0, grid.CellCount())
	for _, c := range grid.Coordinates() {
		if !excluded.Has(c) {
			pool = append(pool, c)
		}
	}

	if mineCount > len(pool) {
		return CoordinateSet{}, fmt.Errorf("%w: %d mines requested, %d cells available outside %s",
			ErrInsufficientSpace, mineCount, len(pool), firstClick)
	}

	// Partial Fisher-Yates: pool[:i] holds the mines drawn so far
	mines := NewCoordinateSet()
	for i := 0; i < mineCount; i++ {
		j := i + g.random.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
		mines.Put(pool[i])
	}
	return mines, nil
}
