package engine

import "fmt"

// Coordinate identifies a cell on the grid
type Coordinate struct {
	X int // 0-indexed from left
	Y int // 0-indexed from top
}

// String formats the coordinate as (x,y)
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// neighborOffsets lists the Moore neighbourhood in a fixed order
var neighborOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Grid is the immutable rectangle the game is played on
type Grid struct {
	Width  int
	Height int
}

// NewGrid creates a grid, rejecting non-positive dimensions
func NewGrid(width, height int) (Grid, error) {
	if width <= 0 || height <= 0 {
		return Grid{}, fmt.Errorf("%w: grid must be at least 1x1, got %dx%d", ErrInvalidConfiguration, width, height)
	}
	return Grid{Width: width, Height: height}, nil
}

// Contains returns true if the coordinate is within bounds
func (g Grid) Contains(c Coordinate) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// CellCount returns the total number of cells
func (g Grid) CellCount() int {
	return g.Width * g.Height
}

// Coordinates returns every coordinate in row-major order
func (g Grid) Coordinates() []Coordinate {
	coords := make([]Coordinate, 0, g.CellCount())
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			coords = append(coords, Coordinate{X: x, Y: y})
		}
	}
	return coords
}

// Neighbors returns the in-bounds cells surrounding c (at most 8)
func (g Grid) Neighbors(c Coordinate) CoordinateSet {
	return NewCoordinateSet(g.neighborList(c)...)
}

// FilterAdjacent returns the members of candidates that neighbour c
func (g Grid) FilterAdjacent(c Coordinate, candidates CoordinateSet) CoordinateSet {
	result := NewCoordinateSet()
	for _, n := range g.neighborList(c) {
		if candidates.Has(n) {
			result.Put(n)
		}
	}
	return result
}

// countAdjacent is FilterAdjacent(c, candidates).Size() without the allocation
func (g Grid) countAdjacent(c Coordinate, candidates CoordinateSet) int {
	count := 0
	for _, n := range g.neighborList(c) {
		if candidates.Has(n) {
			count++
		}
	}
	return count
}

func (g Grid) neighborList(c Coordinate) []Coordinate {
	result := make([]Coordinate, 0, len(neighborOffsets))
	for _, off := range neighborOffsets {
		n := Coordinate{X: c.X + off[0], Y: c.Y + off[1]}
		if g.Contains(n) {
			result = append(result, n)
		}
	}
	return result
}
