package model

import (
	"time"

	"github.com/mcoot/minesweeper-go/internal/engine"
)

// GameView is a point-in-time copy of a game that is safe to read after
// the session lock is released
type GameView struct {
	ID             GameID
	Width          int
	Height         int
	MineCount      int
	Status         engine.Status
	Epoch          uint64
	RemainingMines int
	Elapsed        time.Duration
	Seed           *uint64
	// Cells are in row-major order
	Cells     []engine.CellView
	CreatedAt time.Time
	UpdatedAt time.Time
}

// View snapshots g as of now
func (g *Game) View(now time.Time) GameView {
	grid := g.State.Grid()
	var seed *uint64
	if g.Seed != nil {
		v := *g.Seed
		seed = &v
	}
	return GameView{
		ID:             g.ID,
		Width:          grid.Width,
		Height:         grid.Height,
		MineCount:      g.State.MineCount(),
		Status:         g.Status(),
		Epoch:          g.State.Epoch(),
		RemainingMines: g.State.RemainingMineCount(),
		Elapsed:        g.Elapsed(now),
		Seed:           seed,
		Cells:          g.State.CellViews(),
		CreatedAt:      g.CreatedAt,
		UpdatedAt:      g.UpdatedAt,
	}
}

// Cell returns the view of the cell at (x, y)
func (v GameView) Cell(x, y int) engine.CellView {
	return v.Cells[y*v.Width+x]
}
