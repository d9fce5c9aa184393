package model

import (
	"time"

	"github.com/mcoot/minesweeper-go/internal/engine"
)

// GameID uniquely identifies a game
type GameID string

// Game is one hosted minesweeper session
type Game struct {
	ID    GameID
	State *engine.State

	// Seed is set when the layout was requested to be reproducible
	Seed *uint64

	CreatedAt time.Time
	UpdatedAt time.Time

	// Timing for the current epoch; reset restarts it
	EpochStartedAt time.Time
	EndedAt        *time.Time
}

// Status returns the outcome of the current epoch
func (g *Game) Status() engine.Status {
	return g.State.Status()
}

// Elapsed returns the play time of the current epoch. The clock stops once
// the game is won or lost.
func (g *Game) Elapsed(now time.Time) time.Duration {
	end := now
	if g.EndedAt != nil {
		end = *g.EndedAt
	}
	if end.Before(g.EpochStartedAt) {
		return 0
	}
	return end.Sub(g.EpochStartedAt)
}

// GameSummary is a lightweight listing entry
type GameSummary struct {
	ID        GameID
	Width     int
	Height    int
	MineCount int
	Status    engine.Status
	Epoch     uint64
	CreatedAt time.Time
}

// Summary builds the listing entry for g
func (g *Game) Summary() GameSummary {
	grid := g.State.Grid()
	return GameSummary{
		ID:        g.ID,
		Width:     grid.Width,
		Height:    grid.Height,
		MineCount: g.State.MineCount(),
		Status:    g.Status(),
		Epoch:     g.State.Epoch(),
		CreatedAt: g.CreatedAt,
	}
}
