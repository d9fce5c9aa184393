package response

import (
	"time"

	"github.com/mcoot/minesweeper-go/internal/engine"
	"github.com/mcoot/minesweeper-go/internal/model"
)

// Cell is one cell of a game board as shown to players
type Cell struct {
	Revealed bool `json:"revealed"`
	Flagged  bool `json:"flagged"`
	// Mine is only present once disclosed
	Mine          *bool `json:"mine,omitempty"`
	AdjacentMines int   `json:"adjacent_mines"`
}

// CellFromView converts an engine.CellView
func CellFromView(v engine.CellView) Cell {
	cell := Cell{
		Revealed:      v.Revealed,
		Flagged:       v.Flagged,
		AdjacentMines: v.AdjacentMines,
	}
	if v.Mine {
		mine := true
		cell.Mine = &mine
	}
	return cell
}

// Game is the full state of a game
type Game struct {
	ID             string    `json:"id"`
	Width          int       `json:"width"`
	Height         int       `json:"height"`
	MineCount      int       `json:"mine_count"`
	Status         string    `json:"status"`
	Epoch          uint64    `json:"epoch"`
	RemainingMines int       `json:"remaining_mines"`
	ElapsedSeconds int64     `json:"elapsed_seconds"`
	Seed           *uint64   `json:"seed,omitempty"`
	Cells          [][]Cell  `json:"cells"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// GameFromView converts a model.GameView; cells are indexed [y][x]
func GameFromView(v model.GameView) Game {
	cells := make([][]Cell, v.Height)
	for y := 0; y < v.Height; y++ {
		cells[y] = make([]Cell, v.Width)
		for x := 0; x < v.Width; x++ {
			cells[y][x] = CellFromView(v.Cell(x, y))
		}
	}

	return Game{
		ID:             string(v.ID),
		Width:          v.Width,
		Height:         v.Height,
		MineCount:      v.MineCount,
		Status:         string(v.Status),
		Epoch:          v.Epoch,
		RemainingMines: v.RemainingMines,
		ElapsedSeconds: int64(v.Elapsed / time.Second),
		Seed:           v.Seed,
		Cells:          cells,
		CreatedAt:      v.CreatedAt,
		UpdatedAt:      v.UpdatedAt,
	}
}

// GameSummary is one entry of the game listing
type GameSummary struct {
	ID        string    `json:"id"`
	Width     int       `json:"width"`
	Height    int       `json:"height"`
	MineCount int       `json:"mine_count"`
	Status    string    `json:"status"`
	Epoch     uint64    `json:"epoch"`
	CreatedAt time.Time `json:"created_at"`
}

// GameSummaryFromModel converts model.GameSummary
func GameSummaryFromModel(s model.GameSummary) GameSummary {
	return GameSummary{
		ID:        string(s.ID),
		Width:     s.Width,
		Height:    s.Height,
		MineCount: s.MineCount,
		Status:    string(s.Status),
		Epoch:     s.Epoch,
		CreatedAt: s.CreatedAt,
	}
}

// GameList is the response for listing games
type GameList struct {
	Games []GameSummary `json:"games"`
}

// Health is the response for the health check
type Health struct {
	Status string `json:"status"`
}
