package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/minesweeper-go/internal/dependencies/random"
	"github.com/mcoot/minesweeper-go/internal/engine"
)

func newTestGame(t *testing.T, started time.Time) *Game {
	t.Helper()
	state, err := engine.NewState(9, 9, 10, engine.NewGenerator(random.NewSeeded(1)))
	require.NoError(t, err)
	return &Game{
		ID:             "GAME1",
		State:          state,
		CreatedAt:      started,
		UpdatedAt:      started,
		EpochStartedAt: started,
	}
}

func TestElapsedRunsUntilEnded(t *testing.T) {
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	game := newTestGame(t, start)

	assert.Equal(t, 42*time.Second, game.Elapsed(start.Add(42*time.Second)))

	ended := start.Add(90 * time.Second)
	game.EndedAt = &ended
	assert.Equal(t, 90*time.Second, game.Elapsed(start.Add(time.Hour)))
}

func TestElapsedNeverNegative(t *testing.T) {
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	game := newTestGame(t, start)

	assert.Equal(t, time.Duration(0), game.Elapsed(start.Add(-time.Minute)))
}

func TestSummary(t *testing.T) {
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	game := newTestGame(t, start)

	summary := game.Summary()

	assert.Equal(t, GameID("GAME1"), summary.ID)
	assert.Equal(t, 9, summary.Width)
	assert.Equal(t, 9, summary.Height)
	assert.Equal(t, 10, summary.MineCount)
	assert.Equal(t, engine.StatusOngoing, summary.Status)
	assert.Equal(t, uint64(0), summary.Epoch)
	assert.Equal(t, start, summary.CreatedAt)
}

func TestViewCopiesState(t *testing.T) {
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	game := newTestGame(t, start)
	seed := uint64(5)
	game.Seed = &seed
	require.NoError(t, game.State.FlagToggle(engine.Coordinate{X: 3, Y: 2}))

	view := game.View(start.Add(10 * time.Second))
	seed = 6

	assert.Equal(t, 9, view.Width)
	assert.Equal(t, 9, view.RemainingMines)
	assert.Equal(t, 10*time.Second, view.Elapsed)
	assert.Equal(t, uint64(5), *view.Seed)
	assert.Len(t, view.Cells, 81)
	assert.True(t, view.Cell(3, 2).Flagged)
	assert.Equal(t, engine.Coordinate{X: 3, Y: 2}, view.Cell(3, 2).Coordinate)
}
