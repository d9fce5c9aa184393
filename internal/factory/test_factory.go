package factory

import (
	"time"

	"github.com/mcoot/minesweeper-go/internal/config"
	"github.com/mcoot/minesweeper-go/internal/dependencies/mocks"
	"github.com/mcoot/minesweeper-go/internal/storage/memory"
	"github.com/mcoot/minesweeper-go/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// TestGameConfig is the game configuration used by NewTestApp: 5x5 boards
// with 3 mines by default, at most 20x20
func TestGameConfig() config.GameConfig {
	return config.GameConfig{
		DefaultWidth:     5,
		DefaultHeight:    5,
		DefaultMineCount: 3,
		MaxWidth:         20,
		MaxHeight:        20,
	}
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	app := newWithDependencies(store, mockClock, mockRandom, TestGameConfig(), testutil.NopLogger())

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}

// QueueWalledLayout queues a game ID and the draws that put a 2-mine game's
// mines on (3,0) and (4,1) when (0,4) is opened first on a 5x5 board
func (t *TestApp) QueueWalledLayout(id string) {
	t.MockRandom.QueueString(id)
	t.MockRandom.QueueIntn(3, 8)
}
