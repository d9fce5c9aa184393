package factory

import (
	"io"
	"log/slog"

	"github.com/mcoot/minesweeper-go/internal/api/sse"
	"github.com/mcoot/minesweeper-go/internal/config"
	"github.com/mcoot/minesweeper-go/internal/dependencies/clock"
	"github.com/mcoot/minesweeper-go/internal/dependencies/random"
	"github.com/mcoot/minesweeper-go/internal/services/game"
	"github.com/mcoot/minesweeper-go/internal/storage"
	"github.com/mcoot/minesweeper-go/internal/storage/memory"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	GameController *game.Controller
	HubManager     *sse.HubManager
}

// Config holds configuration for the application factory
type Config struct {
	// Game holds board defaults and limits (optional)
	// If zero value, defaults to config.DefaultConfig().Game
	Game config.GameConfig
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	gameCfg := cfg.Game
	if gameCfg == (config.GameConfig{}) {
		gameCfg = config.DefaultConfig().Game
	}
	full := config.DefaultConfig()
	full.Game = gameCfg
	if err := full.Validate(); err != nil {
		return nil, err
	}

	return newWithDependencies(memory.New(), clock.New(), random.New(), gameCfg, logger), nil
}

var _ game.Publisher = (*sse.Broadcaster)(nil)

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(
	store storage.Storage,
	clk clock.Clock,
	rnd random.Random,
	gameCfg config.GameConfig,
	logger *slog.Logger,
) *App {
	gameController := game.NewController(store, gameCfg, clk, rnd, logger.With(slog.String("component", "game")))
	hubManager := sse.NewHubManager(logger)
	gameController.SetPublisher(sse.NewBroadcaster(hubManager, logger))

	return &App{
		Storage:        store,
		Clock:          clk,
		Random:         rnd,
		GameController: gameController,
		HubManager:     hubManager,
	}
}
