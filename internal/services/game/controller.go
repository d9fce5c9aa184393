package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/mcoot/minesweeper-go/internal/config"
	"github.com/mcoot/minesweeper-go/internal/dependencies/clock"
	"github.com/mcoot/minesweeper-go/internal/dependencies/random"
	"github.com/mcoot/minesweeper-go/internal/engine"
	"github.com/mcoot/minesweeper-go/internal/model"
	"github.com/mcoot/minesweeper-go/internal/storage"
)

const (
	gameIDLength   = 12
	gameIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	maxIDAttempts  = 5
)

// CreateParams describes a new game. Zero dimensions and a nil mine count
// fall back to the configured defaults.
type CreateParams struct {
	Width     int
	Height    int
	MineCount *int
	// Seed makes the mine layout reproducible
	Seed *uint64
}

// Publisher is told about each committed change in commit order. Calls are
// made with the controller lock held and must not block.
type Publisher interface {
	BroadcastGameUpdated(view model.GameView)
	BroadcastGameReset(view model.GameView)
	BroadcastGameDeleted(gameID model.GameID)
}

// Controller hosts game sessions around the rule engine
type Controller struct {
	storage storage.Storage
	limits  config.GameConfig
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger

	publisher Publisher

	// mu serialises every read and write of engine state
	mu sync.Mutex
}

// NewController creates a new game Controller
func NewController(
	storage storage.Storage,
	limits config.GameConfig,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage: storage,
		limits:  limits,
		clock:   clock,
		random:  random,
		logger:  logger,
	}
}

// SetPublisher registers the receiver of game change events. It must be
// called before the controller is shared.
func (c *Controller) SetPublisher(publisher Publisher) {
	c.publisher = publisher
}

// CreateGame starts a new session with no mines placed
func (c *Controller) CreateGame(ctx context.Context, params CreateParams) (model.GameView, error) {
	width, height, mineCount := c.applyDefaults(params)
	if width > c.limits.MaxWidth || height > c.limits.MaxHeight {
		return model.GameView{}, fmt.Errorf("%w: %dx%d requested, limit is %dx%d",
			model.ErrBoardTooLarge, width, height, c.limits.MaxWidth, c.limits.MaxHeight)
	}

	rnd := c.random
	if params.Seed != nil {
		rnd = random.NewSeeded(*params.Seed)
	}
	state, err := engine.NewState(width, height, mineCount, engine.NewGenerator(rnd))
	if err != nil {
		return model.GameView{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	gameID, err := c.newGameID(ctx)
	if err != nil {
		return model.GameView{}, err
	}

	now := c.clock.Now()
	game := &model.Game{
		ID:             gameID,
		State:          state,
		Seed:           params.Seed,
		CreatedAt:      now,
		UpdatedAt:      now,
		EpochStartedAt: now,
	}

	if err := c.storage.SaveGame(ctx, game); err != nil {
		c.logger.Error("failed to save game",
			slog.String("game_id", string(game.ID)),
			slog.String("error", err.Error()),
		)
		return model.GameView{}, err
	}

	c.logger.Info("game created",
		slog.String("game_id", string(gameID)),
		slog.Int("width", width),
		slog.Int("height", height),
		slog.Int("mine_count", mineCount),
		slog.Bool("seeded", params.Seed != nil),
	)

	return game.View(now), nil
}

func (c *Controller) applyDefaults(params CreateParams) (width, height, mineCount int) {
	width, height = params.Width, params.Height
	if width == 0 {
		width = c.limits.DefaultWidth
	}
	if height == 0 {
		height = c.limits.DefaultHeight
	}
	mineCount = c.limits.DefaultMineCount
	if params.MineCount != nil {
		mineCount = *params.MineCount
	}
	return width, height, mineCount
}

// newGameID picks an unused ID. Callers must hold c.mu.
func (c *Controller) newGameID(ctx context.Context) (model.GameID, error) {
	for range maxIDAttempts {
		id := model.GameID(c.random.String(gameIDLength, gameIDAlphabet))
		_, err := c.storage.GetGame(ctx, id)
		if errors.Is(err, model.ErrGameNotFound) {
			return id, nil
		}
		if err != nil {
			return "", err
		}
	}
	return "", errors.New("could not allocate a unique game ID")
}

// GetGame returns a snapshot of a game
func (c *Controller) GetGame(ctx context.Context, gameID model.GameID) (model.GameView, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return model.GameView{}, err
	}
	return game.View(c.clock.Now()), nil
}

// ListGames summarises every hosted game, oldest first
func (c *Controller) ListGames(ctx context.Context) ([]model.GameSummary, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	games, err := c.storage.ListGames(ctx)
	if err != nil {
		return nil, err
	}
	summaries := make([]model.GameSummary, len(games))
	for i, g := range games {
		summaries[i] = g.Summary()
	}
	return summaries, nil
}

// Reveal performs the primary action on a cell
func (c *Controller) Reveal(ctx context.Context, gameID model.GameID, at engine.Coordinate) (model.GameView, error) {
	return c.act(ctx, gameID, "reveal", at, func(s *engine.State) error {
		return s.PrimaryAction(at)
	})
}

// Chord performs the secondary action on a cell
func (c *Controller) Chord(ctx context.Context, gameID model.GameID, at engine.Coordinate) (model.GameView, error) {
	return c.act(ctx, gameID, "chord", at, func(s *engine.State) error {
		return s.SecondaryAction(at)
	})
}

// ToggleFlag flags or unflags a cell
func (c *Controller) ToggleFlag(ctx context.Context, gameID model.GameID, at engine.Coordinate) (model.GameView, error) {
	return c.act(ctx, gameID, "flag", at, func(s *engine.State) error {
		return s.FlagToggle(at)
	})
}

// act applies one engine operation and records any resulting game end
func (c *Controller) act(
	ctx context.Context,
	gameID model.GameID,
	action string,
	at engine.Coordinate,
	apply func(*engine.State) error,
) (model.GameView, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return model.GameView{}, err
	}

	before := game.Status()
	if err := apply(game.State); err != nil {
		if errors.Is(err, engine.ErrInsufficientSpace) {
			// Unreachable while NewState enforces the safe-zone bound
			c.logger.Error("mine placement failed",
				slog.String("game_id", string(gameID)),
				slog.String("at", at.String()),
				slog.String("error", err.Error()),
			)
		}
		return model.GameView{}, err
	}

	now := c.clock.Now()
	game.UpdatedAt = now

	after := game.Status()
	if !before.IsTerminal() && after.IsTerminal() {
		game.EndedAt = &now
		c.logger.Info("game ended",
			slog.String("game_id", string(gameID)),
			slog.String("status", string(after)),
			slog.String("action", action),
			slog.String("at", at.String()),
			slog.Uint64("epoch", game.State.Epoch()),
			slog.Duration("elapsed", game.Elapsed(now)),
		)
	} else {
		c.logger.Debug("game action",
			slog.String("game_id", string(gameID)),
			slog.String("action", action),
			slog.String("at", at.String()),
		)
	}

	if err := c.storage.SaveGame(ctx, game); err != nil {
		return model.GameView{}, err
	}

	view := game.View(now)
	if c.publisher != nil {
		c.publisher.BroadcastGameUpdated(view)
	}
	return view, nil
}

// Reset clears the board for a fresh game and restarts the timer
func (c *Controller) Reset(ctx context.Context, gameID model.GameID) (model.GameView, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return model.GameView{}, err
	}

	game.State.Reset()
	now := c.clock.Now()
	game.EpochStartedAt = now
	game.EndedAt = nil
	game.UpdatedAt = now

	if err := c.storage.SaveGame(ctx, game); err != nil {
		return model.GameView{}, err
	}

	c.logger.Info("game reset",
		slog.String("game_id", string(gameID)),
		slog.Uint64("epoch", game.State.Epoch()),
	)

	view := game.View(now)
	if c.publisher != nil {
		c.publisher.BroadcastGameReset(view)
	}
	return view, nil
}

// DeleteGame removes a game
func (c *Controller) DeleteGame(ctx context.Context, gameID model.GameID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.storage.DeleteGame(ctx, gameID); err != nil {
		return err
	}

	c.logger.Info("game deleted", slog.String("game_id", string(gameID)))
	if c.publisher != nil {
		c.publisher.BroadcastGameDeleted(gameID)
	}
	return nil
}

// Interface for dependency injection
type ControllerInterface interface {
	CreateGame(ctx context.Context, params CreateParams) (model.GameView, error)
	GetGame(ctx context.Context, gameID model.GameID) (model.GameView, error)
	ListGames(ctx context.Context) ([]model.GameSummary, error)
	Reveal(ctx context.Context, gameID model.GameID, at engine.Coordinate) (model.GameView, error)
	Chord(ctx context.Context, gameID model.GameID, at engine.Coordinate) (model.GameView, error)
	ToggleFlag(ctx context.Context, gameID model.GameID, at engine.Coordinate) (model.GameView, error)
	Reset(ctx context.Context, gameID model.GameID) (model.GameView, error)
	DeleteGame(ctx context.Context, gameID model.GameID) error
}

var _ ControllerInterface = (*Controller)(nil)
