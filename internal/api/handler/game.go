package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/minesweeper-go/internal/api/request"
	"github.com/mcoot/minesweeper-go/internal/api/response"
	"github.com/mcoot/minesweeper-go/internal/api/sse"
	"github.com/mcoot/minesweeper-go/internal/engine"
	"github.com/mcoot/minesweeper-go/internal/model"
	"github.com/mcoot/minesweeper-go/internal/services/game"
)

// cellAction is one of the controller's per-cell operations
type cellAction func(ctx context.Context, gameID model.GameID, at engine.Coordinate) (model.GameView, error)

// GameHandler handles game endpoints
type GameHandler struct {
	gameController game.ControllerInterface
	hubManager     *sse.HubManager
	logger         *slog.Logger
}

// NewGameHandler creates a new game handler. Events are published by the
// controller; hubManager may be nil, in which case streaming is disabled.
func NewGameHandler(gameController game.ControllerInterface, hubManager *sse.HubManager, logger *slog.Logger) *GameHandler {
	return &GameHandler{
		gameController: gameController,
		hubManager:     hubManager,
		logger:         logger,
	}
}

// Create handles POST /api/v1/games
func (h *GameHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.Width < 0 || req.Height < 0 {
		WriteError(w, NewInvalidRequestError("width and height must not be negative"))
		return
	}

	view, err := h.gameController.CreateGame(r.Context(), game.CreateParams{
		Width:     req.Width,
		Height:    req.Height,
		MineCount: req.MineCount,
		Seed:      req.Seed,
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	response.GameJSON(w, http.StatusCreated, view)
}

// List handles GET /api/v1/games
func (h *GameHandler) List(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.gameController.ListGames(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	resp := response.GameList{Games: make([]response.GameSummary, len(summaries))}
	for i, s := range summaries {
		resp.Games[i] = response.GameSummaryFromModel(s)
	}
	response.JSON(w, http.StatusOK, resp)
}

// Get handles GET /api/v1/games/{id}
func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	view, err := h.gameController.GetGame(r.Context(), gameIDFromRequest(r))
	if err != nil {
		WriteError(w, err)
		return
	}
	response.GameJSON(w, http.StatusOK, view)
}

// Delete handles DELETE /api/v1/games/{id}
func (h *GameHandler) Delete(w http.ResponseWriter, r *http.Request) {
	gameID := gameIDFromRequest(r)
	if err := h.gameController.DeleteGame(r.Context(), gameID); err != nil {
		WriteError(w, err)
		return
	}

	// The controller has queued game-deleted; closing flushes it first
	if h.hubManager != nil {
		h.hubManager.RemoveHub(gameID)
	}

	response.NoContent(w)
}

// Reveal handles POST /api/v1/games/{id}/reveal
func (h *GameHandler) Reveal(w http.ResponseWriter, r *http.Request) {
	h.handleCellAction(w, r, h.gameController.Reveal)
}

// Chord handles POST /api/v1/games/{id}/chord
func (h *GameHandler) Chord(w http.ResponseWriter, r *http.Request) {
	h.handleCellAction(w, r, h.gameController.Chord)
}

// Flag handles POST /api/v1/games/{id}/flag
func (h *GameHandler) Flag(w http.ResponseWriter, r *http.Request) {
	h.handleCellAction(w, r, h.gameController.ToggleFlag)
}

func (h *GameHandler) handleCellAction(w http.ResponseWriter, r *http.Request, action cellAction) {
	var req request.CellRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.X == nil || req.Y == nil {
		WriteError(w, NewInvalidRequestError("x and y are required"))
		return
	}

	view, err := action(r.Context(), gameIDFromRequest(r), engine.Coordinate{X: *req.X, Y: *req.Y})
	if err != nil {
		WriteError(w, err)
		return
	}

	response.GameJSON(w, http.StatusOK, view)
}

// Reset handles POST /api/v1/games/{id}/reset
func (h *GameHandler) Reset(w http.ResponseWriter, r *http.Request) {
	view, err := h.gameController.Reset(r.Context(), gameIDFromRequest(r))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.GameJSON(w, http.StatusOK, view)
}

// Events handles GET /api/v1/games/{id}/events
func (h *GameHandler) Events(w http.ResponseWriter, r *http.Request) {
	if h.hubManager == nil {
		WriteError(w, NewInvalidRequestError("event streaming is disabled"))
		return
	}

	gameID := gameIDFromRequest(r)
	if _, err := h.gameController.GetGame(r.Context(), gameID); err != nil {
		WriteError(w, err)
		return
	}

	h.logger.Debug("event stream opened",
		slog.String("game_id", string(gameID)),
		slog.String("remote_addr", r.RemoteAddr))
	sse.ServeSSE(w, r, h.hubManager, gameID, r.RemoteAddr)
	h.logger.Debug("event stream closed",
		slog.String("game_id", string(gameID)),
		slog.String("remote_addr", r.RemoteAddr))
}

func gameIDFromRequest(r *http.Request) model.GameID {
	return model.GameID(mux.Vars(r)["id"])
}
