package sse

import (
	"encoding/json"
	"log/slog"

	"github.com/mcoot/minesweeper-go/internal/model"
)

// Event names sent on a game's stream
const (
	EventConnected   = "connected"
	EventGameUpdated = "game-updated"
	EventGameReset   = "game-reset"
	EventGameDeleted = "game-deleted"
)

// GameEvent is the payload of game-updated and game-reset events
type GameEvent struct {
	GameID         string `json:"game_id"`
	Status         string `json:"status"`
	Epoch          uint64 `json:"epoch"`
	RemainingMines int    `json:"remaining_mines"`
	RevealedCells  int    `json:"revealed_cells"`
}

// GameEventFromView builds the event payload for a game snapshot
func GameEventFromView(view model.GameView) GameEvent {
	revealed := 0
	for _, c := range view.Cells {
		if c.Revealed {
			revealed++
		}
	}
	return GameEvent{
		GameID:         string(view.ID),
		Status:         string(view.Status),
		Epoch:          view.Epoch,
		RemainingMines: view.RemainingMines,
		RevealedCells:  revealed,
	}
}

// Broadcaster publishes game changes to subscribed clients
type Broadcaster struct {
	hubManager *HubManager
	logger     *slog.Logger
}

// NewBroadcaster creates a new Broadcaster
func NewBroadcaster(hubManager *HubManager, logger *slog.Logger) *Broadcaster {
	return &Broadcaster{
		hubManager: hubManager,
		logger:     logger.With(slog.String("component", "sse-broadcaster")),
	}
}

// BroadcastGameUpdated announces a cell action
func (b *Broadcaster) BroadcastGameUpdated(view model.GameView) {
	b.broadcastView(EventGameUpdated, view)
}

// BroadcastGameReset announces a new epoch so clients restart their timers
func (b *Broadcaster) BroadcastGameReset(view model.GameView) {
	b.broadcastView(EventGameReset, view)
}

// BroadcastGameDeleted tells subscribers the game is gone. The hub itself is
// closed by HubManager.RemoveHub.
func (b *Broadcaster) BroadcastGameDeleted(gameID model.GameID) {
	hub := b.hubManager.GetHub(gameID)
	if hub == nil {
		return
	}
	hub.BroadcastEvent(EventGameDeleted, `{"game_id":"`+string(gameID)+`"}`)
}

func (b *Broadcaster) broadcastView(event string, view model.GameView) {
	hub := b.hubManager.GetHub(view.ID)
	if hub == nil {
		return
	}

	data, err := json.Marshal(GameEventFromView(view))
	if err != nil {
		b.logger.Error("sse failed to encode event",
			slog.String("game_id", string(view.ID)),
			slog.String("event", event),
			slog.Any("error", err))
		return
	}
	hub.BroadcastEvent(event, string(data))
}
