package response

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/mcoot/minesweeper-go/internal/model"
)

// EpochHeader carries the epoch of the game in a response body
const EpochHeader = "X-Game-Epoch"

// JSON writes an uncacheable JSON response
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// GameJSON writes a game snapshot, tagging it with its epoch
func GameJSON(w http.ResponseWriter, status int, view model.GameView) {
	w.Header().Set(EpochHeader, strconv.FormatUint(view.Epoch, 10))
	JSON(w, status, GameFromView(view))
}

// NoContent writes a 204 No Content response
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}
