package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/minesweeper-go/internal/api/apierr"
	"github.com/mcoot/minesweeper-go/internal/api/handler"
	"github.com/mcoot/minesweeper-go/internal/api/middleware"
	"github.com/mcoot/minesweeper-go/internal/api/response"
	"github.com/mcoot/minesweeper-go/internal/api/sse"
	"github.com/mcoot/minesweeper-go/internal/services/game"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger         *slog.Logger
	GameController *game.Controller
	// HubManager is optional; without it the events endpoint is disabled
	HubManager *sse.HubManager
}

// APIPrefix is the path prefix of every API route
const APIPrefix = "/api/v1"

// NewRouter creates a new API router with all routes configured.
// Routes stay on the root router: a PathPrefix subrouter copies its prefix
// matcher into every route, which clears mux's method mismatch and turns
// 405s into 404s.
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Logging(cfg.Logger))

	gameHandler := handler.NewGameHandler(cfg.GameController, cfg.HubManager, cfg.Logger)

	route := func(method, path string, h http.HandlerFunc) {
		r.HandleFunc(APIPrefix+path, h).Methods(method)
	}

	route(http.MethodGet, "/health", healthHandler)

	route(http.MethodPost, "/games", gameHandler.Create)
	route(http.MethodGet, "/games", gameHandler.List)
	route(http.MethodGet, "/games/{id}", gameHandler.Get)
	route(http.MethodDelete, "/games/{id}", gameHandler.Delete)
	route(http.MethodPost, "/games/{id}/reveal", gameHandler.Reveal)
	route(http.MethodPost, "/games/{id}/chord", gameHandler.Chord)
	route(http.MethodPost, "/games/{id}/flag", gameHandler.Flag)
	route(http.MethodPost, "/games/{id}/reset", gameHandler.Reset)
	route(http.MethodGet, "/games/{id}/events", gameHandler.Events)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		apierr.WriteError(w, apierr.NewNotFoundError())
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		apierr.WriteError(w, apierr.NewMethodNotAllowedError())
	})

	return r
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	response.JSON(w, http.StatusOK, response.Health{Status: "ok"})
}
