package middleware

import (
	"log/slog"
	"net/http"

	"github.com/mcoot/minesweeper-go/internal/api/apierr"
	"github.com/mcoot/minesweeper-go/internal/middleware"
)

// Recovery creates panic recovery middleware for the API. Panics become
// INTERNAL_ERROR JSON responses and are logged with their route template.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Recovery(logger, routeTemplate, apiPanicHandler)
}

func apiPanicHandler(w http.ResponseWriter, _ *http.Request, _ any) {
	apierr.WriteError(w, apierr.NewInternalError())
}
