package handlers

import (
	"log/slog"
	"net/http"

	"github.com/bakerbar/tournament-tracker/views"
)

type HomeHandler struct {
	renderer *views.Renderer
	logger   *slog.Logger
}

func NewHomeHandler(renderer *views.Renderer, logger *slog.Logger) *HomeHandler {
	return &HomeHandler{renderer: renderer, logger: logger}
}

func (h *HomeHandler) Index(w http.ResponseWriter, r *http.Request) {
	renderPage(w, h.logger, h.renderer, "index.html", "Gaming Tournament Tracker", nil)
}
