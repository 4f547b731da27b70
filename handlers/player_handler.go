package handlers

import (
	"log/slog"
	"net/http"

	"github.com/bakerbar/tournament-tracker/services"
	"github.com/bakerbar/tournament-tracker/views"
)

type PlayerHandler struct {
	playerService services.PlayerService
	renderer      *views.Renderer
	logger        *slog.Logger
}

func NewPlayerHandler(ps services.PlayerService, renderer *views.Renderer, logger *slog.Logger) *PlayerHandler {
	return &PlayerHandler{playerService: ps, renderer: renderer, logger: logger}
}

func (h *PlayerHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := h.playerService.ListPage(r.Context())
	if err != nil {
		serverErrorResponse(w, h.logger, "Error fetching players", err)
		return
	}
	renderPage(w, h.logger, h.renderer, "players.html", "Manage Players", page)
}

func (h *PlayerHandler) Add(w http.ResponseWriter, r *http.Request) {
	input := services.CreatePlayerInput{
		Username: r.PostFormValue("usernameInput"),
		Email:    r.PostFormValue("emailInput"),
		Rank:     r.PostFormValue("rankInput"),
	}

	if err := h.playerService.Create(r.Context(), input); err != nil {
		serverErrorResponse(w, h.logger, "Error adding player", err)
		return
	}
	redirect(w, r, "/players")
}

func (h *PlayerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := formID(r, "playerID")
	if err != nil {
		badRequestResponse(w, "invalid player id")
		return
	}

	input := services.UpdatePlayerInput{
		Username: r.PostFormValue("usernameInput"),
		Email:    r.PostFormValue("emailInput"),
		Rank:     r.PostFormValue("rankInput"),
	}

	if err := h.playerService.Update(r.Context(), id, input); err != nil {
		serverErrorResponse(w, h.logger, "Error updating player", err)
		return
	}
	redirect(w, r, "/players")
}

func (h *PlayerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := formID(r, "playerID")
	if err != nil {
		badRequestResponse(w, "invalid player id")
		return
	}

	if err := h.playerService.Delete(r.Context(), id); err != nil {
		serverErrorResponse(w, h.logger, "Error deleting player", err)
		return
	}
	redirect(w, r, "/players")
}
