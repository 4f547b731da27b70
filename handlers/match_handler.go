package handlers

import (
	"log/slog"
	"net/http"

	"github.com/bakerbar/tournament-tracker/services"
	"github.com/bakerbar/tournament-tracker/views"
)

type MatchHandler struct {
	matchService services.MatchService
	renderer     *views.Renderer
	logger       *slog.Logger
}

func NewMatchHandler(ms services.MatchService, renderer *views.Renderer, logger *slog.Logger) *MatchHandler {
	return &MatchHandler{matchService: ms, renderer: renderer, logger: logger}
}

func (h *MatchHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := h.matchService.ListPage(r.Context())
	if err != nil {
		serverErrorResponse(w, h.logger, "Error fetching matches", err)
		return
	}
	renderPage(w, h.logger, h.renderer, "matches.html", "Manage Matches", page)
}

func (h *MatchHandler) Add(w http.ResponseWriter, r *http.Request) {
	input := services.CreateMatchInput{
		TournamentID: r.PostFormValue("tournamentID"),
		Round:        r.PostFormValue("roundInput"),
		MatchDate:    r.PostFormValue("matchDateInput"),
		Status:       r.PostFormValue("statusInput"),
	}

	if err := h.matchService.Create(r.Context(), input); err != nil {
		serverErrorResponse(w, h.logger, "Error adding match", err)
		return
	}
	redirect(w, r, "/matches")
}

func (h *MatchHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := formID(r, "matchID")
	if err != nil {
		badRequestResponse(w, "invalid match id")
		return
	}

	input := services.UpdateMatchInput{
		TournamentID: r.PostFormValue("tournamentID"),
		Round:        r.PostFormValue("roundInput"),
		MatchDate:    r.PostFormValue("matchDateInput"),
		Status:       r.PostFormValue("statusInput"),
	}

	if err := h.matchService.Update(r.Context(), id, input); err != nil {
		serverErrorResponse(w, h.logger, "Error updating match", err)
		return
	}
	redirect(w, r, "/matches")
}

func (h *MatchHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := formID(r, "matchID")
	if err != nil {
		badRequestResponse(w, "invalid match id")
		return
	}

	if err := h.matchService.Delete(r.Context(), id); err != nil {
		serverErrorResponse(w, h.logger, "Error deleting match", err)
		return
	}
	redirect(w, r, "/matches")
}
