package handlers

import (
	"log/slog"
	"net/http"

	"github.com/bakerbar/tournament-tracker/services"
	"github.com/bakerbar/tournament-tracker/views"
)

type TournamentHandler struct {
	tournamentService services.TournamentService
	renderer          *views.Renderer
	logger            *slog.Logger
}

func NewTournamentHandler(ts services.TournamentService, renderer *views.Renderer, logger *slog.Logger) *TournamentHandler {
	return &TournamentHandler{tournamentService: ts, renderer: renderer, logger: logger}
}

func (h *TournamentHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := h.tournamentService.ListPage(r.Context())
	if err != nil {
		serverErrorResponse(w, h.logger, "Error fetching tournaments", err)
		return
	}
	renderPage(w, h.logger, h.renderer, "tournaments.html", "Manage Tournaments", page)
}

func (h *TournamentHandler) Add(w http.ResponseWriter, r *http.Request) {
	input := services.CreateTournamentInput{
		Title:      r.PostFormValue("titleInput"),
		Game:       r.PostFormValue("gameInput"),
		StartDate:  r.PostFormValue("startDateInput"),
		EndDate:    r.PostFormValue("endDateInput"),
		MaxPlayers: r.PostFormValue("maxPlayersInput"),
	}

	if err := h.tournamentService.Create(r.Context(), input); err != nil {
		serverErrorResponse(w, h.logger, "Error adding tournament", err)
		return
	}
	redirect(w, r, "/tournaments")
}

func (h *TournamentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := formID(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, "invalid tournament id")
		return
	}

	input := services.UpdateTournamentInput{
		Title:      r.PostFormValue("titleInput"),
		Game:       r.PostFormValue("gameInput"),
		StartDate:  r.PostFormValue("startDateInput"),
		EndDate:    r.PostFormValue("endDateInput"),
		MaxPlayers: r.PostFormValue("maxPlayersInput"),
	}

	if err := h.tournamentService.Update(r.Context(), id, input); err != nil {
		serverErrorResponse(w, h.logger, "Error updating tournament", err)
		return
	}
	redirect(w, r, "/tournaments")
}

func (h *TournamentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := formID(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, "invalid tournament id")
		return
	}

	if err := h.tournamentService.Delete(r.Context(), id); err != nil {
		serverErrorResponse(w, h.logger, "Error deleting tournament", err)
		return
	}
	redirect(w, r, "/tournaments")
}
