package handlers

import (
	"log/slog"
	"net/http"

	"github.com/bakerbar/tournament-tracker/services"
	"github.com/bakerbar/tournament-tracker/views"
)

type MatchResultHandler struct {
	matchResultService services.MatchResultService
	renderer           *views.Renderer
	logger             *slog.Logger
}

func NewMatchResultHandler(mrs services.MatchResultService, renderer *views.Renderer, logger *slog.Logger) *MatchResultHandler {
	return &MatchResultHandler{matchResultService: mrs, renderer: renderer, logger: logger}
}

func (h *MatchResultHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := h.matchResultService.ListPage(r.Context())
	if err != nil {
		serverErrorResponse(w, h.logger, "Error fetching match results", err)
		return
	}
	renderPage(w, h.logger, h.renderer, "match_results.html", "Manage Match Results", page)
}

func (h *MatchResultHandler) Add(w http.ResponseWriter, r *http.Request) {
	input := services.CreateMatchResultInput{
		MatchID:  r.PostFormValue("matchID"),
		PlayerID: r.PostFormValue("playerID"),
		Score:    r.PostFormValue("scoreInput"),
		Result:   r.PostFormValue("resultInput"),
	}

	if err := h.matchResultService.Create(r.Context(), input); err != nil {
		serverErrorResponse(w, h.logger, "Error adding match result", err)
		return
	}
	redirect(w, r, "/match-results")
}

func (h *MatchResultHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := formID(r, "resultID")
	if err != nil {
		badRequestResponse(w, "invalid result id")
		return
	}

	input := services.UpdateMatchResultInput{
		MatchID:  r.PostFormValue("matchID"),
		PlayerID: r.PostFormValue("playerID"),
		Score:    r.PostFormValue("scoreInput"),
		Result:   r.PostFormValue("resultInput"),
	}

	if err := h.matchResultService.Update(r.Context(), id, input); err != nil {
		serverErrorResponse(w, h.logger, "Error updating match result", err)
		return
	}
	redirect(w, r, "/match-results")
}

func (h *MatchResultHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := formID(r, "resultID")
	if err != nil {
		badRequestResponse(w, "invalid result id")
		return
	}

	if err := h.matchResultService.Delete(r.Context(), id); err != nil {
		serverErrorResponse(w, h.logger, "Error deleting match result", err)
		return
	}
	redirect(w, r, "/match-results")
}
