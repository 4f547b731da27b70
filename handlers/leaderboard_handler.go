package handlers

import (
	"log/slog"
	"net/http"

	"github.com/bakerbar/tournament-tracker/services"
	"github.com/bakerbar/tournament-tracker/views"
)

type LeaderboardHandler struct {
	leaderboardService services.LeaderboardService
	renderer           *views.Renderer
	logger             *slog.Logger
}

func NewLeaderboardHandler(ls services.LeaderboardService, renderer *views.Renderer, logger *slog.Logger) *LeaderboardHandler {
	return &LeaderboardHandler{leaderboardService: ls, renderer: renderer, logger: logger}
}

func (h *LeaderboardHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := h.leaderboardService.ListPage(r.Context())
	if err != nil {
		serverErrorResponse(w, h.logger, "Error fetching leaderboards", err)
		return
	}
	renderPage(w, h.logger, h.renderer, "leaderboards.html", "Manage Leaderboards", page)
}

func (h *LeaderboardHandler) Add(w http.ResponseWriter, r *http.Request) {
	input := services.CreateLeaderboardInput{
		TournamentID: r.PostFormValue("tournamentID"),
		PlayerID:     r.PostFormValue("playerID"),
		Points:       r.PostFormValue("pointsInput"),
		Placement:    r.PostFormValue("placementInput"),
	}

	if err := h.leaderboardService.Create(r.Context(), input); err != nil {
		serverErrorResponse(w, h.logger, "Error adding leaderboard entry", err)
		return
	}
	redirect(w, r, "/leaderboards")
}

func (h *LeaderboardHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := formID(r, "leaderboardID")
	if err != nil {
		badRequestResponse(w, "invalid leaderboard id")
		return
	}

	input := services.UpdateLeaderboardInput{
		TournamentID: r.PostFormValue("tournamentID"),
		PlayerID:     r.PostFormValue("playerID"),
		Points:       r.PostFormValue("pointsInput"),
		Placement:    r.PostFormValue("placementInput"),
	}

	if err := h.leaderboardService.Update(r.Context(), id, input); err != nil {
		serverErrorResponse(w, h.logger, "Error updating leaderboard entry", err)
		return
	}
	redirect(w, r, "/leaderboards")
}

func (h *LeaderboardHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := formID(r, "leaderboardID")
	if err != nil {
		badRequestResponse(w, "invalid leaderboard id")
		return
	}

	if err := h.leaderboardService.Delete(r.Context(), id); err != nil {
		serverErrorResponse(w, h.logger, "Error deleting leaderboard entry", err)
		return
	}
	redirect(w, r, "/leaderboards")
}
