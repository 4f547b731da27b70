package handlers

import (
	"log/slog"
	"net/http"

	"github.com/bakerbar/tournament-tracker/services"
	"github.com/bakerbar/tournament-tracker/views"
)

type RegistrationHandler struct {
	registrationService services.RegistrationService
	renderer            *views.Renderer
	logger              *slog.Logger
}

func NewRegistrationHandler(rs services.RegistrationService, renderer *views.Renderer, logger *slog.Logger) *RegistrationHandler {
	return &RegistrationHandler{registrationService: rs, renderer: renderer, logger: logger}
}

func (h *RegistrationHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := h.registrationService.ListPage(r.Context())
	if err != nil {
		serverErrorResponse(w, h.logger, "Error fetching registrations", err)
		return
	}
	renderPage(w, h.logger, h.renderer, "registrations.html", "Manage Registrations", page)
}

func (h *RegistrationHandler) Add(w http.ResponseWriter, r *http.Request) {
	input := services.CreateRegistrationInput{
		PlayerID:     r.PostFormValue("playerID"),
		TournamentID: r.PostFormValue("tournamentID"),
	}

	if err := h.registrationService.Create(r.Context(), input); err != nil {
		serverErrorResponse(w, h.logger, "Error adding registration", err)
		return
	}
	redirect(w, r, "/registrations")
}

func (h *RegistrationHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := formID(r, "registrationID")
	if err != nil {
		badRequestResponse(w, "invalid registration id")
		return
	}

	input := services.UpdateRegistrationInput{
		PlayerID:     r.PostFormValue("playerID"),
		TournamentID: r.PostFormValue("tournamentID"),
	}

	if err := h.registrationService.Update(r.Context(), id, input); err != nil {
		serverErrorResponse(w, h.logger, "Error updating registration", err)
		return
	}
	redirect(w, r, "/registrations")
}

func (h *RegistrationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := formID(r, "registrationID")
	if err != nil {
		badRequestResponse(w, "invalid registration id")
		return
	}

	if err := h.registrationService.Delete(r.Context(), id); err != nil {
		serverErrorResponse(w, h.logger, "Error deleting registration", err)
		return
	}
	redirect(w, r, "/registrations")
}
