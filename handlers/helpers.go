package handlers

import (
	"bytes"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/bakerbar/tournament-tracker/views"
)

// pageData is the envelope every template receives.
type pageData struct {
	PageTitle string
	Data      interface{}
}

// serverErrorResponse logs the real error and sends the caller a fixed
// plain-text diagnostic. Raw database error text never reaches the client.
func serverErrorResponse(w http.ResponseWriter, logger *slog.Logger, message string, err error) {
	logger.Error(message, slog.Any("error", err))
	http.Error(w, message, http.StatusInternalServerError)
}

func badRequestResponse(w http.ResponseWriter, message string) {
	http.Error(w, message, http.StatusBadRequest)
}

// formID parses a primary key from the posted form. The rendered forms mark
// these inputs required, so this only fails for hand-crafted requests.
func formID(r *http.Request, field string) (int, error) {
	return strconv.Atoi(r.PostFormValue(field))
}

func redirect(w http.ResponseWriter, r *http.Request, target string) {
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// renderPage executes the template into a buffer first so a render failure
// can still produce a clean 500 instead of a half-written page.
func renderPage(w http.ResponseWriter, logger *slog.Logger, renderer *views.Renderer, page, title string, data interface{}) {
	var buf bytes.Buffer
	if err := renderer.Render(&buf, page, pageData{PageTitle: title, Data: data}); err != nil {
		serverErrorResponse(w, logger, "Error rendering page", err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := buf.WriteTo(w); err != nil {
		logger.Error("failed to write response", slog.Any("error", err))
	}
}
