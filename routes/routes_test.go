package routes

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bakerbar/tournament-tracker/handlers"
	"github.com/bakerbar/tournament-tracker/views"
)

func testRouter(t *testing.T) *chi.Mux {
	t.Helper()

	renderer, err := views.New()
	require.NoError(t, err)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	router := chi.NewRouter()
	SetupRoutes(
		router,
		handlers.NewHomeHandler(renderer, logger),
		handlers.NewPlayerHandler(nil, renderer, logger),
		handlers.NewTournamentHandler(nil, renderer, logger),
		handlers.NewRegistrationHandler(nil, renderer, logger),
		handlers.NewMatchHandler(nil, renderer, logger),
		handlers.NewMatchResultHandler(nil, renderer, logger),
		handlers.NewLeaderboardHandler(nil, renderer, logger),
	)
	return router
}

func TestRoutes_LandingPage(t *testing.T) {
	router := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Gaming Tournament Tracker")
}

func TestRoutes_UnmatchedRouteIsFixed404(t *testing.T) {
	router := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/no-such-page", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "404 - Page not found\n", rr.Body.String())
}

func TestRoutes_MutationRoutesRejectGet(t *testing.T) {
	router := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/players/add", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}
