package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/bakerbar/tournament-tracker/handlers"
)

// SetupRoutes wires one list route and three mutation routes per entity,
// plus the landing page and the fixed 404 fallback.
func SetupRoutes(
	router *chi.Mux,
	homeHandler *handlers.HomeHandler,
	playerHandler *handlers.PlayerHandler,
	tournamentHandler *handlers.TournamentHandler,
	registrationHandler *handlers.RegistrationHandler,
	matchHandler *handlers.MatchHandler,
	matchResultHandler *handlers.MatchResultHandler,
	leaderboardHandler *handlers.LeaderboardHandler,
) {
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST"},
	}))

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "404 - Page not found", http.StatusNotFound)
	})

	router.Get("/", homeHandler.Index)

	router.Route("/players", func(r chi.Router) {
		r.Get("/", playerHandler.List)
		r.Post("/add", playerHandler.Add)
		r.Post("/update", playerHandler.Update)
		r.Post("/delete", playerHandler.Delete)
	})

	router.Route("/tournaments", func(r chi.Router) {
		r.Get("/", tournamentHandler.List)
		r.Post("/add", tournamentHandler.Add)
		r.Post("/update", tournamentHandler.Update)
		r.Post("/delete", tournamentHandler.Delete)
	})

	router.Route("/registrations", func(r chi.Router) {
		r.Get("/", registrationHandler.List)
		r.Post("/add", registrationHandler.Add)
		r.Post("/update", registrationHandler.Update)
		r.Post("/delete", registrationHandler.Delete)
	})

	router.Route("/matches", func(r chi.Router) {
		r.Get("/", matchHandler.List)
		r.Post("/add", matchHandler.Add)
		r.Post("/update", matchHandler.Update)
		r.Post("/delete", matchHandler.Delete)
	})

	router.Route("/match-results", func(r chi.Router) {
		r.Get("/", matchResultHandler.List)
		r.Post("/add", matchResultHandler.Add)
		r.Post("/update", matchResultHandler.Update)
		r.Post("/delete", matchResultHandler.Delete)
	})

	router.Route("/leaderboards", func(r chi.Router) {
		r.Get("/", leaderboardHandler.List)
		r.Post("/add", leaderboardHandler.Add)
		r.Post("/update", leaderboardHandler.Update)
		r.Post("/delete", leaderboardHandler.Delete)
	})
}
