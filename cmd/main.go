package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	_ "github.com/lib/pq"

	"github.com/bakerbar/tournament-tracker/config"
	"github.com/bakerbar/tournament-tracker/db"
	"github.com/bakerbar/tournament-tracker/handlers"
	"github.com/bakerbar/tournament-tracker/repositories"
	api "github.com/bakerbar/tournament-tracker/routes"
	"github.com/bakerbar/tournament-tracker/services"
	"github.com/bakerbar/tournament-tracker/views"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("configuration loaded", slog.Int("port", cfg.ServerPort))

	dbConn, err := db.Connect(cfg.DatabaseURL, db.PoolOptions{
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: cfg.DBConnMaxLifetime,
	}, 5*time.Second)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := dbConn.Close(); err != nil {
			logger.Error("failed to close database connection", slog.Any("error", err))
		} else {
			logger.Info("database connection closed")
		}
	}()
	logger.Info("database connection established")

	renderer, err := views.New()
	if err != nil {
		logger.Error("failed to parse templates", slog.Any("error", err))
		os.Exit(1)
	}

	playerRepo := repositories.NewPostgresPlayerRepository(dbConn)
	tournamentRepo := repositories.NewPostgresTournamentRepository(dbConn)
	registrationRepo := repositories.NewPostgresRegistrationRepository(dbConn)
	matchRepo := repositories.NewPostgresMatchRepository(dbConn)
	matchResultRepo := repositories.NewPostgresMatchResultRepository(dbConn)
	leaderboardRepo := repositories.NewPostgresLeaderboardRepository(dbConn)
	logger.Info("repositories initialized")

	playerService := services.NewPlayerService(playerRepo)
	tournamentService := services.NewTournamentService(tournamentRepo)
	registrationService := services.NewRegistrationService(registrationRepo, playerRepo, tournamentRepo)
	matchService := services.NewMatchService(matchRepo, tournamentRepo)
	matchResultService := services.NewMatchResultService(matchResultRepo, playerRepo, matchRepo)
	leaderboardService := services.NewLeaderboardService(leaderboardRepo, playerRepo, tournamentRepo)
	logger.Info("services initialized")

	homeHandler := handlers.NewHomeHandler(renderer, logger)
	playerHandler := handlers.NewPlayerHandler(playerService, renderer, logger)
	tournamentHandler := handlers.NewTournamentHandler(tournamentService, renderer, logger)
	registrationHandler := handlers.NewRegistrationHandler(registrationService, renderer, logger)
	matchHandler := handlers.NewMatchHandler(matchService, renderer, logger)
	matchResultHandler := handlers.NewMatchResultHandler(matchResultService, renderer, logger)
	leaderboardHandler := handlers.NewLeaderboardHandler(leaderboardService, renderer, logger)
	logger.Info("HTTP handlers initialized")

	router := chi.NewRouter()
	api.SetupRoutes(
		router,
		homeHandler,
		playerHandler,
		tournamentHandler,
		registrationHandler,
		matchHandler,
		matchResultHandler,
		leaderboardHandler,
	)
	logger.Info("routes configured")

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("address", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("server stopped gracefully")
	case sig := <-quit:
		logger.Info("shutdown signal received", slog.String("signal", sig.String()))
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancelShutdown()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
			os.Exit(1)
		}
		logger.Info("server shutdown complete")
	}
	logger.Info("application exited")
}
