package services

import (
	"context"
	"fmt"

	"github.com/bakerbar/tournament-tracker/models"
	"github.com/bakerbar/tournament-tracker/repositories"
)

type CreateTournamentInput struct {
	Title      string
	Game       string
	StartDate  string
	EndDate    string
	MaxPlayers string
}

type UpdateTournamentInput struct {
	Title      string
	Game       string
	StartDate  string
	EndDate    string
	MaxPlayers string
}

type TournamentService interface {
	ListPage(ctx context.Context) (*models.TournamentPage, error)
	Create(ctx context.Context, input CreateTournamentInput) error
	Update(ctx context.Context, id int, input UpdateTournamentInput) error
	Delete(ctx context.Context, id int) error
}

type tournamentService struct {
	tournamentRepo repositories.TournamentRepository
}

func NewTournamentService(tournamentRepo repositories.TournamentRepository) TournamentService {
	return &tournamentService{tournamentRepo: tournamentRepo}
}

func (s *tournamentService) ListPage(ctx context.Context) (*models.TournamentPage, error) {
	tournaments, err := s.tournamentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tournaments: %w", err)
	}
	return &models.TournamentPage{Tournaments: tournaments}, nil
}

func (s *tournamentService) Create(ctx context.Context, input CreateTournamentInput) error {
	err := s.tournamentRepo.Create(ctx, repositories.CreateTournamentParams{
		Title:      input.Title,
		Game:       input.Game,
		StartDate:  input.StartDate,
		EndDate:    input.EndDate,
		MaxPlayers: input.MaxPlayers,
	})
	if err != nil {
		return fmt.Errorf("failed to create tournament: %w", err)
	}
	return nil
}

func (s *tournamentService) Update(ctx context.Context, id int, input UpdateTournamentInput) error {
	err := s.tournamentRepo.Update(ctx, id, repositories.UpdateTournamentParams{
		Title:      input.Title,
		Game:       input.Game,
		StartDate:  input.StartDate,
		EndDate:    input.EndDate,
		MaxPlayers: input.MaxPlayers,
	})
	if err != nil {
		return fmt.Errorf("failed to update tournament %d: %w", id, err)
	}
	return nil
}

func (s *tournamentService) Delete(ctx context.Context, id int) error {
	if err := s.tournamentRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete tournament %d: %w", id, err)
	}
	return nil
}
