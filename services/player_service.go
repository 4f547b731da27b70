package services

import (
	"context"
	"fmt"

	"github.com/bakerbar/tournament-tracker/models"
	"github.com/bakerbar/tournament-tracker/repositories"
)

type CreatePlayerInput struct {
	Username string
	Email    string
	Rank     string
}

type UpdatePlayerInput struct {
	Username string
	Email    string
	Rank     string
}

type PlayerService interface {
	ListPage(ctx context.Context) (*models.PlayerPage, error)
	Create(ctx context.Context, input CreatePlayerInput) error
	Update(ctx context.Context, id int, input UpdatePlayerInput) error
	Delete(ctx context.Context, id int) error
}

type playerService struct {
	playerRepo repositories.PlayerRepository
}

func NewPlayerService(playerRepo repositories.PlayerRepository) PlayerService {
	return &playerService{playerRepo: playerRepo}
}

func (s *playerService) ListPage(ctx context.Context) (*models.PlayerPage, error) {
	players, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	return &models.PlayerPage{Players: players}, nil
}

func (s *playerService) Create(ctx context.Context, input CreatePlayerInput) error {
	err := s.playerRepo.Create(ctx, repositories.CreatePlayerParams{
		Username: input.Username,
		Email:    input.Email,
		Rank:     input.Rank,
	})
	if err != nil {
		return fmt.Errorf("failed to create player: %w", err)
	}
	return nil
}

func (s *playerService) Update(ctx context.Context, id int, input UpdatePlayerInput) error {
	err := s.playerRepo.Update(ctx, id, repositories.UpdatePlayerParams{
		Username: input.Username,
		Email:    input.Email,
		Rank:     input.Rank,
	})
	if err != nil {
		return fmt.Errorf("failed to update player %d: %w", id, err)
	}
	return nil
}

func (s *playerService) Delete(ctx context.Context, id int) error {
	if err := s.playerRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete player %d: %w", id, err)
	}
	return nil
}
