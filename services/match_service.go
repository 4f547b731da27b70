package services

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/bakerbar/tournament-tracker/models"
	"github.com/bakerbar/tournament-tracker/repositories"
)

type CreateMatchInput struct {
	TournamentID string
	Round        string
	MatchDate    string
	Status       string
}

type UpdateMatchInput struct {
	TournamentID string
	Round        string
	MatchDate    string
	Status       string
}

type MatchService interface {
	ListPage(ctx context.Context) (*models.MatchPage, error)
	Create(ctx context.Context, input CreateMatchInput) error
	Update(ctx context.Context, id int, input UpdateMatchInput) error
	Delete(ctx context.Context, id int) error
}

type matchService struct {
	matchRepo      repositories.MatchRepository
	tournamentRepo repositories.TournamentRepository
}

func NewMatchService(
	matchRepo repositories.MatchRepository,
	tournamentRepo repositories.TournamentRepository,
) MatchService {
	return &matchService{
		matchRepo:      matchRepo,
		tournamentRepo: tournamentRepo,
	}
}

func (s *matchService) ListPage(ctx context.Context) (*models.MatchPage, error) {
	page := &models.MatchPage{}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		page.Matches, err = s.matchRepo.List(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		page.Tournaments, err = s.tournamentRepo.ListOptions(gCtx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to assemble matches page: %w", err)
	}
	return page, nil
}

func (s *matchService) Create(ctx context.Context, input CreateMatchInput) error {
	err := s.matchRepo.Create(ctx, repositories.CreateMatchParams{
		TournamentID: input.TournamentID,
		Round:        input.Round,
		MatchDate:    input.MatchDate,
		Status:       input.Status,
	})
	if err != nil {
		return fmt.Errorf("failed to create match: %w", err)
	}
	return nil
}

func (s *matchService) Update(ctx context.Context, id int, input UpdateMatchInput) error {
	err := s.matchRepo.Update(ctx, id, repositories.UpdateMatchParams{
		TournamentID: input.TournamentID,
		Round:        input.Round,
		MatchDate:    input.MatchDate,
		Status:       input.Status,
	})
	if err != nil {
		return fmt.Errorf("failed to update match %d: %w", id, err)
	}
	return nil
}

func (s *matchService) Delete(ctx context.Context, id int) error {
	if err := s.matchRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete match %d: %w", id, err)
	}
	return nil
}
