package services

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/bakerbar/tournament-tracker/models"
	"github.com/bakerbar/tournament-tracker/repositories"
)

type CreateMatchResultInput struct {
	MatchID  string
	PlayerID string
	Score    string
	Result   string
}

type UpdateMatchResultInput struct {
	MatchID  string
	PlayerID string
	Score    string
	Result   string
}

type MatchResultService interface {
	ListPage(ctx context.Context) (*models.MatchResultPage, error)
	Create(ctx context.Context, input CreateMatchResultInput) error
	Update(ctx context.Context, id int, input UpdateMatchResultInput) error
	Delete(ctx context.Context, id int) error
}

type matchResultService struct {
	matchResultRepo repositories.MatchResultRepository
	playerRepo      repositories.PlayerRepository
	matchRepo       repositories.MatchRepository
}

func NewMatchResultService(
	matchResultRepo repositories.MatchResultRepository,
	playerRepo repositories.PlayerRepository,
	matchRepo repositories.MatchRepository,
) MatchResultService {
	return &matchResultService{
		matchResultRepo: matchResultRepo,
		playerRepo:      playerRepo,
		matchRepo:       matchRepo,
	}
}

func (s *matchResultService) ListPage(ctx context.Context) (*models.MatchResultPage, error) {
	page := &models.MatchResultPage{}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		page.Results, err = s.matchResultRepo.List(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		page.Players, err = s.playerRepo.ListOptions(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		page.Matches, err = s.matchRepo.ListOptions(gCtx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to assemble match results page: %w", err)
	}
	return page, nil
}

func (s *matchResultService) Create(ctx context.Context, input CreateMatchResultInput) error {
	err := s.matchResultRepo.Create(ctx, repositories.CreateMatchResultParams{
		MatchID:  input.MatchID,
		PlayerID: input.PlayerID,
		Score:    input.Score,
		Result:   input.Result,
	})
	if err != nil {
		return fmt.Errorf("failed to create match result: %w", err)
	}
	return nil
}

func (s *matchResultService) Update(ctx context.Context, id int, input UpdateMatchResultInput) error {
	err := s.matchResultRepo.Update(ctx, id, repositories.UpdateMatchResultParams{
		MatchID:  input.MatchID,
		PlayerID: input.PlayerID,
		Score:    input.Score,
		Result:   input.Result,
	})
	if err != nil {
		return fmt.Errorf("failed to update match result %d: %w", id, err)
	}
	return nil
}

func (s *matchResultService) Delete(ctx context.Context, id int) error {
	if err := s.matchResultRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete match result %d: %w", id, err)
	}
	return nil
}
