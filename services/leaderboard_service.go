package services

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/bakerbar/tournament-tracker/models"
	"github.com/bakerbar/tournament-tracker/repositories"
)

type CreateLeaderboardInput struct {
	TournamentID string
	PlayerID     string
	Points       string
	Placement    string
}

type UpdateLeaderboardInput struct {
	TournamentID string
	PlayerID     string
	Points       string
	Placement    string
}

type LeaderboardService interface {
	ListPage(ctx context.Context) (*models.LeaderboardPage, error)
	Create(ctx context.Context, input CreateLeaderboardInput) error
	Update(ctx context.Context, id int, input UpdateLeaderboardInput) error
	Delete(ctx context.Context, id int) error
}

type leaderboardService struct {
	leaderboardRepo repositories.LeaderboardRepository
	playerRepo      repositories.PlayerRepository
	tournamentRepo  repositories.TournamentRepository
}

func NewLeaderboardService(
	leaderboardRepo repositories.LeaderboardRepository,
	playerRepo repositories.PlayerRepository,
	tournamentRepo repositories.TournamentRepository,
) LeaderboardService {
	return &leaderboardService{
		leaderboardRepo: leaderboardRepo,
		playerRepo:      playerRepo,
		tournamentRepo:  tournamentRepo,
	}
}

func (s *leaderboardService) ListPage(ctx context.Context) (*models.LeaderboardPage, error) {
	page := &models.LeaderboardPage{}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		page.Entries, err = s.leaderboardRepo.List(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		page.Players, err = s.playerRepo.ListOptions(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		page.Tournaments, err = s.tournamentRepo.ListOptions(gCtx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to assemble leaderboards page: %w", err)
	}
	return page, nil
}

func (s *leaderboardService) Create(ctx context.Context, input CreateLeaderboardInput) error {
	err := s.leaderboardRepo.Create(ctx, repositories.CreateLeaderboardParams{
		TournamentID: input.TournamentID,
		PlayerID:     input.PlayerID,
		Points:       input.Points,
		Placement:    input.Placement,
	})
	if err != nil {
		return fmt.Errorf("failed to create leaderboard entry: %w", err)
	}
	return nil
}

func (s *leaderboardService) Update(ctx context.Context, id int, input UpdateLeaderboardInput) error {
	err := s.leaderboardRepo.Update(ctx, id, repositories.UpdateLeaderboardParams{
		TournamentID: input.TournamentID,
		PlayerID:     input.PlayerID,
		Points:       input.Points,
		Placement:    input.Placement,
	})
	if err != nil {
		return fmt.Errorf("failed to update leaderboard entry %d: %w", id, err)
	}
	return nil
}

func (s *leaderboardService) Delete(ctx context.Context, id int) error {
	if err := s.leaderboardRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete leaderboard entry %d: %w", id, err)
	}
	return nil
}
