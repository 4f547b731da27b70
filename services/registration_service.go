package services

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/bakerbar/tournament-tracker/models"
	"github.com/bakerbar/tournament-tracker/repositories"
)

type CreateRegistrationInput struct {
	PlayerID     string
	TournamentID string
}

type UpdateRegistrationInput struct {
	PlayerID     string
	TournamentID string
}

type RegistrationService interface {
	ListPage(ctx context.Context) (*models.RegistrationPage, error)
	Create(ctx context.Context, input CreateRegistrationInput) error
	Update(ctx context.Context, id int, input UpdateRegistrationInput) error
	Delete(ctx context.Context, id int) error
}

type registrationService struct {
	registrationRepo repositories.RegistrationRepository
	playerRepo       repositories.PlayerRepository
	tournamentRepo   repositories.TournamentRepository
}

func NewRegistrationService(
	registrationRepo repositories.RegistrationRepository,
	playerRepo repositories.PlayerRepository,
	tournamentRepo repositories.TournamentRepository,
) RegistrationService {
	return &registrationService{
		registrationRepo: registrationRepo,
		playerRepo:       playerRepo,
		tournamentRepo:   tournamentRepo,
	}
}

// ListPage assembles the joined registration list plus the option lists the
// create/update forms need. The three queries are independent, so they run
// concurrently against the shared pool.
func (s *registrationService) ListPage(ctx context.Context) (*models.RegistrationPage, error) {
	page := &models.RegistrationPage{}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		page.Registrations, err = s.registrationRepo.List(gCtx)
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
		return nil, fmt.Errorf("failed to assemble registrations page: %w", err)
	}
	return page, nil
}

func (s *registrationService) Create(ctx context.Context, input CreateRegistrationInput) error {
	err := s.registrationRepo.Create(ctx, repositories.CreateRegistrationParams{
		PlayerID:     input.PlayerID,
		TournamentID: input.TournamentID,
	})
	if err != nil {
		return fmt.Errorf("failed to create registration: %w", err)
	}
	return nil
}

func (s *registrationService) Update(ctx context.Context, id int, input UpdateRegistrationInput) error {
	err := s.registrationRepo.Update(ctx, id, repositories.UpdateRegistrationParams{
		PlayerID:     input.PlayerID,
		TournamentID: input.TournamentID,
	})
	if err != nil {
		return fmt.Errorf("failed to update registration %d: %w", id, err)
	}
	return nil
}

func (s *registrationService) Delete(ctx context.Context, id int) error {
	if err := s.registrationRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete registration %d: %w", id, err)
	}
	return nil
}
