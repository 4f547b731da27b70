package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bakerbar/tournament-tracker/models"
	"github.com/bakerbar/tournament-tracker/repositories"
)

type recordingPlayerRepo struct {
	stubPlayerRepo

	players []models.Player
	created *repositories.CreatePlayerParams
	updated *repositories.UpdatePlayerParams
}

func (r *recordingPlayerRepo) List(ctx context.Context) ([]models.Player, error) {
	return r.players, r.err
}

func (r *recordingPlayerRepo) Create(ctx context.Context, params repositories.CreatePlayerParams) error {
	r.created = &params
	return r.err
}

func (r *recordingPlayerRepo) Update(ctx context.Context, id int, params repositories.UpdatePlayerParams) error {
	r.updated = &params
	return r.err
}

func TestPlayerService_ListPage(t *testing.T) {
	repo := &recordingPlayerRepo{players: []models.Player{{ID: 1, Username: "alice"}}}
	svc := NewPlayerService(repo)

	page, err := svc.ListPage(context.Background())
	require.NoError(t, err)
	require.Len(t, page.Players, 1)
	assert.Equal(t, "alice", page.Players[0].Username)
}

func TestPlayerService_ListPage_Error(t *testing.T) {
	repo := &recordingPlayerRepo{}
	repo.err = errors.New("down")
	svc := NewPlayerService(repo)

	_, err := svc.ListPage(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "list players")
}

func TestPlayerService_Create_ForwardsEmptyRank(t *testing.T) {
	repo := &recordingPlayerRepo{}
	svc := NewPlayerService(repo)

	err := svc.Create(context.Background(), CreatePlayerInput{
		Username: "alice",
		Email:    "a@x.com",
		Rank:     "",
	})
	require.NoError(t, err)
	require.NotNil(t, repo.created)
	assert.Equal(t, "alice", repo.created.Username)
	assert.Equal(t, "", repo.created.Rank)
}

func TestPlayerService_Update_ForwardsAllMarkers(t *testing.T) {
	repo := &recordingPlayerRepo{}
	svc := NewPlayerService(repo)

	err := svc.Update(context.Background(), 4, UpdatePlayerInput{Email: "new@x.com"})
	require.NoError(t, err)
	require.NotNil(t, repo.updated)
	assert.Equal(t, "", repo.updated.Username)
	assert.Equal(t, "new@x.com", repo.updated.Email)
}
