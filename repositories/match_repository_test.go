package repositories

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchRepository_Create_DefaultsStatusToScheduled(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// Both defaults live in the statement: empty match_date becomes NULL,
	// empty status becomes 'Scheduled'.
	mock.ExpectExec(`NULLIF\(\$3, ''\)::timestamp, COALESCE\(NULLIF\(\$4, ''\), 'Scheduled'\)`).
		WithArgs("2", "1", "", "").
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewPostgresMatchRepository(db)
	err = repo.Create(context.Background(), CreateMatchParams{
		TournamentID: "2",
		Round:        "1",
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMatchRepository_List_NullDateProjectsEmpty(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{
		"match_id", "tournament_id", "tournament_title", "round", "match_date", "status",
	}).AddRow(1, 2, "Cup", 1, "", "Scheduled")

	mock.ExpectQuery(`FROM matches m\s+INNER JOIN tournaments t`).WillReturnRows(rows)

	repo := NewPostgresMatchRepository(db)
	matches, err := repo.List(context.Background())
	require.NoError(t, err)

	require.Len(t, matches, 1)
	assert.Equal(t, "", matches[0].MatchDate)
	assert.Equal(t, "Scheduled", matches[0].Status)
	assert.Equal(t, "Cup", matches[0].TournamentTitle)
}

func TestMatchRepository_ListOptions_Labels(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`' - Round '`).
		WillReturnRows(sqlmock.NewRows([]string{"match_id", "match_label"}).
			AddRow(1, "Cup - Round 1"))

	repo := NewPostgresMatchRepository(db)
	options, err := repo.ListOptions(context.Background())
	require.NoError(t, err)
	require.Len(t, options, 1)
	assert.Equal(t, "Cup - Round 1", options[0].MatchLabel)
}

func TestLeaderboardRepository_Create_DefaultsPoints(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`COALESCE\(NULLIF\(\$3, ''\)::int, 0\), NULLIF\(\$4, ''\)::int`).
		WithArgs("2", "3", "", "").
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewPostgresLeaderboardRepository(db)
	err = repo.Create(context.Background(), CreateLeaderboardParams{
		TournamentID: "2",
		PlayerID:     "3",
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLeaderboardRepository_List_NullPlacement(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{
		"leaderboard_id", "tournament_id", "player_id", "points", "placement",
		"tournament_title", "player_name",
	}).
		AddRow(1, 2, 3, 0, nil, "Cup", "alice").
		AddRow(2, 2, 4, 15, 1, "Cup", "bob")

	mock.ExpectQuery(`FROM leaderboards l`).WillReturnRows(rows)

	repo := NewPostgresLeaderboardRepository(db)
	entries, err := repo.List(context.Background())
	require.NoError(t, err)

	require.Len(t, entries, 2)
	assert.Nil(t, entries[0].Placement)
	assert.Equal(t, 0, entries[0].Points)
	require.NotNil(t, entries[1].Placement)
	assert.Equal(t, 1, *entries[1].Placement)
}
