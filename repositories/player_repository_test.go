package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayerRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"player_id", "username", "email", "join_date", "rank"}).
		AddRow(1, "alice", "a@x.com", "2024-01-01", "Gold").
		AddRow(2, "bob", "b@x.com", "2024-01-02", nil)
	mock.ExpectQuery(`SELECT player_id, username, email`).WillReturnRows(rows)

	repo := NewPostgresPlayerRepository(db)
	players, err := repo.List(context.Background())
	require.NoError(t, err)

	require.Len(t, players, 2)
	assert.Equal(t, "alice", players[0].Username)
	require.NotNil(t, players[0].Rank)
	assert.Equal(t, "Gold", *players[0].Rank)
	assert.Nil(t, players[1].Rank)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPlayerRepository_List_Empty(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT player_id, username, email`).
		WillReturnRows(sqlmock.NewRows([]string{"player_id", "username", "email", "join_date", "rank"}))

	repo := NewPostgresPlayerRepository(db)
	players, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, players)
	assert.Empty(t, players)
}

func TestPlayerRepository_ListOptions_OrderedByUsername(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`ORDER BY username ASC`).
		WillReturnRows(sqlmock.NewRows([]string{"player_id", "player_name"}).
			AddRow(2, "alice").
			AddRow(1, "bob"))

	repo := NewPostgresPlayerRepository(db)
	options, err := repo.ListOptions(context.Background())
	require.NoError(t, err)
	require.Len(t, options, 2)
	assert.Equal(t, "alice", options[0].PlayerName)
	assert.Equal(t, 2, options[0].PlayerID)
}

func TestPlayerRepository_Create_EmptyRankStoredAsNull(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// The statement itself maps the empty marker to NULL.
	mock.ExpectExec(`INSERT INTO players \(username, email, rank\) VALUES \(\$1, \$2, NULLIF\(\$3, ''\)\)`).
		WithArgs("alice", "a@x.com", "").
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewPostgresPlayerRepository(db)
	err = repo.Create(context.Background(), CreatePlayerParams{
		Username: "alice",
		Email:    "a@x.com",
		Rank:     "",
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPlayerRepository_Update_PartialStatement(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`UPDATE players SET username = COALESCE\(NULLIF\(\$1, ''\), username\)`).
		WithArgs("alice2", "", "", 7).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewPostgresPlayerRepository(db)
	err = repo.Update(context.Background(), 7, UpdatePlayerParams{Username: "alice2"})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPlayerRepository_Update_ZeroRowsIsNoOpSuccess(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`UPDATE players SET`).
		WithArgs("ghost", "", "", 9999).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewPostgresPlayerRepository(db)
	err = repo.Update(context.Background(), 9999, UpdatePlayerParams{Username: "ghost"})
	require.NoError(t, err)
}

func TestPlayerRepository_Delete_ZeroRowsIsNoOpSuccess(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM players WHERE player_id = \$1`).
		WithArgs(9999).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewPostgresPlayerRepository(db)
	require.NoError(t, repo.Delete(context.Background(), 9999))
}

func TestPlayerRepository_List_QueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT player_id`).WillReturnError(errors.New("connection refused"))

	repo := NewPostgresPlayerRepository(db)
	_, err = repo.List(context.Background())
	assert.Error(t, err)
}
