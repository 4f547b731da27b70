package repositories

import (
	"context"
	"database/sql"

	"github.com/bakerbar/tournament-tracker/models"
)

type CreatePlayerParams struct {
	Username string
	Email    string
	Rank     string // empty means no rank
}

type UpdatePlayerParams struct {
	Username string
	Email    string
	Rank     string
}

type PlayerRepository interface {
	List(ctx context.Context) ([]models.Player, error)
	ListOptions(ctx context.Context) ([]models.PlayerOption, error)
	Create(ctx context.Context, params CreatePlayerParams) error
	Update(ctx context.Context, id int, params UpdatePlayerParams) error
	Delete(ctx context.Context, id int) error
}

type postgresPlayerRepository struct {
	db *sql.DB
}

func NewPostgresPlayerRepository(db *sql.DB) PlayerRepository {
	return &postgresPlayerRepository{db: db}
}

func (r *postgresPlayerRepository) List(ctx context.Context) ([]models.Player, error) {
	query := `
		SELECT player_id, username, email,
		       to_char(join_date, 'YYYY-MM-DD') AS join_date,
		       rank
		FROM players
		ORDER BY player_id ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	players := make([]models.Player, 0)
	for rows.Next() {
		var p models.Player
		if err := rows.Scan(&p.ID, &p.Username, &p.Email, &p.JoinDate, &p.Rank); err != nil {
			return nil, err
		}
		players = append(players, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return players, nil
}

func (r *postgresPlayerRepository) ListOptions(ctx context.Context) ([]models.PlayerOption, error) {
	query := `SELECT player_id, username AS player_name FROM players ORDER BY username ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	options := make([]models.PlayerOption, 0)
	for rows.Next() {
		var o models.PlayerOption
		if err := rows.Scan(&o.PlayerID, &o.PlayerName); err != nil {
			return nil, err
		}
		options = append(options, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return options, nil
}

func (r *postgresPlayerRepository) Create(ctx context.Context, params CreatePlayerParams) error {
	// join_date defaults in the schema; an empty rank is stored as NULL.
	query := `INSERT INTO players (username, email, rank) VALUES ($1, $2, NULLIF($3, ''))`

	_, err := r.db.ExecContext(ctx, query, params.Username, params.Email, params.Rank)
	return translateError(err)
}

func (r *postgresPlayerRepository) Update(ctx context.Context, id int, params UpdatePlayerParams) error {
	query, args := buildPartialUpdate("players", "player_id", id, []updateField{
		{column: "username", value: params.Username},
		{column: "email", value: params.Email},
		{column: "rank", value: params.Rank},
	})

	_, err := r.db.ExecContext(ctx, query, args...)
	return translateError(err)
}

func (r *postgresPlayerRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM players WHERE player_id = $1`

	_, err := r.db.ExecContext(ctx, query, id)
	return translateError(err)
}
