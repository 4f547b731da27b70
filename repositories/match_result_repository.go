package repositories

import (
	"context"
	"database/sql"

	"github.com/bakerbar/tournament-tracker/models"
)

type CreateMatchResultParams struct {
	MatchID  string
	PlayerID string
	Score    string
	Result   string
}

type UpdateMatchResultParams struct {
	MatchID  string
	PlayerID string
	Score    string
	Result   string
}

type MatchResultRepository interface {
	List(ctx context.Context) ([]models.MatchResultRow, error)
	Create(ctx context.Context, params CreateMatchResultParams) error
	Update(ctx context.Context, id int, params UpdateMatchResultParams) error
	Delete(ctx context.Context, id int) error
}

type postgresMatchResultRepository struct {
	db *sql.DB
}

func NewPostgresMatchResultRepository(db *sql.DB) MatchResultRepository {
	return &postgresMatchResultRepository{db: db}
}

// List joins through matches to tournaments for context and to players for
// the display name.
func (r *postgresMatchResultRepository) List(ctx context.Context) ([]models.MatchResultRow, error) {
	query := `
		SELECT mr.result_id, mr.match_id, mr.player_id, mr.score, mr.result,
		       m.round,
		       COALESCE(to_char(m.match_date, 'YYYY-MM-DD HH24:MI:SS'), '') AS match_date,
		       t.title AS tournament_title,
		       p.username AS player_name
		FROM match_results mr
		INNER JOIN matches m ON mr.match_id = m.match_id
		INNER JOIN tournaments t ON m.tournament_id = t.tournament_id
		INNER JOIN players p ON mr.player_id = p.player_id
		ORDER BY mr.result_id ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := make([]models.MatchResultRow, 0)
	for rows.Next() {
		var res models.MatchResultRow
		if err := rows.Scan(&res.ID, &res.MatchID, &res.PlayerID, &res.Score, &res.Result,
			&res.Round, &res.MatchDate, &res.TournamentTitle, &res.PlayerName); err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *postgresMatchResultRepository) Create(ctx context.Context, params CreateMatchResultParams) error {
	query := `
		INSERT INTO match_results (match_id, player_id, score, result)
		VALUES ($1, $2, $3::int, $4)`

	_, err := r.db.ExecContext(ctx, query,
		params.MatchID, params.PlayerID, params.Score, params.Result)
	return translateError(err)
}

func (r *postgresMatchResultRepository) Update(ctx context.Context, id int, params UpdateMatchResultParams) error {
	query, args := buildPartialUpdate("match_results", "result_id", id, []updateField{
		{column: "match_id", value: params.MatchID, cast: "int"},
		{column: "player_id", value: params.PlayerID, cast: "int"},
		{column: "score", value: params.Score, cast: "int"},
		{column: "result", value: params.Result},
	})

	_, err := r.db.ExecContext(ctx, query, args...)
	return translateError(err)
}

func (r *postgresMatchResultRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM match_results WHERE result_id = $1`

	_, err := r.db.ExecContext(ctx, query, id)
	return translateError(err)
}
