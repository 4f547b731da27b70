package repositories

import (
	"context"
	"database/sql"

	"github.com/bakerbar/tournament-tracker/models"
)

type CreateMatchParams struct {
	TournamentID string
	Round        string
	MatchDate    string // empty means not scheduled yet
	Status       string // empty defaults to "Scheduled"
}

type UpdateMatchParams struct {
	TournamentID string
	Round        string
	MatchDate    string
	Status       string
}

type MatchRepository interface {
	List(ctx context.Context) ([]models.MatchRow, error)
	ListOptions(ctx context.Context) ([]models.MatchOption, error)
	Create(ctx context.Context, params CreateMatchParams) error
	Update(ctx context.Context, id int, params UpdateMatchParams) error
	Delete(ctx context.Context, id int) error
}

type postgresMatchRepository struct {
	db *sql.DB
}

func NewPostgresMatchRepository(db *sql.DB) MatchRepository {
	return &postgresMatchRepository{db: db}
}

func (r *postgresMatchRepository) List(ctx context.Context) ([]models.MatchRow, error) {
	query := `
		SELECT m.match_id, m.tournament_id, t.title AS tournament_title,
		       m.round,
		       COALESCE(to_char(m.match_date, 'YYYY-MM-DD HH24:MI:SS'), '') AS match_date,
		       m.status
		FROM matches m
		INNER JOIN tournaments t ON m.tournament_id = t.tournament_id
		ORDER BY m.match_id ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	matches := make([]models.MatchRow, 0)
	for rows.Next() {
		var m models.MatchRow
		if err := rows.Scan(&m.ID, &m.TournamentID, &m.TournamentTitle,
			&m.Round, &m.MatchDate, &m.Status); err != nil {
			return nil, err
		}
		matches = append(matches, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return matches, nil
}

func (r *postgresMatchRepository) ListOptions(ctx context.Context) ([]models.MatchOption, error) {
	query := `
		SELECT m.match_id, t.title || ' - Round ' || m.round AS match_label
		FROM matches m
		INNER JOIN tournaments t ON m.tournament_id = t.tournament_id
		ORDER BY m.match_id ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	options := make([]models.MatchOption, 0)
	for rows.Next() {
		var o models.MatchOption
		if err := rows.Scan(&o.MatchID, &o.MatchLabel); err != nil {
			return nil, err
		}
		options = append(options, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return options, nil
}

func (r *postgresMatchRepository) Create(ctx context.Context, params CreateMatchParams) error {
	query := `
		INSERT INTO matches (tournament_id, round, match_date, status)
		VALUES ($1, $2::int, NULLIF($3, '')::timestamp, COALESCE(NULLIF($4, ''), 'Scheduled'))`

	_, err := r.db.ExecContext(ctx, query,
		params.TournamentID, params.Round, params.MatchDate, params.Status)
	return translateError(err)
}

func (r *postgresMatchRepository) Update(ctx context.Context, id int, params UpdateMatchParams) error {
	query, args := buildPartialUpdate("matches", "match_id", id, []updateField{
		{column: "tournament_id", value: params.TournamentID, cast: "int"},
		{column: "round", value: params.Round, cast: "int"},
		{column: "match_date", value: params.MatchDate, cast: "timestamp"},
		{column: "status", value: params.Status},
	})

	_, err := r.db.ExecContext(ctx, query, args...)
	return translateError(err)
}

func (r *postgresMatchRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM matches WHERE match_id = $1`

	_, err := r.db.ExecContext(ctx, query, id)
	return translateError(err)
}
