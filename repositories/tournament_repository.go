package repositories

import (
	"context"
	"database/sql"

	"github.com/bakerbar/tournament-tracker/models"
)

type CreateTournamentParams struct {
	Title      string
	Game       string
	StartDate  string
	EndDate    string
	MaxPlayers string
}

type UpdateTournamentParams struct {
	Title      string
	Game       string
	StartDate  string
	EndDate    string
	MaxPlayers string
}

type TournamentRepository interface {
	List(ctx context.Context) ([]models.Tournament, error)
	ListOptions(ctx context.Context) ([]models.TournamentOption, error)
	Create(ctx context.Context, params CreateTournamentParams) error
	Update(ctx context.Context, id int, params UpdateTournamentParams) error
	Delete(ctx context.Context, id int) error
}

type postgresTournamentRepository struct {
	db *sql.DB
}

func NewPostgresTournamentRepository(db *sql.DB) TournamentRepository {
	return &postgresTournamentRepository{db: db}
}

func (r *postgresTournamentRepository) List(ctx context.Context) ([]models.Tournament, error) {
	query := `
		SELECT tournament_id, title, game,
		       to_char(start_date, 'YYYY-MM-DD') AS start_date,
		       to_char(end_date, 'YYYY-MM-DD') AS end_date,
		       max_players
		FROM tournaments
		ORDER BY tournament_id ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tournaments := make([]models.Tournament, 0)
	for rows.Next() {
		var t models.Tournament
		if err := rows.Scan(&t.ID, &t.Title, &t.Game, &t.StartDate, &t.EndDate, &t.MaxPlayers); err != nil {
			return nil, err
		}
		tournaments = append(tournaments, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return tournaments, nil
}

func (r *postgresTournamentRepository) ListOptions(ctx context.Context) ([]models.TournamentOption, error) {
	query := `SELECT tournament_id, title AS tournament_title FROM tournaments ORDER BY title ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	options := make([]models.TournamentOption, 0)
	for rows.Next() {
		var o models.TournamentOption
		if err := rows.Scan(&o.TournamentID, &o.TournamentTitle); err != nil {
			return nil, err
		}
		options = append(options, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return options, nil
}

func (r *postgresTournamentRepository) Create(ctx context.Context, params CreateTournamentParams) error {
	query := `
		INSERT INTO tournaments (title, game, start_date, end_date, max_players)
		VALUES ($1, $2, $3::date, $4::date, $5::int)`

	_, err := r.db.ExecContext(ctx, query,
		params.Title, params.Game, params.StartDate, params.EndDate, params.MaxPlayers)
	return translateError(err)
}

func (r *postgresTournamentRepository) Update(ctx context.Context, id int, params UpdateTournamentParams) error {
	query, args := buildPartialUpdate("tournaments", "tournament_id", id, []updateField{
		{column: "title", value: params.Title},
		{column: "game", value: params.Game},
		{column: "start_date", value: params.StartDate, cast: "date"},
		{column: "end_date", value: params.EndDate, cast: "date"},
		{column: "max_players", value: params.MaxPlayers, cast: "int"},
	})

	_, err := r.db.ExecContext(ctx, query, args...)
	return translateError(err)
}

func (r *postgresTournamentRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM tournaments WHERE tournament_id = $1`

	_, err := r.db.ExecContext(ctx, query, id)
	return translateError(err)
}
