package repositories

import (
	"context"
	"database/sql"

	"github.com/bakerbar/tournament-tracker/models"
)

type CreateLeaderboardParams struct {
	TournamentID string
	PlayerID     string
	Points       string // empty defaults to 0
	Placement    string // empty means unplaced
}

type UpdateLeaderboardParams struct {
	TournamentID string
	PlayerID     string
	Points       string
	Placement    string
}

type LeaderboardRepository interface {
	List(ctx context.Context) ([]models.LeaderboardRow, error)
	Create(ctx context.Context, params CreateLeaderboardParams) error
	Update(ctx context.Context, id int, params UpdateLeaderboardParams) error
	Delete(ctx context.Context, id int) error
}

type postgresLeaderboardRepository struct {
	db *sql.DB
}

func NewPostgresLeaderboardRepository(db *sql.DB) LeaderboardRepository {
	return &postgresLeaderboardRepository{db: db}
}

func (r *postgresLeaderboardRepository) List(ctx context.Context) ([]models.LeaderboardRow, error) {
	query := `
		SELECT l.leaderboard_id, l.tournament_id, l.player_id, l.points, l.placement,
		       t.title AS tournament_title,
		       p.username AS player_name
		FROM leaderboards l
		INNER JOIN tournaments t ON l.tournament_id = t.tournament_id
		INNER JOIN players p ON l.player_id = p.player_id
		ORDER BY l.leaderboard_id ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]models.LeaderboardRow, 0)
	for rows.Next() {
		var e models.LeaderboardRow
		if err := rows.Scan(&e.ID, &e.TournamentID, &e.PlayerID, &e.Points, &e.Placement,
			&e.TournamentTitle, &e.PlayerName); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *postgresLeaderboardRepository) Create(ctx context.Context, params CreateLeaderboardParams) error {
	query := `
		INSERT INTO leaderboards (tournament_id, player_id, points, placement)
		VALUES ($1, $2, COALESCE(NULLIF($3, '')::int, 0), NULLIF($4, '')::int)`

	_, err := r.db.ExecContext(ctx, query,
		params.TournamentID, params.PlayerID, params.Points, params.Placement)
	return translateError(err)
}

func (r *postgresLeaderboardRepository) Update(ctx context.Context, id int, params UpdateLeaderboardParams) error {
	query, args := buildPartialUpdate("leaderboards", "leaderboard_id", id, []updateField{
		{column: "tournament_id", value: params.TournamentID, cast: "int"},
		{column: "player_id", value: params.PlayerID, cast: "int"},
		{column: "points", value: params.Points, cast: "int"},
		{column: "placement", value: params.Placement, cast: "int"},
	})

	_, err := r.db.ExecContext(ctx, query, args...)
	return translateError(err)
}

func (r *postgresLeaderboardRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM leaderboards WHERE leaderboard_id = $1`

	_, err := r.db.ExecContext(ctx, query, id)
	return translateError(err)
}
