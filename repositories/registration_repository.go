package repositories

import (
	"context"
	"database/sql"

	"github.com/bakerbar/tournament-tracker/models"
)

type CreateRegistrationParams struct {
	PlayerID     string
	TournamentID string
}

type UpdateRegistrationParams struct {
	PlayerID     string
	TournamentID string
}

type RegistrationRepository interface {
	List(ctx context.Context) ([]models.RegistrationRow, error)
	Create(ctx context.Context, params CreateRegistrationParams) error
	Update(ctx context.Context, id int, params UpdateRegistrationParams) error
	Delete(ctx context.Context, id int) error
}

type postgresRegistrationRepository struct {
	db *sql.DB
}

func NewPostgresRegistrationRepository(db *sql.DB) RegistrationRepository {
	return &postgresRegistrationRepository{db: db}
}

// List joins both referenced entities for display labels. The inner joins
// exclude any registration whose player or tournament no longer exists.
func (r *postgresRegistrationRepository) List(ctx context.Context) ([]models.RegistrationRow, error) {
	query := `
		SELECT r.registration_id,
		       to_char(r.registration_date, 'YYYY-MM-DD HH24:MI:SS') AS registration_date,
		       r.player_id, p.username AS player_name,
		       r.tournament_id, t.title AS tournament_title
		FROM registrations r
		INNER JOIN players p ON r.player_id = p.player_id
		INNER JOIN tournaments t ON r.tournament_id = t.tournament_id
		ORDER BY r.registration_id ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	registrations := make([]models.RegistrationRow, 0)
	for rows.Next() {
		var reg models.RegistrationRow
		if err := rows.Scan(&reg.ID, &reg.RegistrationDate,
			&reg.PlayerID, &reg.PlayerName,
			&reg.TournamentID, &reg.TournamentTitle); err != nil {
			return nil, err
		}
		registrations = append(registrations, reg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return registrations, nil
}

func (r *postgresRegistrationRepository) Create(ctx context.Context, params CreateRegistrationParams) error {
	// registration_date defaults in the schema.
	query := `INSERT INTO registrations (player_id, tournament_id) VALUES ($1, $2)`

	_, err := r.db.ExecContext(ctx, query, params.PlayerID, params.TournamentID)
	return translateError(err)
}

func (r *postgresRegistrationRepository) Update(ctx context.Context, id int, params UpdateRegistrationParams) error {
	query, args := buildPartialUpdate("registrations", "registration_id", id, []updateField{
		{column: "player_id", value: params.PlayerID, cast: "int"},
		{column: "tournament_id", value: params.TournamentID, cast: "int"},
	})

	_, err := r.db.ExecContext(ctx, query, args...)
	return translateError(err)
}

// Delete removes only the link between player and tournament.
func (r *postgresRegistrationRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM registrations WHERE registration_id = $1`

	_, err := r.db.ExecContext(ctx, query, id)
	return translateError(err)
}
