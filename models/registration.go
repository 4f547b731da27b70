package models

// RegistrationRow is the joined list projection: raw foreign keys plus the
// human-readable labels of the referenced player and tournament.
type RegistrationRow struct {
	ID               int    `json:"registration_id"`
	RegistrationDate string `json:"registration_date"`
	PlayerID         int    `json:"player_id"`
	PlayerName       string `json:"player_name"`
	TournamentID     int    `json:"tournament_id"`
	TournamentTitle  string `json:"tournament_title"`
}

type RegistrationPage struct {
	Registrations []RegistrationRow
	Players       []PlayerOption
	Tournaments   []TournamentOption
}
