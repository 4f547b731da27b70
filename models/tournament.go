package models

type Tournament struct {
	ID         int    `json:"tournament_id"`
	Title      string `json:"title"`
	Game       string `json:"game"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	MaxPlayers int    `json:"max_players"`
}

// TournamentOption populates tournament <select> controls, ordered by title.
type TournamentOption struct {
	TournamentID    int    `json:"tournament_id"`
	TournamentTitle string `json:"tournament_title"`
}

type TournamentPage struct {
	Tournaments []Tournament
}
