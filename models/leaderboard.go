package models

// LeaderboardRow is one (tournament, player) standing. Placement is optional.
type LeaderboardRow struct {
	ID              int    `json:"leaderboard_id"`
	TournamentID    int    `json:"tournament_id"`
	PlayerID        int    `json:"player_id"`
	Points          int    `json:"points"`
	Placement       *int   `json:"placement,omitempty"`
	TournamentTitle string `json:"tournament_title"`
	PlayerName      string `json:"player_name"`
}

type LeaderboardPage struct {
	Entries     []LeaderboardRow
	Players     []PlayerOption
	Tournaments []TournamentOption
}
