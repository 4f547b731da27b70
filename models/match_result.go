package models

// MatchResultRow joins through matches to tournaments and directly to
// players for display labels.
type MatchResultRow struct {
	ID              int    `json:"result_id"`
	MatchID         int    `json:"match_id"`
	PlayerID        int    `json:"player_id"`
	Score           int    `json:"score"`
	Result          string `json:"result"`
	Round           int    `json:"round"`
	MatchDate       string `json:"match_date"`
	TournamentTitle string `json:"tournament_title"`
	PlayerName      string `json:"player_name"`
}

type MatchResultPage struct {
	Results []MatchResultRow
	Players []PlayerOption
	Matches []MatchOption
}
