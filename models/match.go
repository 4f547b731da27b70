package models

// MatchRow is the joined list projection. MatchDate is empty when the match
// has no scheduled date yet.
type MatchRow struct {
	ID              int    `json:"match_id"`
	TournamentID    int    `json:"tournament_id"`
	TournamentTitle string `json:"tournament_title"`
	Round           int    `json:"round"`
	MatchDate       string `json:"match_date"`
	Status          string `json:"status"`
}

// MatchOption labels a match as "<tournament title> - Round <round>".
type MatchOption struct {
	MatchID    int    `json:"match_id"`
	MatchLabel string `json:"match_label"`
}

type MatchPage struct {
	Matches     []MatchRow
	Tournaments []TournamentOption
}
