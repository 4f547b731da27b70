package models

// Player is a stored players row. Rank is optional.
type Player struct {
	ID       int     `json:"player_id"`
	Username string  `json:"username"`
	Email    string  `json:"email"`
	JoinDate string  `json:"join_date"`
	Rank     *string `json:"rank,omitempty"`
}

// PlayerOption populates player <select> controls, ordered by username.
type PlayerOption struct {
	PlayerID   int    `json:"player_id"`
	PlayerName string `json:"player_name"`
}

type PlayerPage struct {
	Players []Player
}
