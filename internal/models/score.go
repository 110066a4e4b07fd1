package models

// LeaderboardEntry is one row of the global leaderboard: a user and their best score
type LeaderboardEntry struct {
	Username string `json:"username" db:"username"`
	Score    int64  `json:"score" db:"score"`
}

// Stats aggregates all scores of one user.
// Every field is zero when the user has no scores.
type Stats struct {
	Highest    int64   `json:"highest" db:"highest"`
	TotalGames int64   `json:"total_games" db:"total_games"`
	Average    float64 `json:"average" db:"average"`
}
