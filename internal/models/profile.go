package models

// Profile is the public view of a user together with their score aggregates
type Profile struct {
	Username   string `json:"username"`
	Email      string `json:"email"`
	TotalGames int64  `json:"total_games"`
	Highest    int64  `json:"highest_score"`
}
