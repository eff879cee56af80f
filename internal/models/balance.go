package models

// BalanceResult is the caller-facing output of the balancing engine. The
// iterative algorithms additionally report their final fitness and the
// number of search iterations actually run.
type BalanceResult struct {
	TeamA        []Player    `json:"team_a"`
	TeamB        []Player    `json:"team_b"`
	Method       string      `json:"method"`
	FitnessScore *float64    `json:"fitness_score,omitempty"`
	Iterations   *int        `json:"iterations,omitempty"`
	TeamARatings TeamRatings `json:"team_a_ratings"`
	TeamBRatings TeamRatings `json:"team_b_ratings"`
}

// LeaderboardEntry is one member's row in the group leaderboard. Points are
// league style: 3 for a win, 1 for a draw.
type LeaderboardEntry struct {
	UserID        int64  `json:"user_id"`
	DisplayName   string `json:"display_name"`
	Goals         int    `json:"goals"`
	Assists       int    `json:"assists"`
	OwnGoals      int    `json:"own_goals"`
	GamesPlayed   int    `json:"games_played"`
	Wins          int    `json:"wins"`
	Draws         int    `json:"draws"`
	Losses        int    `json:"losses"`
	Points        int    `json:"points"`
	Contributions int    `json:"total_contributions"`
}
