package balance

import (
	"math"

	"github.com/pitchside/teams-api/internal/models"
)

// PerformanceScore rates a player's all-time output across the group's
// finished matches: min(10, goals/game*3 + assists/game*2 + winrate*4).
// Only matches the player was assigned to count; zero games played rates a
// neutral 5.0 so new players never error out.
func PerformanceScore(userID int64, matches []models.MatchRecord) float64 {
	var games, goals, assists, wins int
	for i := range matches {
		line, ok := matches[i].Line(userID)
		if !ok {
			continue
		}
		games++
		goals += line.Goals
		assists += line.Assists
		if matches[i].Won(line.Team) {
			wins++
		}
	}
	if games == 0 {
		return neutralRating
	}

	gpg := float64(goals) / float64(games)
	apg := float64(assists) / float64(games)
	winRate := float64(wins) / float64(games)
	return math.Min(10.0, gpg*3+apg*2+winRate*4)
}

// RecentForm rates a player over the most recent `window` finished matches
// (matches must be ordered most recent first). Each participated game
// contributes goals*2 + assists + 3 for a win, averaged over participated
// games and capped at 10. No participation inside the window falls back to
// the all-time PerformanceScore.
func RecentForm(userID int64, matches []models.MatchRecord, window int) float64 {
	if window > len(matches) {
		window = len(matches)
	}

	var played int
	var total float64
	for i := 0; i < window; i++ {
		line, ok := matches[i].Line(userID)
		if !ok {
			continue
		}
		played++
		score := float64(line.Goals*2 + line.Assists)
		if matches[i].Won(line.Team) {
			score += 3
		}
		total += score
	}
	if played == 0 {
		return PerformanceScore(userID, matches)
	}
	return math.Min(10.0, total/float64(played))
}

// contributions counts a player's goals and assists over the `limit` most
// recent matches; limit 0 means all matches.
func contributions(userID int64, matches []models.MatchRecord, limit int) (goals, assists int) {
	n := len(matches)
	if limit > 0 && limit < n {
		n = limit
	}
	for i := 0; i < n; i++ {
		if line, ok := matches[i].Line(userID); ok {
			goals += line.Goals
			assists += line.Assists
		}
	}
	return
}
