// Package balance implements the team-balancing engine: player rating
// aggregation, historical performance scoring, a shared fitness function,
// and three selectable optimizers (greedy draft, multi-armed bandit,
// simulated annealing) that search the space of two-team splits.
//
// The package performs no I/O. Callers fetch profiles and match history
// once, build a RatingsContext, and pass it by reference into every
// evaluation; the search loops never touch a store.
package balance

import (
	"math/rand"
	"time"

	"github.com/pitchside/teams-api/internal/models"
)

// Recent-form window sizes. The draft score looks five games back while the
// bandit's recent-form arm looks three; the two call sites are intentionally
// distinct.
const (
	formWindowDraft    = 5
	formWindowStrategy = 3
)

// PlayerData is the precomputed rating/history bundle for one player.
type PlayerData struct {
	Player  models.Player
	Profile *models.AttributeProfile // nil when the player is unrated

	// Position is normalized: unset or unrecognized values read as MID.
	Position models.Position

	Skill       float64 // position-weighted overall attribute rating
	Performance float64 // all-time performance score, [0,10]
	RecentForm  float64 // 5-game window form, [0,10]

	TotalContribs  int // all-time goals+assists
	RecentContribs int // goals+assists over the last 3 games

	VotedIn bool // confirmed availability for the game being balanced
}

// RatingsContext is the immutable snapshot every evaluator and strategy
// reads from during a search. Players absent from the snapshot resolve to
// neutral defaults rather than errors.
type RatingsContext struct {
	GroupID int64
	players map[int64]*PlayerData
}

// NewRatingsContext precomputes per-player data from raw inputs. matches
// must hold the group's finished matches ordered most recent first; votedIn
// marks players with a confirmed "in" availability vote.
func NewRatingsContext(groupID int64, players []models.Player, profiles map[int64]*models.AttributeProfile, matches []models.MatchRecord, votedIn map[int64]bool) *RatingsContext {
	rc := &RatingsContext{
		GroupID: groupID,
		players: make(map[int64]*PlayerData, len(players)),
	}
	for _, p := range players {
		profile := profiles[p.ID]
		pos := models.PositionMID
		if profile != nil {
			pos = models.NormalizePosition(profile.PreferredPosition)
		}
		perf := PerformanceScore(p.ID, matches)
		goals, assists := contributions(p.ID, matches, 0)
		recentGoals, recentAssists := contributions(p.ID, matches, formWindowStrategy)
		rc.players[p.ID] = &PlayerData{
			Player:         p,
			Profile:        profile,
			Position:       pos,
			Skill:          OverallRating(profile),
			Performance:    perf,
			RecentForm:     RecentForm(p.ID, matches, formWindowDraft),
			TotalContribs:  goals + assists,
			RecentContribs: recentGoals + recentAssists,
			VotedIn:        votedIn[p.ID],
		}
	}
	return rc
}

var neutralData = PlayerData{
	Position:    models.PositionMID,
	Skill:       neutralRating,
	Performance: neutralRating,
	RecentForm:  neutralRating,
}

// Data returns the bundle for a player. Unknown players resolve to the
// neutral defaults so degenerate rosters still balance.
func (rc *RatingsContext) Data(userID int64) *PlayerData {
	if d, ok := rc.players[userID]; ok {
		return d
	}
	n := neutralData
	n.Player = models.Player{ID: userID}
	return &n
}

// Position returns the player's normalized position.
func (rc *RatingsContext) Position(userID int64) models.Position {
	return rc.Data(userID).Position
}

// Skill returns the player's overall attribute rating.
func (rc *RatingsContext) Skill(userID int64) float64 {
	return rc.Data(userID).Skill
}

func defaultRNG() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
