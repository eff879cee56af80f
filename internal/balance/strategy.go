package balance

import (
	"math/rand"
	"sort"

	"github.com/pitchside/teams-api/internal/models"
)

// Strategy is one of the composition heuristics the bandit optimizer treats
// as arms. Each maps a player pool to a candidate two-team split.
type Strategy string

const (
	StrategySkillBalanced    Strategy = "skill_balanced"
	StrategyPositionFirst    Strategy = "position_first"
	StrategyPerformanceBased Strategy = "performance_based"
	StrategyRecentForm       Strategy = "recent_form"
	StrategyRandomSmart      Strategy = "random_smart"
)

// Strategies lists every composition strategy in arm order.
var Strategies = []Strategy{
	StrategySkillBalanced,
	StrategyPositionFirst,
	StrategyPerformanceBased,
	StrategyRecentForm,
	StrategyRandomSmart,
}

// TeamSplit is an ephemeral candidate partition of the pool into two
// disjoint rosters. ScoreA/ScoreB carry the greedy draft's cumulative
// weighted scores; the other generators leave them zero.
type TeamSplit struct {
	TeamA  []models.Player
	TeamB  []models.Player
	ScoreA float64
	ScoreB float64
}

// Generate produces a split of the pool using the named strategy. Unknown
// strategies behave like random_smart, mirroring the arm fallback.
func Generate(strategy Strategy, pool []models.Player, rc *RatingsContext, rng *rand.Rand) TeamSplit {
	switch strategy {
	case StrategySkillBalanced:
		return alternateByScore(pool, func(d *PlayerData) float64 { return d.Skill }, rc)
	case StrategyPositionFirst:
		return positionFirstSplit(pool, rc)
	case StrategyPerformanceBased:
		return alternateByScore(pool, func(d *PlayerData) float64 { return float64(d.TotalContribs) }, rc)
	case StrategyRecentForm:
		return alternateByScore(pool, func(d *PlayerData) float64 { return float64(d.RecentContribs) }, rc)
	default:
		return randomSmartSplit(pool, rng)
	}
}

// alternateByScore sorts the pool descending by the given score and deals
// players A,B,A,B so the strongest players spread across both sides.
func alternateByScore(pool []models.Player, score func(*PlayerData) float64, rc *RatingsContext) TeamSplit {
	ordered := make([]models.Player, len(pool))
	copy(ordered, pool)
	sort.SliceStable(ordered, func(i, j int) bool {
		return score(rc.Data(ordered[i].ID)) > score(rc.Data(ordered[j].ID))
	})

	var split TeamSplit
	for i, p := range ordered {
		if i%2 == 0 {
			split.TeamA = append(split.TeamA, p)
		} else {
			split.TeamB = append(split.TeamB, p)
		}
	}
	return split
}

// positionFirstSplit buckets players by normalized position and alternates
// within each bucket, spreading positions evenly before skill is considered.
func positionFirstSplit(pool []models.Player, rc *RatingsContext) TeamSplit {
	buckets := make(map[models.Position][]models.Player, len(models.Positions))
	for _, p := range pool {
		pos := rc.Position(p.ID)
		buckets[pos] = append(buckets[pos], p)
	}

	var split TeamSplit
	for _, pos := range models.Positions {
		// Odd buckets hand their extra player to whichever side is
		// currently behind, keeping the size gap at most 1.
		startA := len(split.TeamA) <= len(split.TeamB)
		for i, p := range buckets[pos] {
			if (i%2 == 0) == startA {
				split.TeamA = append(split.TeamA, p)
			} else {
				split.TeamB = append(split.TeamB, p)
			}
		}
	}
	return split
}

// randomSmartSplit shuffles the pool uniformly and cuts at the midpoint.
func randomSmartSplit(pool []models.Player, rng *rand.Rand) TeamSplit {
	shuffled := make([]models.Player, len(pool))
	copy(shuffled, pool)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return midpointSplit(shuffled)
}

// midpointSplit cuts the pool in half in its current order. With an odd
// pool the extra player lands on team B.
func midpointSplit(pool []models.Player) TeamSplit {
	mid := len(pool) / 2
	split := TeamSplit{
		TeamA: make([]models.Player, mid),
		TeamB: make([]models.Player, len(pool)-mid),
	}
	copy(split.TeamA, pool[:mid])
	copy(split.TeamB, pool[mid:])
	return split
}
