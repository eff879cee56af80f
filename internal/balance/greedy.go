package balance

import (
	"math/rand"
	"sort"

	"github.com/pitchside/teams-api/internal/models"
)

// Draft score weights.
const (
	draftWeightSkill        = 0.25
	draftWeightPerformance  = 0.30
	draftWeightAvailability = 0.15
	draftWeightRecentForm   = 0.30

	availabilityVoted   = 7.5
	availabilityDefault = 7.0

	// A draft pick never widens the running score gap beyond this when the
	// teams are uneven.
	maxDraftScoreGap = 3.0
)

// GreedyDraft performs a single-pass weighted draft: players sorted by a
// blended score are dealt to whichever side most needs them, considering
// running score totals, team sizes, and positional quotas, with a small
// random flip to keep repeated drafts from being fully predictable.
type GreedyDraft struct {
	rng *rand.Rand

	// FlipProbability is the chance a pick lands on the opposite team from
	// the computed target. Tests zero it out.
	FlipProbability float64
}

// NewGreedyDraft returns a draft optimizer with the default 10% flip noise.
func NewGreedyDraft(rng *rand.Rand) *GreedyDraft {
	if rng == nil {
		rng = defaultRNG()
	}
	return &GreedyDraft{rng: rng, FlipProbability: 0.1}
}

// DraftScore is the blended per-player score the draft sorts by:
// 0.25 skill + 0.30 performance + 0.15 availability + 0.30 recent form.
func DraftScore(d *PlayerData) float64 {
	availability := availabilityDefault
	if d.VotedIn {
		availability = availabilityVoted
	}
	return d.Skill*draftWeightSkill +
		d.Performance*draftWeightPerformance +
		availability*draftWeightAvailability +
		d.RecentForm*draftWeightRecentForm
}

// Optimize drafts the pool into two teams. A pool smaller than two players
// returns two empty teams rather than an error.
func (g *GreedyDraft) Optimize(pool []models.Player, rc *RatingsContext) Result {
	result := Result{Method: AlgorithmSmartDraft.Method()}
	if len(pool) < 2 {
		return result
	}

	type pick struct {
		player   models.Player
		score    float64
		position models.Position
	}
	picks := make([]pick, len(pool))
	for i, p := range pool {
		d := rc.Data(p.ID)
		picks[i] = pick{player: p, score: DraftScore(d), position: d.Position}
	}
	sort.SliceStable(picks, func(i, j int) bool { return picks[i].score > picks[j].score })

	var split TeamSplit
	posCountA := make(map[models.Position]int)
	posCountB := make(map[models.Position]int)

	for _, pk := range picks {
		// A side "needs" the position while it holds fewer than size/4+1
		// players there.
		needsA := float64(posCountA[pk.position]) < float64(len(split.TeamA))/4+1
		needsB := float64(posCountB[pk.position]) < float64(len(split.TeamB))/4+1

		var target models.TeamSide
		switch {
		case len(split.TeamA) == len(split.TeamB):
			if split.ScoreA <= split.ScoreB && needsA {
				target = models.TeamA
			} else if split.ScoreB <= split.ScoreA && needsB {
				target = models.TeamB
			} else if split.ScoreA <= split.ScoreB {
				target = models.TeamA
			} else {
				target = models.TeamB
			}
		default:
			smaller := models.TeamA
			if len(split.TeamB) < len(split.TeamA) {
				smaller = models.TeamB
			}
			// Filling the smaller side is the default, unless it would blow
			// the running score gap open.
			switch {
			case smaller == models.TeamA && (split.ScoreA+pk.score)-split.ScoreB > maxDraftScoreGap:
				target = models.TeamB
			case smaller == models.TeamB && (split.ScoreB+pk.score)-split.ScoreA > maxDraftScoreGap:
				target = models.TeamA
			default:
				target = smaller
			}
		}

		if g.FlipProbability > 0 && g.rng.Float64() < g.FlipProbability {
			if target == models.TeamA {
				target = models.TeamB
			} else {
				target = models.TeamA
			}
		}

		if target == models.TeamA {
			split.TeamA = append(split.TeamA, pk.player)
			split.ScoreA += pk.score
			posCountA[pk.position]++
		} else {
			split.TeamB = append(split.TeamB, pk.player)
			split.ScoreB += pk.score
			posCountB[pk.position]++
		}
	}

	result.Split = split
	result.Fitness = Fitness(split.TeamA, split.TeamB, rc)
	return result
}
