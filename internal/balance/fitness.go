package balance

import (
	"math"

	"github.com/pitchside/teams-api/internal/models"
)

// Fitness component weights.
const (
	weightBalance     = 0.40
	weightPosition    = 0.25
	weightSize        = 0.20
	weightPerformance = 0.15
)

// FitnessScore is the scored quality of one candidate split: the weighted
// total plus the unweighted component scores that produced it, each in
// [0,10].
type FitnessScore struct {
	Total       float64 `json:"total"`
	Balance     float64 `json:"balance"`
	Position    float64 `json:"position"`
	Size        float64 `json:"size"`
	Performance float64 `json:"performance"`
}

// Fitness scores a candidate two-team split in [0,10]. A split with an
// empty side is never viable and scores zero.
func Fitness(teamA, teamB []models.Player, rc *RatingsContext) float64 {
	return FitnessDetail(teamA, teamB, rc).Total
}

// FitnessDetail scores a split and returns the component breakdown:
//
//   - balance (40%): line-rating gap between the sides
//   - position coverage (25%): each side rewarded for covering GK/DEF/MID/FWD
//   - size (20%): a 2+ player size gap zeroes the component
//   - performance (15%): gap in average overall rating
func FitnessDetail(teamA, teamB []models.Player, rc *RatingsContext) FitnessScore {
	if len(teamA) == 0 || len(teamB) == 0 {
		return FitnessScore{}
	}

	var fs FitnessScore

	ratingsA := LineRatings(teamA, rc)
	ratingsB := LineRatings(teamB, rc)
	fs.Balance = math.Max(0.0, 10.0-math.Abs(ratingsA.Overall-ratingsB.Overall)*2)

	posA := positionCounts(teamA, rc)
	posB := positionCounts(teamB, rc)
	var positionScore float64
	for _, pos := range models.Positions {
		positionScore += (coverageScore(posA[pos]) + coverageScore(posB[pos])) / 2
	}
	// Mean per-position coverage lands in [0.5, 3]; stretch it onto the
	// same [0,10] scale as the other components.
	fs.Position = (positionScore / 4) * (10.0 / 3.0)

	sizeDiff := float64(abs(len(teamA) - len(teamB)))
	fs.Size = math.Max(0.0, 10.0-sizeDiff*5)

	avgA := averageSkill(teamA, rc)
	avgB := averageSkill(teamB, rc)
	fs.Performance = math.Max(0.0, 10.0-math.Abs(avgA-avgB))

	fs.Total = math.Min(10.0, fs.Balance*weightBalance+
		fs.Position*weightPosition+
		fs.Size*weightSize+
		fs.Performance*weightPerformance)
	return fs
}

// coverageScore rewards a side for fielding a position at all and caps the
// reward so stacking one position stops paying off.
func coverageScore(count int) float64 {
	if count == 0 {
		return 0.5
	}
	return math.Min(3.0, math.Max(1.0, float64(count)))
}

func positionCounts(team []models.Player, rc *RatingsContext) map[models.Position]int {
	counts := make(map[models.Position]int, len(models.Positions))
	for _, p := range team {
		counts[rc.Position(p.ID)]++
	}
	return counts
}

func averageSkill(team []models.Player, rc *RatingsContext) float64 {
	var total float64
	for _, p := range team {
		total += rc.Skill(p.ID)
	}
	return total / float64(len(team))
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
