package balance

import (
	"math"
	"math/rand"
	"sort"

	"github.com/pitchside/teams-api/internal/models"
)

// Annealing tuning defaults.
const (
	annealDefaultMaxIterations = 2000
	annealDefaultInitialTemp   = 10.0
	annealDefaultCoolingRate   = 0.95
	annealTempFloor            = 0.01
)

// Annealer runs simulated annealing over player swaps: starting from a
// random midpoint split it proposes neighbor splits, always accepts
// improvements, and accepts worsening moves with probability
// exp(-delta/temperature) while the temperature cools each iteration.
type Annealer struct {
	rng *rand.Rand

	MaxIterations int
	InitialTemp   float64
	CoolingRate   float64
}

// NewAnnealer returns an annealing optimizer with the default schedule.
func NewAnnealer(rng *rand.Rand) *Annealer {
	if rng == nil {
		rng = defaultRNG()
	}
	return &Annealer{
		rng:           rng,
		MaxIterations: annealDefaultMaxIterations,
		InitialTemp:   annealDefaultInitialTemp,
		CoolingRate:   annealDefaultCoolingRate,
	}
}

// Optimize searches for the best split by local search. A pool smaller than
// two players returns two empty teams. Iterations in the result reports how
// many steps actually ran before the temperature floor cut the search off.
func (a *Annealer) Optimize(pool []models.Player, rc *RatingsContext) Result {
	result := Result{Method: AlgorithmAnnealing.Method()}
	if len(pool) < 2 {
		return result
	}

	current := randomSmartSplit(pool, a.rng)
	currentFitness := Fitness(current.TeamA, current.TeamB, rc)

	best := cloneSplit(current)
	bestFitness := currentFitness

	temperature := a.InitialTemp
	iterations := 0

	for iter := 0; iter < a.MaxIterations; iter++ {
		iterations = iter + 1

		neighbor := a.neighbor(current, rc)
		neighborFitness := Fitness(neighbor.TeamA, neighbor.TeamB, rc)

		accept := false
		if neighborFitness > currentFitness {
			accept = true
		} else if temperature > 0 {
			delta := currentFitness - neighborFitness
			accept = a.rng.Float64() < math.Exp(-delta/temperature)
		}

		if accept {
			current = neighbor
			currentFitness = neighborFitness
			if currentFitness > bestFitness {
				best = cloneSplit(current)
				bestFitness = currentFitness
			}
		}

		temperature *= a.CoolingRate
		if temperature < annealTempFloor {
			break
		}
	}

	result.Split = best
	result.Fitness = bestFitness
	result.Iterations = iterations
	return result
}

// neighbor proposes a nearby split using one of three uniformly chosen move
// types. Moves that cannot apply to the current split (teams too small, no
// shared position) degrade to a no-op proposal.
func (a *Annealer) neighbor(current TeamSplit, rc *RatingsContext) TeamSplit {
	next := cloneSplit(current)

	switch a.rng.Intn(3) {
	case 0: // single swap
		if len(next.TeamA) > 0 && len(next.TeamB) > 0 {
			i := a.rng.Intn(len(next.TeamA))
			j := a.rng.Intn(len(next.TeamB))
			next.TeamA[i], next.TeamB[j] = next.TeamB[j], next.TeamA[i]
		}
	case 1: // double swap
		if len(next.TeamA) >= 2 && len(next.TeamB) >= 2 {
			ai, aj := a.samplePair(len(next.TeamA))
			bi, bj := a.samplePair(len(next.TeamB))
			next.TeamA[ai], next.TeamB[bi] = next.TeamB[bi], next.TeamA[ai]
			next.TeamA[aj], next.TeamB[bj] = next.TeamB[bj], next.TeamA[aj]
		}
	default: // position-matched swap
		a.positionSwap(&next, rc)
	}

	return next
}

// samplePair returns two distinct indices in [0,n).
func (a *Annealer) samplePair(n int) (int, int) {
	i := a.rng.Intn(n)
	j := a.rng.Intn(n - 1)
	if j >= i {
		j++
	}
	return i, j
}

// positionSwap exchanges two random players who share a normalized position
// across the teams. No shared position means no move.
func (a *Annealer) positionSwap(split *TeamSplit, rc *RatingsContext) {
	byPosA := indexByPosition(split.TeamA, rc)
	byPosB := indexByPosition(split.TeamB, rc)

	var common []models.Position
	for pos := range byPosA {
		if len(byPosB[pos]) > 0 {
			common = append(common, pos)
		}
	}
	if len(common) == 0 {
		return
	}
	sort.Slice(common, func(i, j int) bool { return common[i] < common[j] })

	pos := common[a.rng.Intn(len(common))]
	i := byPosA[pos][a.rng.Intn(len(byPosA[pos]))]
	j := byPosB[pos][a.rng.Intn(len(byPosB[pos]))]
	split.TeamA[i], split.TeamB[j] = split.TeamB[j], split.TeamA[i]
}

func indexByPosition(team []models.Player, rc *RatingsContext) map[models.Position][]int {
	idx := make(map[models.Position][]int, len(models.Positions))
	for i, p := range team {
		pos := rc.Position(p.ID)
		idx[pos] = append(idx[pos], i)
	}
	return idx
}

func cloneSplit(s TeamSplit) TeamSplit {
	out := TeamSplit{
		TeamA:  make([]models.Player, len(s.TeamA)),
		TeamB:  make([]models.Player, len(s.TeamB)),
		ScoreA: s.ScoreA,
		ScoreB: s.ScoreB,
	}
	copy(out.TeamA, s.TeamA)
	copy(out.TeamB, s.TeamB)
	return out
}
