package balance

import (
	"math/rand"

	"github.com/pitchside/teams-api/internal/models"
)

// Bandit tuning defaults.
const (
	banditDefaultIterations = 1000
	banditInitialEpsilon    = 0.1
	banditEpsilonFloor      = 0.01
	banditEpsilonDecay      = 0.995
	banditDecayAfter        = 100
)

// Bandit runs epsilon-greedy selection over the composition strategies:
// each iteration either explores a random arm or exploits the arm with the
// best mean reward so far, scores the generated split, and keeps the best
// composition seen across the whole run.
type Bandit struct {
	rng *rand.Rand

	// Iterations caps the search. Zero runs no iterations and yields the
	// midpoint fallback split.
	Iterations int
}

// NewBandit returns a bandit optimizer with the default iteration budget.
func NewBandit(rng *rand.Rand) *Bandit {
	if rng == nil {
		rng = defaultRNG()
	}
	return &Bandit{rng: rng, Iterations: banditDefaultIterations}
}

// Optimize searches for the best split across all strategy arms. A pool
// smaller than two players returns two empty teams.
func (b *Bandit) Optimize(pool []models.Player, rc *RatingsContext) Result {
	result := Result{Method: AlgorithmBandit.Method()}
	if len(pool) < 2 {
		return result
	}

	rewards := make(map[Strategy][]float64, len(Strategies))
	epsilon := banditInitialEpsilon

	var best *TeamSplit
	var bestFitness float64

	for iter := 0; iter < b.Iterations; iter++ {
		var arm Strategy
		if b.rng.Float64() < epsilon || len(rewards) == 0 {
			arm = Strategies[b.rng.Intn(len(Strategies))]
		} else {
			arm = bestArm(rewards)
		}

		split := Generate(arm, pool, rc, b.rng)
		fitness := Fitness(split.TeamA, split.TeamB, rc)
		rewards[arm] = append(rewards[arm], fitness)

		// Strict improvement only, so the first composition always wins the
		// empty slot.
		if best == nil || fitness > bestFitness {
			s := split
			best = &s
			bestFitness = fitness
		}

		if iter > banditDecayAfter {
			epsilon *= banditEpsilonDecay
			if epsilon < banditEpsilonFloor {
				epsilon = banditEpsilonFloor
			}
		}
	}

	if best == nil {
		// Safety fallback when no composition was generated.
		fallback := midpointSplit(pool)
		result.Split = fallback
		result.Fitness = Fitness(fallback.TeamA, fallback.TeamB, rc)
		result.Iterations = b.Iterations
		return result
	}

	result.Split = *best
	result.Fitness = bestFitness
	result.Iterations = b.Iterations
	return result
}

// bestArm picks the strategy with the highest mean reward, scanning in
// fixed arm order so ties resolve deterministically.
func bestArm(rewards map[Strategy][]float64) Strategy {
	best := Strategies[0]
	bestMean := -1.0
	for _, arm := range Strategies {
		history, ok := rewards[arm]
		if !ok || len(history) == 0 {
			continue
		}
		var sum float64
		for _, r := range history {
			sum += r
		}
		if mean := sum / float64(len(history)); mean > bestMean {
			best = arm
			bestMean = mean
		}
	}
	return best
}
