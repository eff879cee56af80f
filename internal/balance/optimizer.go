package balance

import (
	"math/rand"

	"github.com/pitchside/teams-api/internal/models"
)

// Algorithm selects which optimizer balances a game.
type Algorithm int

const (
	AlgorithmSmartDraft Algorithm = iota
	AlgorithmBandit
	AlgorithmAnnealing
)

// ParseAlgorithm maps a request key to an Algorithm. Unknown keys fall back
// to the smart draft so balancing always produces a result.
func ParseAlgorithm(key string) Algorithm {
	switch key {
	case "bandit":
		return AlgorithmBandit
	case "simulated_annealing":
		return AlgorithmAnnealing
	default:
		return AlgorithmSmartDraft
	}
}

// Key returns the request key for the algorithm.
func (a Algorithm) Key() string {
	switch a {
	case AlgorithmBandit:
		return "bandit"
	case AlgorithmAnnealing:
		return "simulated_annealing"
	default:
		return "smart_draft"
	}
}

// Method returns the display name reported to callers.
func (a Algorithm) Method() string {
	switch a {
	case AlgorithmBandit:
		return "Multi-Armed Bandit"
	case AlgorithmAnnealing:
		return "Simulated Annealing"
	default:
		return "Smart Draft"
	}
}

// Result is the outcome of one optimizer invocation. Iterations reports how
// many search steps actually ran; the single-pass draft reports zero.
type Result struct {
	Split      TeamSplit
	Fitness    float64
	Iterations int
	Method     string
}

// Optimizer searches the space of two-team splits for a player pool.
// Implementations are stateless across calls and safe to discard after use;
// all player data comes from the RatingsContext snapshot.
type Optimizer interface {
	Optimize(pool []models.Player, rc *RatingsContext) Result
}

// New returns the optimizer for the given algorithm with its default
// tuning. rng may be nil, in which case a time-seeded source is used; tests
// inject a fixed seed for determinism.
func New(alg Algorithm, rng *rand.Rand) Optimizer {
	if rng == nil {
		rng = defaultRNG()
	}
	switch alg {
	case AlgorithmBandit:
		return NewBandit(rng)
	case AlgorithmAnnealing:
		return NewAnnealer(rng)
	default:
		return NewGreedyDraft(rng)
	}
}
