package balance

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/pitchside/teams-api/internal/models"
)

const testGroupID = int64(42)

func testRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// flatProfile returns a profile with every attribute set to the same value.
func flatProfile(userID int64, value int, pos models.Position) *models.AttributeProfile {
	return &models.AttributeProfile{
		UserID: userID, GroupID: testGroupID,
		Pace: value, Stamina: value, Strength: value, Agility: value, Jumping: value,
		BallControl: value, Dribbling: value, Passing: value, Shooting: value,
		Crossing: value, FreeKicks: value,
		Positioning: value, Marking: value, Tackling: value, Interceptions: value,
		Vision: value, DecisionMaking: value,
		Composure: value, Concentration: value, Determination: value,
		Leadership: value, Teamwork: value,
		Goalkeeping: value, Handling: value, Distribution: value, AerialReach: value,
		PreferredPosition: pos,
	}
}

func makePlayers(n int) []models.Player {
	players := make([]models.Player, n)
	for i := range players {
		players[i] = models.Player{ID: int64(i + 1), DisplayName: "Player"}
	}
	return players
}

// emptyContext rates every player neutral: no profiles, no history.
func emptyContext(players []models.Player) *RatingsContext {
	return NewRatingsContext(testGroupID, players, nil, nil, nil)
}

// matchFor builds a finished match where the listed players all played and
// team A won 1-0 unless scores say otherwise.
func matchFor(gameID int64, scoreA, scoreB int, lines []models.PlayerLine) models.MatchRecord {
	return models.MatchRecord{
		GameID:   gameID,
		PlayedAt: time.Date(2026, 3, int(gameID), 18, 0, 0, 0, time.UTC),
		ScoreA:   scoreA,
		ScoreB:   scoreB,
		Lines:    lines,
	}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// assertPartition fails unless teamA and teamB are disjoint and together
// cover the pool exactly once.
func assertPartition(t *testing.T, pool []models.Player, teamA, teamB []models.Player) {
	t.Helper()

	if len(teamA)+len(teamB) != len(pool) {
		t.Fatalf("split covers %d players, pool has %d", len(teamA)+len(teamB), len(pool))
	}

	seen := make(map[int64]int)
	for _, p := range teamA {
		seen[p.ID]++
	}
	for _, p := range teamB {
		seen[p.ID]++
	}
	for _, p := range pool {
		if seen[p.ID] != 1 {
			t.Fatalf("player %d appears %d times in split", p.ID, seen[p.ID])
		}
	}
}
