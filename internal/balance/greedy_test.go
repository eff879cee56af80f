package balance

import (
	"testing"

	"github.com/pitchside/teams-api/internal/models"
)

func TestDraftScoreNeutralPlayer(t *testing.T) {
	players := makePlayers(1)
	rc := emptyContext(players)

	// 0.25*5 + 0.30*5 + 0.15*7 + 0.30*5 = 5.30 for an unvoted neutral player.
	if got := DraftScore(rc.Data(1)); !almostEqual(got, 5.30) {
		t.Errorf("neutral draft score = %v, want 5.30", got)
	}
}

func TestDraftScoreVoteBumpsAvailability(t *testing.T) {
	players := makePlayers(2)
	rc := NewRatingsContext(testGroupID, players, nil, nil, map[int64]bool{1: true})

	voted := DraftScore(rc.Data(1))
	unvoted := DraftScore(rc.Data(2))

	// Availability 7.5 vs 7.0 at weight 0.15 is a 0.075 bump.
	if !almostEqual(voted-unvoted, 0.075) {
		t.Errorf("vote bump = %v, want 0.075", voted-unvoted)
	}
}

func TestGreedyDraftSeparatesTwoPlayers(t *testing.T) {
	players := makePlayers(2)
	profiles := map[int64]*models.AttributeProfile{
		1: flatProfile(1, 8, models.PositionMID),
		2: flatProfile(2, 5, models.PositionMID),
	}
	rc := NewRatingsContext(testGroupID, players, profiles, nil, nil)

	g := NewGreedyDraft(testRNG(1))
	g.FlipProbability = 0

	result := g.Optimize(players, rc)
	assertPartition(t, players, result.Split.TeamA, result.Split.TeamB)

	if len(result.Split.TeamA) != 1 || len(result.Split.TeamB) != 1 {
		t.Fatalf("two players should draft one per side, got %d/%d",
			len(result.Split.TeamA), len(result.Split.TeamB))
	}
	if result.Split.TeamA[0].ID != 1 {
		t.Errorf("higher-scored player should be picked first onto team A, got %d",
			result.Split.TeamA[0].ID)
	}
}

func TestGreedyDraftSmallPool(t *testing.T) {
	g := NewGreedyDraft(testRNG(1))

	for _, pool := range [][]models.Player{nil, makePlayers(1)} {
		result := g.Optimize(pool, emptyContext(pool))
		if len(result.Split.TeamA) != 0 || len(result.Split.TeamB) != 0 {
			t.Errorf("pool of %d should produce empty teams", len(pool))
		}
		if result.Method != "Smart Draft" {
			t.Errorf("method = %q, want Smart Draft", result.Method)
		}
	}
}

func TestGreedyDraftBalancedSizes(t *testing.T) {
	rng := testRNG(5)
	for _, n := range []int{2, 5, 8, 11, 14} {
		players := makePlayers(n)
		profiles := make(map[int64]*models.AttributeProfile, n)
		for i, p := range players {
			profiles[p.ID] = flatProfile(p.ID, 2+i%8, models.Positions[i%4])
		}
		rc := NewRatingsContext(testGroupID, players, profiles, nil, nil)

		g := NewGreedyDraft(rng)
		g.FlipProbability = 0
		result := g.Optimize(players, rc)

		assertPartition(t, players, result.Split.TeamA, result.Split.TeamB)
		diff := len(result.Split.TeamA) - len(result.Split.TeamB)
		if diff < -1 || diff > 1 {
			t.Errorf("n=%d: team sizes differ by more than one: %d vs %d",
				n, len(result.Split.TeamA), len(result.Split.TeamB))
		}
		if result.Fitness < 0 || result.Fitness > 10 {
			t.Errorf("n=%d: fitness out of bounds: %v", n, result.Fitness)
		}
	}
}

func TestGreedyDraftScoreGapGuard(t *testing.T) {
	// Three flat-rated stars and one weak player. Without the gap guard the
	// third pick would pile onto the smaller side regardless of score.
	players := makePlayers(4)
	profiles := map[int64]*models.AttributeProfile{
		1: flatProfile(1, 10, models.PositionMID),
		2: flatProfile(2, 10, models.PositionMID),
		3: flatProfile(3, 10, models.PositionMID),
		4: flatProfile(4, 1, models.PositionMID),
	}
	rc := NewRatingsContext(testGroupID, players, profiles, nil, nil)

	g := NewGreedyDraft(testRNG(1))
	g.FlipProbability = 0
	result := g.Optimize(players, rc)

	assertPartition(t, players, result.Split.TeamA, result.Split.TeamB)
	if len(result.Split.TeamA) != 2 || len(result.Split.TeamB) != 2 {
		t.Fatalf("expected 2v2, got %d/%d", len(result.Split.TeamA), len(result.Split.TeamB))
	}

	gap := result.Split.ScoreA - result.Split.ScoreB
	if gap < 0 {
		gap = -gap
	}
	if gap > maxDraftScoreGap+0.001 {
		t.Errorf("running score gap %v exceeds the draft guard", gap)
	}
}
