package balance

import (
	"math"

	"github.com/pitchside/teams-api/internal/models"
)

// neutralRating is what every computation reads for a player without an
// attribute profile.
const neutralRating = 5.0

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func clampLine(v float64) float64 {
	return math.Max(1.0, math.Min(10.0, v))
}

// categoryAverages returns the unweighted means of the physical, technical,
// tactical and mental attribute groups.
func categoryAverages(p *models.AttributeProfile) (physical, technical, tactical, mental float64) {
	physical = float64(p.Pace+p.Stamina+p.Strength+p.Agility+p.Jumping) / 5
	technical = float64(p.BallControl+p.Dribbling+p.Passing+p.Shooting+p.Crossing+p.FreeKicks) / 6
	tactical = float64(p.Positioning+p.Marking+p.Tackling+p.Interceptions+p.Vision+p.DecisionMaking) / 6
	mental = float64(p.Composure+p.Concentration+p.Determination+p.Leadership+p.Teamwork) / 5
	return
}

// OverallRating computes the position-weighted overall rating for a profile,
// rounded to one decimal. The weighting per preferred position:
//
//	GK:  0.40 goalkeeping + 0.30 mental + 0.20 physical + 0.10 tactical
//	DEF: 0.35 tactical + 0.25 physical + 0.25 mental + 0.15 technical
//	MID: 0.35 technical + 0.30 tactical + 0.20 mental + 0.15 physical
//	FWD: 0.40 technical + 0.25 physical + 0.20 mental + 0.15 tactical
//
// Any other position value falls back to the plain mean of the four
// categories. A nil profile rates neutral 5.0, never an error.
func OverallRating(p *models.AttributeProfile) float64 {
	if p == nil {
		return neutralRating
	}
	physical, technical, tactical, mental := categoryAverages(p)

	switch p.PreferredPosition {
	case models.PositionGK:
		gk := float64(p.Goalkeeping+p.Handling+p.Distribution+p.AerialReach) / 4
		return round1(gk*0.4 + mental*0.3 + physical*0.2 + tactical*0.1)
	case models.PositionDEF:
		return round1(tactical*0.35 + physical*0.25 + mental*0.25 + technical*0.15)
	case models.PositionMID:
		return round1(technical*0.35 + tactical*0.30 + mental*0.20 + physical*0.15)
	case models.PositionFWD:
		return round1(technical*0.40 + physical*0.25 + mental*0.20 + tactical*0.15)
	default:
		return round1((technical + tactical + mental + physical) / 4)
	}
}

// playerLines computes a single player's attack/midfield/defense/pace line
// scores: fixed attribute weightings scaled by a position multiplier, each
// clamped to [1,10]. Goalkeepers replace the defense line with a
// goalkeeping-specific formula.
func playerLines(p *models.AttributeProfile) (attack, midfield, defense, pace float64) {
	if p == nil {
		return neutralRating, neutralRating, neutralRating, neutralRating
	}

	attack = float64(p.Shooting)*0.35 +
		float64(p.BallControl)*0.20 +
		float64(p.Crossing)*0.20 +
		float64(p.FreeKicks)*0.15 +
		float64(p.Positioning)*0.10

	midfield = float64(p.Passing)*0.30 +
		float64(p.Vision)*0.25 +
		float64(p.BallControl)*0.20 +
		float64(p.Dribbling)*0.15 +
		float64(p.DecisionMaking)*0.10

	defense = float64(p.Tackling)*0.25 +
		float64(p.Marking)*0.25 +
		float64(p.Interceptions)*0.20 +
		float64(p.Positioning)*0.20 +
		float64(p.Strength)*0.10

	pace = float64(p.Pace)*0.50 +
		float64(p.Agility)*0.30 +
		float64(p.Stamina)*0.20

	switch models.NormalizePosition(p.PreferredPosition) {
	case models.PositionFWD:
		attack *= 1.2
		midfield *= 0.9
		defense *= 0.7
	case models.PositionMID:
		attack *= 0.95
		midfield *= 1.1
		defense *= 0.95
	case models.PositionDEF:
		attack *= 0.7
		midfield *= 0.9
		defense *= 1.2
	case models.PositionGK:
		attack *= 0.3
		midfield *= 0.4
		defense = (float64(p.Goalkeeping)*0.4 +
			float64(p.Handling)*0.3 +
			float64(p.AerialReach)*0.2 +
			float64(p.Distribution)*0.1) * 1.3
	}

	return clampLine(attack), clampLine(midfield), clampLine(defense), clampLine(pace)
}

// LineRatings aggregates per-line ratings across a roster: the mean of each
// player's clamped line scores, rounded to one decimal, with overall =
// 0.3 attack + 0.3 midfield + 0.3 defense + 0.1 pace. An empty roster
// returns all zeros, not an error.
func LineRatings(players []models.Player, rc *RatingsContext) models.TeamRatings {
	if len(players) == 0 {
		return models.TeamRatings{}
	}

	var attack, midfield, defense, pace float64
	for _, p := range players {
		a, m, d, pc := playerLines(rc.Data(p.ID).Profile)
		attack += a
		midfield += m
		defense += d
		pace += pc
	}

	n := float64(len(players))
	avgAttack := attack / n
	avgMidfield := midfield / n
	avgDefense := defense / n
	avgPace := pace / n

	return models.TeamRatings{
		Attack:   round1(avgAttack),
		Midfield: round1(avgMidfield),
		Defense:  round1(avgDefense),
		Pace:     round1(avgPace),
		Overall:  round1(avgAttack*0.3 + avgMidfield*0.3 + avgDefense*0.3 + avgPace*0.1),
	}
}
