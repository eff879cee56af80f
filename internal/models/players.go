package models

import "time"

// Position is a player's preferred spot on the pitch.
type Position string

const (
	PositionGK  Position = "GK"
	PositionDEF Position = "DEF"
	PositionMID Position = "MID"
	PositionFWD Position = "FWD"
)

// Positions lists every recognized position in pitch order.
var Positions = []Position{PositionGK, PositionDEF, PositionMID, PositionFWD}

// Known reports whether p is one of the four recognized positions.
func (p Position) Known() bool {
	switch p {
	case PositionGK, PositionDEF, PositionMID, PositionFWD:
		return true
	}
	return false
}

// NormalizePosition maps unset or unrecognized values to MID. Position
// bucketing and line ratings use this everywhere so a stray value in a
// profile row never produces a fifth bucket.
func NormalizePosition(p Position) Position {
	if p.Known() {
		return p
	}
	return PositionMID
}

// Player is a group member as the balancing engine sees them: an opaque
// identity plus a display name. Mutations happen in the membership layer.
type Player struct {
	ID          int64  `json:"id"`
	DisplayName string `json:"display_name"`
}

// AttributeProfile holds a player's 1-10 attribute ratings for one group.
// At most one profile exists per (player, group); a missing profile is
// valid and reads as neutral 5.0 everywhere.
type AttributeProfile struct {
	UserID  int64 `json:"user_id"`
	GroupID int64 `json:"group_id"`

	// Physical
	Pace     int `json:"pace"`
	Stamina  int `json:"stamina"`
	Strength int `json:"strength"`
	Agility  int `json:"agility"`
	Jumping  int `json:"jumping"`

	// Technical
	BallControl int `json:"ball_control"`
	Dribbling   int `json:"dribbling"`
	Passing     int `json:"passing"`
	Shooting    int `json:"shooting"`
	Crossing    int `json:"crossing"`
	FreeKicks   int `json:"free_kicks"`

	// Tactical
	Positioning    int `json:"positioning"`
	Marking        int `json:"marking"`
	Tackling       int `json:"tackling"`
	Interceptions  int `json:"interceptions"`
	Vision         int `json:"vision"`
	DecisionMaking int `json:"decision_making"`

	// Mental
	Composure     int `json:"composure"`
	Concentration int `json:"concentration"`
	Determination int `json:"determination"`
	Leadership    int `json:"leadership"`
	Teamwork      int `json:"teamwork"`

	// Goalkeeping
	Goalkeeping  int `json:"goalkeeping"`
	Handling     int `json:"handling"`
	Distribution int `json:"distribution"`
	AerialReach  int `json:"aerial_reach"`

	PreferredPosition Position  `json:"preferred_position,omitempty"`
	Notes             string    `json:"notes,omitempty"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// TeamRatings is the per-line rating breakdown for a roster.
type TeamRatings struct {
	Attack   float64 `json:"attack"`
	Midfield float64 `json:"midfield"`
	Defense  float64 `json:"defense"`
	Pace     float64 `json:"pace"`
	Overall  float64 `json:"overall"`
}
