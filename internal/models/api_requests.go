package models

type BalanceRequest struct {
	// Unknown algorithm keys fall back to the smart draft, so this is not
	// validated against a fixed list.
	Algorithm string `json:"algorithm"`
}

type TeamRatingsRequest struct {
	TeamA []int64 `json:"team_a"`
	TeamB []int64 `json:"team_b"`
}

type CreateGameRequest struct {
	ScheduledAt   string `json:"scheduled_at" validate:"required"` // RFC3339
	Location      string `json:"location"`
	Notes         string `json:"notes"`
	PollLockHours int    `json:"poll_lock_hours" validate:"gte=0"`
}

type VoteRequest struct {
	Status AvailabilityStatus `json:"status" validate:"required,oneof=in out maybe"`
}

type PublishTeamsRequest struct {
	TeamA []int64 `json:"team_a" validate:"required,min=1"`
	TeamB []int64 `json:"team_b" validate:"required,min=1"`
}

// UpdateAttributesRequest carries a full attribute profile write. Decode
// over NewUpdateAttributesRequest so omitted fields keep their defaults
// instead of failing the 1-10 range check.
type UpdateAttributesRequest struct {
	Pace     int `json:"pace" validate:"min=1,max=10"`
	Stamina  int `json:"stamina" validate:"min=1,max=10"`
	Strength int `json:"strength" validate:"min=1,max=10"`
	Agility  int `json:"agility" validate:"min=1,max=10"`
	Jumping  int `json:"jumping" validate:"min=1,max=10"`

	BallControl int `json:"ball_control" validate:"min=1,max=10"`
	Dribbling   int `json:"dribbling" validate:"min=1,max=10"`
	Passing     int `json:"passing" validate:"min=1,max=10"`
	Shooting    int `json:"shooting" validate:"min=1,max=10"`
	Crossing    int `json:"crossing" validate:"min=1,max=10"`
	FreeKicks   int `json:"free_kicks" validate:"min=1,max=10"`

	Positioning    int `json:"positioning" validate:"min=1,max=10"`
	Marking        int `json:"marking" validate:"min=1,max=10"`
	Tackling       int `json:"tackling" validate:"min=1,max=10"`
	Interceptions  int `json:"interceptions" validate:"min=1,max=10"`
	Vision         int `json:"vision" validate:"min=1,max=10"`
	DecisionMaking int `json:"decision_making" validate:"min=1,max=10"`

	Composure     int `json:"composure" validate:"min=1,max=10"`
	Concentration int `json:"concentration" validate:"min=1,max=10"`
	Determination int `json:"determination" validate:"min=1,max=10"`
	Leadership    int `json:"leadership" validate:"min=1,max=10"`
	Teamwork      int `json:"teamwork" validate:"min=1,max=10"`

	Goalkeeping  int `json:"goalkeeping" validate:"min=1,max=10"`
	Handling     int `json:"handling" validate:"min=1,max=10"`
	Distribution int `json:"distribution" validate:"min=1,max=10"`
	AerialReach  int `json:"aerial_reach" validate:"min=1,max=10"`

	PreferredPosition Position `json:"preferred_position" validate:"omitempty,oneof=GK DEF MID FWD"`
	Notes             string   `json:"notes"`
}

// NewUpdateAttributesRequest returns a request at the neutral defaults:
// outfield attributes 5, goalkeeping attributes 1.
func NewUpdateAttributesRequest() UpdateAttributesRequest {
	return UpdateAttributesRequest{
		Pace: 5, Stamina: 5, Strength: 5, Agility: 5, Jumping: 5,
		BallControl: 5, Dribbling: 5, Passing: 5, Shooting: 5, Crossing: 5, FreeKicks: 5,
		Positioning: 5, Marking: 5, Tackling: 5, Interceptions: 5, Vision: 5, DecisionMaking: 5,
		Composure: 5, Concentration: 5, Determination: 5, Leadership: 5, Teamwork: 5,
		Goalkeeping: 1, Handling: 1, Distribution: 1, AerialReach: 1,
	}
}
