package models

// MatchEventType classifies a live match event.
type MatchEventType string

const (
	EventGoal    MatchEventType = "goal"
	EventOwnGoal MatchEventType = "own_goal"
)

// MatchEvent is an incoming live match event recorded by a group admin.
// Assists ride on goal events; own goals never carry an assist.
type MatchEvent struct {
	Type     MatchEventType `json:"type" validate:"required,oneof=goal own_goal"`
	GroupID  int64          `json:"group_id" validate:"required"`
	GameID   int64          `json:"game_id" validate:"required"`
	ScorerID int64          `json:"scorer_id" validate:"required"`
	AssistID int64          `json:"assist_id,omitempty"`
	Minute   int            `json:"minute,omitempty"`
}
