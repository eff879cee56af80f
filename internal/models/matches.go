package models

import "time"

// TeamSide identifies which of the two rosters a player was assigned to.
type TeamSide string

const (
	TeamA TeamSide = "A"
	TeamB TeamSide = "B"
)

// GameStatus is the lifecycle state of a scheduled game.
type GameStatus string

const (
	GameUpcoming GameStatus = "upcoming"
	GameLive     GameStatus = "live"
	GameFinished GameStatus = "finished"
)

// Game is a scheduled or played match within a group.
type Game struct {
	ID           int64      `json:"id"`
	GroupID      int64      `json:"group_id"`
	ScheduledAt  time.Time  `json:"scheduled_at"`
	Location     string     `json:"location,omitempty"`
	Notes        string     `json:"notes,omitempty"`
	Status       GameStatus `json:"status"`
	PollLockedAt *time.Time `json:"poll_locked_at,omitempty"`
	StartedAt    *time.Time `json:"started_at,omitempty"`
	EndedAt      *time.Time `json:"ended_at,omitempty"`
}

// PollLocked reports whether availability voting is closed for the game.
func (g *Game) PollLocked(now time.Time) bool {
	if g.PollLockedAt != nil && now.After(*g.PollLockedAt) {
		return true
	}
	return g.Status != GameUpcoming
}

// PlayerLine is one player's contribution to a finished match.
type PlayerLine struct {
	UserID   int64    `json:"user_id"`
	Team     TeamSide `json:"team"`
	Goals    int      `json:"goals"`
	OwnGoals int      `json:"own_goals"`
	Assists  int      `json:"assists"`
}

// MatchRecord is a finished game's outcome: the final score plus a line for
// every player who had a team assignment. ScoreA and ScoreB already include
// own goals credited to the opposing side.
type MatchRecord struct {
	GameID   int64        `json:"game_id"`
	PlayedAt time.Time    `json:"played_at"`
	ScoreA   int          `json:"score_a"`
	ScoreB   int          `json:"score_b"`
	Lines    []PlayerLine `json:"lines"`
}

// Line returns the player's line for this match, if they were assigned.
func (m *MatchRecord) Line(userID int64) (PlayerLine, bool) {
	for _, l := range m.Lines {
		if l.UserID == userID {
			return l, true
		}
	}
	return PlayerLine{}, false
}

// Won reports whether the given side won the match.
func (m *MatchRecord) Won(side TeamSide) bool {
	if side == TeamA {
		return m.ScoreA > m.ScoreB
	}
	return m.ScoreB > m.ScoreA
}

// Drawn reports whether the match ended level.
func (m *MatchRecord) Drawn() bool {
	return m.ScoreA == m.ScoreB
}

// AvailabilityStatus is a player's answer to the availability poll.
type AvailabilityStatus string

const (
	AvailabilityIn    AvailabilityStatus = "in"
	AvailabilityOut   AvailabilityStatus = "out"
	AvailabilityMaybe AvailabilityStatus = "maybe"
)
