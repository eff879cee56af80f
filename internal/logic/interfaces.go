package logic

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"

	"github.com/pitchside/teams-api/internal/balance"
	"github.com/pitchside/teams-api/internal/models"
)

// PgPool defines the interface for PostgreSQL connection pool
type PgPool interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// RedisClient defines the interface for Redis client
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// SnapshotService assembles the in-memory ratings snapshot the balancing
// engine runs on. All store reads happen here; the engine itself does no I/O.
type SnapshotService interface {
	BuildRatingsContext(ctx context.Context, groupID, gameID int64, pool []models.Player) (*balance.RatingsContext, error)
}

// TeamRatingsService computes cached line ratings for a roster.
type TeamRatingsService interface {
	TeamRatings(ctx context.Context, groupID int64, playerIDs []int64) (models.TeamRatings, error)
}

// PlayerProfile pairs a member's display name with their attribute profile.
// Attributes is nil when no profile has been saved yet.
type PlayerProfile struct {
	PlayerName string                   `json:"player_name"`
	Attributes *models.AttributeProfile `json:"attributes"`
}

// ProfilesService reads and writes per-member attribute profiles.
type ProfilesService interface {
	PlayerAttributes(ctx context.Context, groupID, userID int64) (*PlayerProfile, error)
	SavePlayerAttributes(ctx context.Context, groupID, userID, updatedBy int64, req *models.UpdateAttributesRequest) error
}

// LeaderboardService aggregates per-member match statistics for a group.
type LeaderboardService interface {
	GroupLeaderboard(ctx context.Context, groupID int64) ([]models.LeaderboardEntry, error)
}

// GamesService owns game lifecycle state and the queries behind it.
type GamesService interface {
	GetGame(ctx context.Context, gameID int64) (*models.Game, error)
	CreateGame(ctx context.Context, groupID int64, req *models.CreateGameRequest) (*models.Game, error)

	// BalancePool returns the players eligible for balancing (members who
	// have not voted out) along with the set that voted in.
	BalancePool(ctx context.Context, groupID, gameID int64) ([]models.Player, map[int64]bool, error)

	SaveAvailability(ctx context.Context, gameID, userID int64, status models.AvailabilityStatus) error
	LockPoll(ctx context.Context, gameID int64) error
	PublishTeams(ctx context.Context, gameID int64, teamA, teamB []int64) error
	StartGame(ctx context.Context, gameID int64) error
	EndGame(ctx context.Context, gameID int64) error

	GroupMembers(ctx context.Context, groupID int64) ([]models.Player, error)
	FinishedMatches(ctx context.Context, groupID int64, limit int) ([]models.MatchRecord, error)
}
