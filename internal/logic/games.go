package logic

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"github.com/jackc/pgx/v5"

	"github.com/pitchside/teams-api/internal/models"
)

var (
	// ErrNotFound reports a missing game or group.
	ErrNotFound = errors.New("not found")
	// ErrPollLocked reports an availability vote after the poll closed.
	ErrPollLocked = errors.New("availability poll is locked")
	// ErrInvalidTransition reports a lifecycle change the game's current
	// status does not allow.
	ErrInvalidTransition = errors.New("invalid game status transition")
)

type gamesService struct {
	pg      PgPool
	matches *matchStore
	redis   RedisClient
}

func NewGamesService(pg PgPool, ch driver.Conn, rdb RedisClient) GamesService {
	return &gamesService{
		pg:      pg,
		matches: &matchStore{pg: pg, ch: ch},
		redis:   rdb,
	}
}

func (s *gamesService) GetGame(ctx context.Context, gameID int64) (*models.Game, error) {
	game := &models.Game{}
	err := s.pg.QueryRow(ctx, `
		SELECT id, group_id, scheduled_at, COALESCE(location, ''), COALESCE(notes, ''),
			status, poll_locked_at, started_at, ended_at
		FROM games WHERE id = $1
	`, gameID).Scan(
		&game.ID, &game.GroupID, &game.ScheduledAt, &game.Location, &game.Notes,
		&game.Status, &game.PollLockedAt, &game.StartedAt, &game.EndedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get game: %w", err)
	}
	return game, nil
}

func (s *gamesService) CreateGame(ctx context.Context, groupID int64, req *models.CreateGameRequest) (*models.Game, error) {
	scheduledAt, err := time.Parse(time.RFC3339, req.ScheduledAt)
	if err != nil {
		return nil, fmt.Errorf("parse scheduled_at: %w", err)
	}

	game := &models.Game{
		GroupID:     groupID,
		ScheduledAt: scheduledAt,
		Location:    req.Location,
		Notes:       req.Notes,
		Status:      models.GameUpcoming,
	}
	if req.PollLockHours > 0 {
		lockAt := scheduledAt.Add(-time.Duration(req.PollLockHours) * time.Hour)
		game.PollLockedAt = &lockAt
	}

	err = s.pg.QueryRow(ctx, `
		INSERT INTO games (group_id, scheduled_at, location, notes, status, poll_locked_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`, game.GroupID, game.ScheduledAt, game.Location, game.Notes, game.Status, game.PollLockedAt,
	).Scan(&game.ID)
	if err != nil {
		return nil, fmt.Errorf("create game: %w", err)
	}
	return game, nil
}

// BalancePool returns every member who has not voted themselves out of the
// game, plus the set that explicitly voted in.
func (s *gamesService) BalancePool(ctx context.Context, groupID, gameID int64) ([]models.Player, map[int64]bool, error) {
	rows, err := s.pg.Query(ctx, `
		SELECT m.user_id, m.display_name, COALESCE(v.status, '')
		FROM group_members m
		LEFT JOIN availability_votes v ON v.game_id = $2 AND v.user_id = m.user_id
		WHERE m.group_id = $1
		ORDER BY m.user_id
	`, groupID, gameID)
	if err != nil {
		return nil, nil, fmt.Errorf("balance pool query: %w", err)
	}
	defer rows.Close()

	var pool []models.Player
	votedIn := make(map[int64]bool)
	for rows.Next() {
		var (
			player models.Player
			status string
		)
		if err := rows.Scan(&player.ID, &player.DisplayName, &status); err != nil {
			return nil, nil, fmt.Errorf("balance pool scan: %w", err)
		}
		if models.AvailabilityStatus(status) == models.AvailabilityOut {
			continue
		}
		if models.AvailabilityStatus(status) == models.AvailabilityIn {
			votedIn[player.ID] = true
		}
		pool = append(pool, player)
	}
	return pool, votedIn, rows.Err()
}

func (s *gamesService) SaveAvailability(ctx context.Context, gameID, userID int64, status models.AvailabilityStatus) error {
	game, err := s.GetGame(ctx, gameID)
	if err != nil {
		return err
	}
	if game.PollLocked(time.Now()) {
		return ErrPollLocked
	}

	_, err = s.pg.Exec(ctx, `
		INSERT INTO availability_votes (game_id, user_id, status, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (game_id, user_id) DO UPDATE
		SET status = EXCLUDED.status, updated_at = EXCLUDED.updated_at
	`, gameID, userID, status)
	if err != nil {
		return fmt.Errorf("save availability: %w", err)
	}
	return nil
}

func (s *gamesService) LockPoll(ctx context.Context, gameID int64) error {
	tag, err := s.pg.Exec(ctx, `
		UPDATE games SET poll_locked_at = now()
		WHERE id = $1 AND status = 'upcoming'
	`, gameID)
	if err != nil {
		return fmt.Errorf("lock poll: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrInvalidTransition
	}
	return nil
}

// PublishTeams replaces the game's team assignments wholesale.
func (s *gamesService) PublishTeams(ctx context.Context, gameID int64, teamA, teamB []int64) error {
	if _, err := s.pg.Exec(ctx,
		`DELETE FROM team_assignments WHERE game_id = $1`, gameID); err != nil {
		return fmt.Errorf("clear team assignments: %w", err)
	}

	var (
		values []string
		args   = []any{gameID}
	)
	appendTeam := func(ids []int64, side models.TeamSide) {
		for _, id := range ids {
			args = append(args, id, string(side))
			values = append(values, fmt.Sprintf("($1, $%d, $%d)", len(args)-1, len(args)))
		}
	}
	appendTeam(teamA, models.TeamA)
	appendTeam(teamB, models.TeamB)

	if len(values) == 0 {
		return nil
	}
	query := `INSERT INTO team_assignments (game_id, user_id, team) VALUES ` +
		strings.Join(values, ", ")
	if _, err := s.pg.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("insert team assignments: %w", err)
	}
	return nil
}

func (s *gamesService) StartGame(ctx context.Context, gameID int64) error {
	tag, err := s.pg.Exec(ctx, `
		UPDATE games SET status = 'live', started_at = now()
		WHERE id = $1 AND status = 'upcoming'
	`, gameID)
	if err != nil {
		return fmt.Errorf("start game: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrInvalidTransition
	}
	return nil
}

func (s *gamesService) EndGame(ctx context.Context, gameID int64) error {
	game, err := s.GetGame(ctx, gameID)
	if err != nil {
		return err
	}

	tag, err := s.pg.Exec(ctx, `
		UPDATE games SET status = 'finished', ended_at = now()
		WHERE id = $1 AND status = 'live'
	`, gameID)
	if err != nil {
		return fmt.Errorf("end game: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrInvalidTransition
	}

	// The standings change the moment a game finishes.
	if s.redis != nil {
		s.redis.Del(ctx, fmt.Sprintf("leaderboard:%d", game.GroupID))
	}
	return nil
}

func (s *gamesService) GroupMembers(ctx context.Context, groupID int64) ([]models.Player, error) {
	rows, err := s.pg.Query(ctx, `
		SELECT user_id, display_name FROM group_members
		WHERE group_id = $1 ORDER BY display_name, user_id
	`, groupID)
	if err != nil {
		return nil, fmt.Errorf("group members: %w", err)
	}
	defer rows.Close()

	var members []models.Player
	for rows.Next() {
		var p models.Player
		if err := rows.Scan(&p.ID, &p.DisplayName); err != nil {
			return nil, fmt.Errorf("group members scan: %w", err)
		}
		members = append(members, p)
	}
	return members, rows.Err()
}

func (s *gamesService) FinishedMatches(ctx context.Context, groupID int64, limit int) ([]models.MatchRecord, error) {
	return s.matches.FinishedMatches(ctx, groupID, limit)
}
