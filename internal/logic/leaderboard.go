package logic

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"

	"github.com/pitchside/teams-api/internal/models"
)

type leaderboardService struct {
	pg      PgPool
	matches *matchStore
	redis   RedisClient
	ttl     time.Duration
}

func NewLeaderboardService(pg PgPool, ch driver.Conn, rdb RedisClient, ttl time.Duration) LeaderboardService {
	if ttl <= 0 {
		ttl = 60 * time.Second
	}
	return &leaderboardService{
		pg:      pg,
		matches: &matchStore{pg: pg, ch: ch},
		redis:   rdb,
		ttl:     ttl,
	}
}

// GroupLeaderboard computes the standings table for a group from its full
// finished-match history. Members who never played are excluded; ordering is
// points, then goal contributions, then goals.
func (s *leaderboardService) GroupLeaderboard(ctx context.Context, groupID int64) ([]models.LeaderboardEntry, error) {
	key := fmt.Sprintf("leaderboard:%d", groupID)
	if cached, err := s.redis.Get(ctx, key).Result(); err == nil {
		var entries []models.LeaderboardEntry
		if err := json.Unmarshal([]byte(cached), &entries); err == nil {
			return entries, nil
		}
	}

	matches, err := s.matches.FinishedMatches(ctx, groupID, 0)
	if err != nil {
		return nil, fmt.Errorf("leaderboard matches: %w", err)
	}
	names, err := s.fetchMemberNames(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("leaderboard members: %w", err)
	}

	byUser := make(map[int64]*models.LeaderboardEntry)
	for i := range matches {
		m := &matches[i]
		for _, line := range m.Lines {
			entry, ok := byUser[line.UserID]
			if !ok {
				entry = &models.LeaderboardEntry{
					UserID:      line.UserID,
					DisplayName: names[line.UserID],
				}
				byUser[line.UserID] = entry
			}

			entry.GamesPlayed++
			entry.Goals += line.Goals
			entry.Assists += line.Assists
			entry.OwnGoals += line.OwnGoals

			switch {
			case m.Drawn():
				entry.Draws++
			case m.Won(line.Team):
				entry.Wins++
			default:
				entry.Losses++
			}
		}
	}

	entries := make([]models.LeaderboardEntry, 0, len(byUser))
	for _, entry := range byUser {
		entry.Points = entry.Wins*3 + entry.Draws
		entry.Contributions = entry.Goals + entry.Assists
		entries = append(entries, *entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		if a.Contributions != b.Contributions {
			return a.Contributions > b.Contributions
		}
		if a.Goals != b.Goals {
			return a.Goals > b.Goals
		}
		return a.UserID < b.UserID
	})

	if payload, err := json.Marshal(entries); err == nil {
		s.redis.Set(ctx, key, payload, s.ttl)
	}

	return entries, nil
}

func (s *leaderboardService) fetchMemberNames(ctx context.Context, groupID int64) (map[int64]string, error) {
	rows, err := s.pg.Query(ctx,
		`SELECT user_id, display_name FROM group_members WHERE group_id = $1`,
		groupID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	names := make(map[int64]string)
	for rows.Next() {
		var (
			userID int64
			name   string
		)
		if err := rows.Scan(&userID, &name); err != nil {
			return nil, err
		}
		names[userID] = name
	}
	return names, rows.Err()
}
