package logic

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/pitchside/teams-api/internal/models"
)

func TestGroupLeaderboardStandings(t *testing.T) {
	played := time.Date(2026, 5, 10, 19, 0, 0, 0, time.UTC)

	pg := &MockPgPool{
		QueryFunc: func(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
			if strings.Contains(sql, "group_members") {
				return &MockPgRows{Rows: [][]any{
					{int64(1), "Ana"},
					{int64(2), "Ben"},
					{int64(3), "Cleo"}, // never played
				}}, nil
			}
			return &MockPgRows{Rows: [][]any{
				{int64(30), played, int64(1), "A"},
				{int64(30), played, int64(2), "B"},
			}}, nil
		},
	}
	ch := &MockConn{
		ScorerRows: [][]any{
			{int64(30), int64(1), uint64(3), uint64(0)},
			{int64(30), int64(2), uint64(1), uint64(0)},
		},
	}

	svc := NewLeaderboardService(pg, ch, NewMockRedis(), time.Minute)
	entries, err := svc.GroupLeaderboard(context.Background(), 1)
	if err != nil {
		t.Fatalf("GroupLeaderboard failed: %v", err)
	}

	if len(entries) != 2 {
		t.Fatalf("expected 2 entries (member with no games excluded), got %d", len(entries))
	}

	winner := entries[0]
	if winner.UserID != 1 || winner.DisplayName != "Ana" {
		t.Fatalf("winner = %+v, want Ana", winner)
	}
	if winner.Wins != 1 || winner.Points != 3 || winner.Goals != 3 || winner.Contributions != 3 {
		t.Errorf("winner stats = %+v", winner)
	}

	loser := entries[1]
	if loser.Losses != 1 || loser.Points != 0 || loser.Goals != 1 {
		t.Errorf("loser stats = %+v", loser)
	}
}

func TestGroupLeaderboardDrawPoints(t *testing.T) {
	played := time.Date(2026, 5, 10, 19, 0, 0, 0, time.UTC)

	pg := &MockPgPool{
		QueryFunc: func(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
			if strings.Contains(sql, "group_members") {
				return &MockPgRows{Rows: [][]any{
					{int64(1), "Ana"},
					{int64(2), "Ben"},
				}}, nil
			}
			return &MockPgRows{Rows: [][]any{
				{int64(30), played, int64(1), "A"},
				{int64(30), played, int64(2), "B"},
			}}, nil
		},
	}
	ch := &MockConn{
		ScorerRows: [][]any{
			{int64(30), int64(1), uint64(1), uint64(0)},
			{int64(30), int64(2), uint64(1), uint64(0)},
		},
	}

	svc := NewLeaderboardService(pg, ch, NewMockRedis(), time.Minute)
	entries, err := svc.GroupLeaderboard(context.Background(), 1)
	if err != nil {
		t.Fatalf("GroupLeaderboard failed: %v", err)
	}

	for _, e := range entries {
		if e.Draws != 1 || e.Points != 1 {
			t.Errorf("draw entry = %+v, want 1 draw, 1 point", e)
		}
	}
}

func TestGroupLeaderboardServesCache(t *testing.T) {
	cached := []models.LeaderboardEntry{{UserID: 9, DisplayName: "Cached", Points: 12}}
	payload, _ := json.Marshal(cached)

	rdb := NewMockRedis()
	rdb.Set(context.Background(), "leaderboard:1", payload, time.Minute)

	pg := &MockPgPool{}
	svc := NewLeaderboardService(pg, &MockConn{}, rdb, time.Minute)

	entries, err := svc.GroupLeaderboard(context.Background(), 1)
	if err != nil {
		t.Fatalf("GroupLeaderboard failed: %v", err)
	}
	if len(entries) != 1 || entries[0].UserID != 9 {
		t.Fatalf("expected cached entries, got %+v", entries)
	}
	if len(pg.QueryCalls) != 0 {
		t.Errorf("cache hit still queried postgres %d times", len(pg.QueryCalls))
	}
}

func TestGroupLeaderboardPopulatesCache(t *testing.T) {
	rdb := NewMockRedis()
	pg := &MockPgPool{
		QueryFunc: func(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
			return &MockPgRows{}, nil
		},
	}
	svc := NewLeaderboardService(pg, &MockConn{}, rdb, time.Minute)

	if _, err := svc.GroupLeaderboard(context.Background(), 1); err != nil {
		t.Fatalf("GroupLeaderboard failed: %v", err)
	}
	if rdb.Sets != 1 {
		t.Errorf("expected 1 cache write, got %d", rdb.Sets)
	}
}
