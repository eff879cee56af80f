package logic

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
)

// profileRow mirrors the player_attributes column order with every attribute
// set to the same value.
func profileRow(userID, groupID int64, value int, position string) []any {
	row := []any{userID, groupID}
	for i := 0; i < 26; i++ {
		row = append(row, value)
	}
	return append(row, position, "", time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
}

func TestTeamRatingsComputesAndCaches(t *testing.T) {
	pg := &MockPgPool{
		QueryFunc: func(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
			return &MockPgRows{Rows: [][]any{
				profileRow(1, 1, 8, "FWD"),
				profileRow(2, 1, 8, "DEF"),
			}}, nil
		},
	}
	rdb := NewMockRedis()
	svc := NewTeamRatingsService(pg, rdb, time.Minute)

	ratings, err := svc.TeamRatings(context.Background(), 1, []int64{1, 2})
	if err != nil {
		t.Fatalf("TeamRatings failed: %v", err)
	}
	if ratings.Overall <= 0 {
		t.Fatalf("overall rating not computed: %+v", ratings)
	}
	if rdb.Sets != 1 {
		t.Errorf("expected 1 cache write, got %d", rdb.Sets)
	}

	// Second call with the roster reordered hits the cache.
	again, err := svc.TeamRatings(context.Background(), 1, []int64{2, 1})
	if err != nil {
		t.Fatalf("TeamRatings (cached) failed: %v", err)
	}
	if again != ratings {
		t.Errorf("cached ratings differ: %+v vs %+v", again, ratings)
	}
	if len(pg.QueryCalls) != 1 {
		t.Errorf("cache hit still queried postgres, %d calls", len(pg.QueryCalls))
	}
}

func TestTeamRatingsNeutralWithoutProfiles(t *testing.T) {
	pg := &MockPgPool{
		QueryFunc: func(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
			return &MockPgRows{}, nil
		},
	}
	svc := NewTeamRatingsService(pg, NewMockRedis(), time.Minute)

	ratings, err := svc.TeamRatings(context.Background(), 1, []int64{1, 2, 3})
	if err != nil {
		t.Fatalf("TeamRatings failed: %v", err)
	}
	// Unrated players read as neutral 5.0 in every line.
	if ratings.Attack != 5.0 || ratings.Defense != 5.0 || ratings.Overall != 5.0 {
		t.Errorf("neutral roster ratings = %+v, want 5.0 lines", ratings)
	}
}

func TestRatingsCacheKeyStableUnderOrder(t *testing.T) {
	a := ratingsCacheKey(1, []int64{3, 1, 2})
	b := ratingsCacheKey(1, []int64{2, 3, 1})
	if a != b {
		t.Errorf("cache key depends on roster order: %q vs %q", a, b)
	}
	if c := ratingsCacheKey(2, []int64{3, 1, 2}); c == a {
		t.Errorf("cache key ignores group id")
	}
}
