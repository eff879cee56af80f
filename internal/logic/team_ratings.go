package logic

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/pitchside/teams-api/internal/balance"
	"github.com/pitchside/teams-api/internal/models"
)

type teamRatingsService struct {
	pg    PgPool
	redis RedisClient
	ttl   time.Duration
}

func NewTeamRatingsService(pg PgPool, rdb RedisClient, ttl time.Duration) TeamRatingsService {
	if ttl <= 0 {
		ttl = 60 * time.Second
	}
	return &teamRatingsService{pg: pg, redis: rdb, ttl: ttl}
}

// TeamRatings returns the line ratings for a roster, serving from redis when
// the same roster was rated recently. Cache misses recompute from the
// group's attribute profiles.
func (s *teamRatingsService) TeamRatings(ctx context.Context, groupID int64, playerIDs []int64) (models.TeamRatings, error) {
	key := ratingsCacheKey(groupID, playerIDs)

	// A cache miss or a redis failure both degrade to a recompute.
	if cached, err := s.redis.Get(ctx, key).Result(); err == nil {
		var ratings models.TeamRatings
		if err := json.Unmarshal([]byte(cached), &ratings); err == nil {
			return ratings, nil
		}
	}

	profiles, err := fetchProfiles(ctx, s.pg, groupID)
	if err != nil {
		return models.TeamRatings{}, fmt.Errorf("team ratings profiles: %w", err)
	}

	players := make([]models.Player, len(playerIDs))
	for i, id := range playerIDs {
		players[i] = models.Player{ID: id}
	}

	rc := balance.NewRatingsContext(groupID, players, profiles, nil, nil)
	ratings := balance.LineRatings(players, rc)

	if payload, err := json.Marshal(ratings); err == nil {
		s.redis.Set(ctx, key, payload, s.ttl)
	}

	return ratings, nil
}

// ratingsCacheKey is stable under roster reordering.
func ratingsCacheKey(groupID int64, playerIDs []int64) string {
	ids := make([]int64, len(playerIDs))
	copy(ids, playerIDs)
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return fmt.Sprintf("ratings:%d:%s", groupID, strings.Join(parts, ","))
}
