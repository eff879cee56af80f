package logic

import (
	"context"
	"fmt"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"golang.org/x/sync/errgroup"

	"github.com/pitchside/teams-api/internal/balance"
	"github.com/pitchside/teams-api/internal/models"
)

type snapshotService struct {
	pg      PgPool
	matches *matchStore
}

func NewSnapshotService(pg PgPool, ch driver.Conn) SnapshotService {
	return &snapshotService{
		pg:      pg,
		matches: &matchStore{pg: pg, ch: ch},
	}
}

// BuildRatingsContext bulk-fetches everything the balancing engine needs for
// one run: attribute profiles, finished match history, and the availability
// votes for the game. The three fetches run in parallel; the engine then
// operates on the merged snapshot without touching the stores again.
func (s *snapshotService) BuildRatingsContext(ctx context.Context, groupID, gameID int64, pool []models.Player) (*balance.RatingsContext, error) {
	var (
		profiles map[int64]*models.AttributeProfile
		matches  []models.MatchRecord
		votedIn  map[int64]bool
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		if profiles, err = fetchProfiles(gctx, s.pg, groupID); err != nil {
			return fmt.Errorf("attribute profiles: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		if matches, err = s.matches.FinishedMatches(gctx, groupID, 0); err != nil {
			return fmt.Errorf("match history: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		if votedIn, err = s.fetchVotedIn(gctx, gameID); err != nil {
			return fmt.Errorf("availability votes: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return balance.NewRatingsContext(groupID, pool, profiles, matches, votedIn), nil
}

func (s *snapshotService) fetchVotedIn(ctx context.Context, gameID int64) (map[int64]bool, error) {
	rows, err := s.pg.Query(ctx,
		`SELECT user_id FROM availability_votes WHERE game_id = $1 AND status = 'in'`,
		gameID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	votedIn := make(map[int64]bool)
	for rows.Next() {
		var userID int64
		if err := rows.Scan(&userID); err != nil {
			return nil, err
		}
		votedIn[userID] = true
	}
	return votedIn, rows.Err()
}
