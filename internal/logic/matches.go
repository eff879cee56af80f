package logic

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"golang.org/x/sync/errgroup"

	"github.com/pitchside/teams-api/internal/models"
)

// matchStore assembles finished MatchRecords for a group: team assignments
// and dates live in Postgres, the goal events live in ClickHouse. Scores are
// derived from the events with own goals credited to the opposing side.
type matchStore struct {
	pg PgPool
	ch driver.Conn
}

type playerTotals struct {
	goals    int
	ownGoals int
	assists  int
}

// FinishedMatches returns the group's finished games most recent first.
// limit <= 0 returns all of them.
func (s *matchStore) FinishedMatches(ctx context.Context, groupID int64, limit int) ([]models.MatchRecord, error) {
	var (
		records []models.MatchRecord
		totals  map[int64]map[int64]*playerTotals
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		records, err = s.fetchAssignments(gctx, groupID, limit)
		return err
	})
	g.Go(func() error {
		var err error
		totals, err = s.fetchEventTotals(gctx, groupID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i := range records {
		rec := &records[i]
		perPlayer := totals[rec.GameID]
		for j := range rec.Lines {
			line := &rec.Lines[j]
			if t, ok := perPlayer[line.UserID]; ok {
				line.Goals = t.goals
				line.OwnGoals = t.ownGoals
				line.Assists = t.assists
			}
			switch line.Team {
			case models.TeamA:
				rec.ScoreA += line.Goals
				rec.ScoreB += line.OwnGoals
			case models.TeamB:
				rec.ScoreB += line.Goals
				rec.ScoreA += line.OwnGoals
			}
		}
	}

	return records, nil
}

// fetchAssignments loads finished games with their team assignments as
// MatchRecords with empty lines, most recent first.
func (s *matchStore) fetchAssignments(ctx context.Context, groupID int64, limit int) ([]models.MatchRecord, error) {
	query := `
		SELECT g.id, COALESCE(g.ended_at, g.scheduled_at) AS played_at, ta.user_id, ta.team
		FROM games g
		JOIN team_assignments ta ON ta.game_id = g.id
		WHERE g.group_id = $1 AND g.status = 'finished'
		ORDER BY played_at DESC, g.id DESC, ta.user_id
	`
	args := []any{groupID}
	if limit > 0 {
		query = `
			WITH recent AS (
				SELECT id, COALESCE(ended_at, scheduled_at) AS played_at
				FROM games
				WHERE group_id = $1 AND status = 'finished'
				ORDER BY played_at DESC, id DESC
				LIMIT $2
			)
			SELECT r.id, r.played_at, ta.user_id, ta.team
			FROM recent r
			JOIN team_assignments ta ON ta.game_id = r.id
			ORDER BY r.played_at DESC, r.id DESC, ta.user_id
		`
		args = append(args, limit)
	}

	rows, err := s.pg.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("finished games query: %w", err)
	}
	defer rows.Close()

	var (
		records []models.MatchRecord
		index   = make(map[int64]int)
	)
	for rows.Next() {
		var (
			gameID   int64
			playedAt time.Time
			userID   int64
			team     string
		)
		if err := rows.Scan(&gameID, &playedAt, &userID, &team); err != nil {
			return nil, fmt.Errorf("finished games scan: %w", err)
		}

		i, ok := index[gameID]
		if !ok {
			i = len(records)
			index[gameID] = i
			records = append(records, models.MatchRecord{GameID: gameID, PlayedAt: playedAt})
		}
		records[i].Lines = append(records[i].Lines, models.PlayerLine{
			UserID: userID,
			Team:   models.TeamSide(team),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("finished games rows: %w", err)
	}

	// Row order already has games most recent first; keep it explicit for
	// callers that index into the slice.
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].PlayedAt.After(records[j].PlayedAt)
	})
	return records, nil
}

// fetchEventTotals aggregates goals, own goals, and assists per game and
// player from the event stream.
func (s *matchStore) fetchEventTotals(ctx context.Context, groupID int64) (map[int64]map[int64]*playerTotals, error) {
	totals := make(map[int64]map[int64]*playerTotals)
	get := func(gameID, userID int64) *playerTotals {
		perPlayer, ok := totals[gameID]
		if !ok {
			perPlayer = make(map[int64]*playerTotals)
			totals[gameID] = perPlayer
		}
		t, ok := perPlayer[userID]
		if !ok {
			t = &playerTotals{}
			perPlayer[userID] = t
		}
		return t
	}

	scorerQuery := `
		SELECT game_id, scorer_id,
			countIf(event_type = 'goal') AS goals,
			countIf(event_type = 'own_goal') AS own_goals
		FROM pitchside.match_events
		WHERE group_id = ?
		GROUP BY game_id, scorer_id
	`
	rows, err := s.ch.Query(ctx, scorerQuery, groupID)
	if err != nil {
		return nil, fmt.Errorf("scorer totals query: %w", err)
	}
	for rows.Next() {
		var (
			gameID, scorerID int64
			goals, ownGoals  uint64
		)
		if err := rows.Scan(&gameID, &scorerID, &goals, &ownGoals); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scorer totals scan: %w", err)
		}
		t := get(gameID, scorerID)
		t.goals = int(goals)
		t.ownGoals = int(ownGoals)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scorer totals rows: %w", err)
	}

	assistQuery := `
		SELECT game_id, assist_id, count() AS assists
		FROM pitchside.match_events
		WHERE group_id = ? AND event_type = 'goal' AND assist_id != 0
		GROUP BY game_id, assist_id
	`
	rows, err = s.ch.Query(ctx, assistQuery, groupID)
	if err != nil {
		return nil, fmt.Errorf("assist totals query: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var (
			gameID, assistID int64
			assists          uint64
		)
		if err := rows.Scan(&gameID, &assistID, &assists); err != nil {
			return nil, fmt.Errorf("assist totals scan: %w", err)
		}
		get(gameID, assistID).assists = int(assists)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("assist totals rows: %w", err)
	}

	return totals, nil
}
