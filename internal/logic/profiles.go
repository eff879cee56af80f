package logic

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/pitchside/teams-api/internal/models"
)

type profileStore struct {
	pg PgPool
}

// NewProfilesService creates the attribute profile service backed by
// Postgres.
func NewProfilesService(pg PgPool) ProfilesService {
	return &profileStore{pg: pg}
}

// PlayerAttributes returns the member's profile, or a nil Attributes field
// when none has been saved. A user outside the group is ErrNotFound.
func (s *profileStore) PlayerAttributes(ctx context.Context, groupID, userID int64) (*PlayerProfile, error) {
	name, err := s.memberName(ctx, groupID, userID)
	if err != nil {
		return nil, err
	}

	profile, err := fetchProfile(ctx, s.pg, groupID, userID)
	if err != nil {
		return nil, fmt.Errorf("player attributes: %w", err)
	}
	return &PlayerProfile{PlayerName: name, Attributes: profile}, nil
}

// SavePlayerAttributes upserts the member's full profile in one statement.
func (s *profileStore) SavePlayerAttributes(ctx context.Context, groupID, userID, updatedBy int64, req *models.UpdateAttributesRequest) error {
	if _, err := s.memberName(ctx, groupID, userID); err != nil {
		return err
	}

	query := `
		INSERT INTO player_attributes (
			user_id, group_id,
			pace, stamina, strength, agility, jumping,
			ball_control, dribbling, passing, shooting, crossing, free_kicks,
			positioning, marking, tackling, interceptions, vision, decision_making,
			composure, concentration, determination, leadership, teamwork,
			goalkeeping, handling, distribution, aerial_reach,
			preferred_position, notes, last_updated_by, updated_at
		) VALUES (
			$1, $2,
			$3, $4, $5, $6, $7,
			$8, $9, $10, $11, $12, $13,
			$14, $15, $16, $17, $18, $19,
			$20, $21, $22, $23, $24,
			$25, $26, $27, $28,
			$29, $30, $31, now()
		)
		ON CONFLICT (user_id, group_id) DO UPDATE SET
			pace = EXCLUDED.pace, stamina = EXCLUDED.stamina,
			strength = EXCLUDED.strength, agility = EXCLUDED.agility,
			jumping = EXCLUDED.jumping, ball_control = EXCLUDED.ball_control,
			dribbling = EXCLUDED.dribbling, passing = EXCLUDED.passing,
			shooting = EXCLUDED.shooting, crossing = EXCLUDED.crossing,
			free_kicks = EXCLUDED.free_kicks, positioning = EXCLUDED.positioning,
			marking = EXCLUDED.marking, tackling = EXCLUDED.tackling,
			interceptions = EXCLUDED.interceptions, vision = EXCLUDED.vision,
			decision_making = EXCLUDED.decision_making, composure = EXCLUDED.composure,
			concentration = EXCLUDED.concentration, determination = EXCLUDED.determination,
			leadership = EXCLUDED.leadership, teamwork = EXCLUDED.teamwork,
			goalkeeping = EXCLUDED.goalkeeping, handling = EXCLUDED.handling,
			distribution = EXCLUDED.distribution, aerial_reach = EXCLUDED.aerial_reach,
			preferred_position = EXCLUDED.preferred_position, notes = EXCLUDED.notes,
			last_updated_by = EXCLUDED.last_updated_by, updated_at = now()
	`
	_, err := s.pg.Exec(ctx, query,
		userID, groupID,
		req.Pace, req.Stamina, req.Strength, req.Agility, req.Jumping,
		req.BallControl, req.Dribbling, req.Passing, req.Shooting, req.Crossing, req.FreeKicks,
		req.Positioning, req.Marking, req.Tackling, req.Interceptions, req.Vision, req.DecisionMaking,
		req.Composure, req.Concentration, req.Determination, req.Leadership, req.Teamwork,
		req.Goalkeeping, req.Handling, req.Distribution, req.AerialReach,
		string(req.PreferredPosition), req.Notes, updatedBy,
	)
	if err != nil {
		return fmt.Errorf("save player attributes: %w", err)
	}
	return nil
}

func (s *profileStore) memberName(ctx context.Context, groupID, userID int64) (string, error) {
	var name string
	err := s.pg.QueryRow(ctx,
		`SELECT display_name FROM group_members WHERE group_id = $1 AND user_id = $2`,
		groupID, userID).Scan(&name)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("member lookup: %w", err)
	}
	return name, nil
}

// fetchProfile loads one member's profile; a missing row is a nil profile,
// not an error.
func fetchProfile(ctx context.Context, pg PgPool, groupID, userID int64) (*models.AttributeProfile, error) {
	query := `
		SELECT user_id, group_id,
			pace, stamina, strength, agility, jumping,
			ball_control, dribbling, passing, shooting, crossing, free_kicks,
			positioning, marking, tackling, interceptions, vision, decision_making,
			composure, concentration, determination, leadership, teamwork,
			goalkeeping, handling, distribution, aerial_reach,
			preferred_position, notes, updated_at
		FROM player_attributes
		WHERE group_id = $1 AND user_id = $2
	`
	p := &models.AttributeProfile{}
	var position string
	err := pg.QueryRow(ctx, query, groupID, userID).Scan(
		&p.UserID, &p.GroupID,
		&p.Pace, &p.Stamina, &p.Strength, &p.Agility, &p.Jumping,
		&p.BallControl, &p.Dribbling, &p.Passing, &p.Shooting, &p.Crossing, &p.FreeKicks,
		&p.Positioning, &p.Marking, &p.Tackling, &p.Interceptions, &p.Vision, &p.DecisionMaking,
		&p.Composure, &p.Concentration, &p.Determination, &p.Leadership, &p.Teamwork,
		&p.Goalkeeping, &p.Handling, &p.Distribution, &p.AerialReach,
		&position, &p.Notes, &p.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	p.PreferredPosition = models.Position(position)
	return p, nil
}

// fetchProfiles loads every attribute profile for the group keyed by user id.
// Players without a row are simply absent; the balance package reads a
// missing profile as neutral.
func fetchProfiles(ctx context.Context, pg PgPool, groupID int64) (map[int64]*models.AttributeProfile, error) {
	query := `
		SELECT user_id, group_id,
			pace, stamina, strength, agility, jumping,
			ball_control, dribbling, passing, shooting, crossing, free_kicks,
			positioning, marking, tackling, interceptions, vision, decision_making,
			composure, concentration, determination, leadership, teamwork,
			goalkeeping, handling, distribution, aerial_reach,
			preferred_position, notes, updated_at
		FROM player_attributes
		WHERE group_id = $1
	`
	rows, err := pg.Query(ctx, query, groupID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	profiles := make(map[int64]*models.AttributeProfile)
	for rows.Next() {
		p := &models.AttributeProfile{}
		var position string
		if err := rows.Scan(
			&p.UserID, &p.GroupID,
			&p.Pace, &p.Stamina, &p.Strength, &p.Agility, &p.Jumping,
			&p.BallControl, &p.Dribbling, &p.Passing, &p.Shooting, &p.Crossing, &p.FreeKicks,
			&p.Positioning, &p.Marking, &p.Tackling, &p.Interceptions, &p.Vision, &p.DecisionMaking,
			&p.Composure, &p.Concentration, &p.Determination, &p.Leadership, &p.Teamwork,
			&p.Goalkeeping, &p.Handling, &p.Distribution, &p.AerialReach,
			&position, &p.Notes, &p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		p.PreferredPosition = models.Position(position)
		profiles[p.UserID] = p
	}
	return profiles, rows.Err()
}
