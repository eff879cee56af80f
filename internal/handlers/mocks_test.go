package handlers

import (
	"context"

	"github.com/pitchside/teams-api/internal/balance"
	"github.com/pitchside/teams-api/internal/logic"
	"github.com/pitchside/teams-api/internal/models"
)

// MockSnapshotService
type MockSnapshotService struct {
	BuildFunc func(ctx context.Context, groupID, gameID int64, pool []models.Player) (*balance.RatingsContext, error)
}

func (m *MockSnapshotService) BuildRatingsContext(ctx context.Context, groupID, gameID int64, pool []models.Player) (*balance.RatingsContext, error) {
	if m.BuildFunc != nil {
		return m.BuildFunc(ctx, groupID, gameID, pool)
	}
	return balance.NewRatingsContext(groupID, pool, nil, nil, nil), nil
}

// MockTeamRatingsService
type MockTeamRatingsService struct {
	TeamRatingsFunc func(ctx context.Context, groupID int64, playerIDs []int64) (models.TeamRatings, error)
}

func (m *MockTeamRatingsService) TeamRatings(ctx context.Context, groupID int64, playerIDs []int64) (models.TeamRatings, error) {
	if m.TeamRatingsFunc != nil {
		return m.TeamRatingsFunc(ctx, groupID, playerIDs)
	}
	return models.TeamRatings{Attack: 5, Midfield: 5, Defense: 5, Pace: 5, Overall: 5}, nil
}

// MockProfilesService
type MockProfilesService struct {
	PlayerAttributesFunc     func(ctx context.Context, groupID, userID int64) (*logic.PlayerProfile, error)
	SavePlayerAttributesFunc func(ctx context.Context, groupID, userID, updatedBy int64, req *models.UpdateAttributesRequest) error
}

func (m *MockProfilesService) PlayerAttributes(ctx context.Context, groupID, userID int64) (*logic.PlayerProfile, error) {
	if m.PlayerAttributesFunc != nil {
		return m.PlayerAttributesFunc(ctx, groupID, userID)
	}
	return &logic.PlayerProfile{PlayerName: "Player"}, nil
}

func (m *MockProfilesService) SavePlayerAttributes(ctx context.Context, groupID, userID, updatedBy int64, req *models.UpdateAttributesRequest) error {
	if m.SavePlayerAttributesFunc != nil {
		return m.SavePlayerAttributesFunc(ctx, groupID, userID, updatedBy, req)
	}
	return nil
}

// MockLeaderboardService
type MockLeaderboardService struct {
	GroupLeaderboardFunc func(ctx context.Context, groupID int64) ([]models.LeaderboardEntry, error)
}

func (m *MockLeaderboardService) GroupLeaderboard(ctx context.Context, groupID int64) ([]models.LeaderboardEntry, error) {
	if m.GroupLeaderboardFunc != nil {
		return m.GroupLeaderboardFunc(ctx, groupID)
	}
	return nil, nil
}

// MockGamesService
type MockGamesService struct {
	GetGameFunc          func(ctx context.Context, gameID int64) (*models.Game, error)
	CreateGameFunc       func(ctx context.Context, groupID int64, req *models.CreateGameRequest) (*models.Game, error)
	BalancePoolFunc      func(ctx context.Context, groupID, gameID int64) ([]models.Player, map[int64]bool, error)
	SaveAvailabilityFunc func(ctx context.Context, gameID, userID int64, status models.AvailabilityStatus) error
	LockPollFunc         func(ctx context.Context, gameID int64) error
	PublishTeamsFunc     func(ctx context.Context, gameID int64, teamA, teamB []int64) error
	StartGameFunc        func(ctx context.Context, gameID int64) error
	EndGameFunc          func(ctx context.Context, gameID int64) error
	GroupMembersFunc     func(ctx context.Context, groupID int64) ([]models.Player, error)
	FinishedMatchesFunc  func(ctx context.Context, groupID int64, limit int) ([]models.MatchRecord, error)
}

func (m *MockGamesService) GetGame(ctx context.Context, gameID int64) (*models.Game, error) {
	if m.GetGameFunc != nil {
		return m.GetGameFunc(ctx, gameID)
	}
	return &models.Game{ID: gameID, GroupID: 1, Status: models.GameUpcoming}, nil
}

func (m *MockGamesService) CreateGame(ctx context.Context, groupID int64, req *models.CreateGameRequest) (*models.Game, error) {
	if m.CreateGameFunc != nil {
		return m.CreateGameFunc(ctx, groupID, req)
	}
	return &models.Game{ID: 1, GroupID: groupID, Status: models.GameUpcoming}, nil
}

func (m *MockGamesService) BalancePool(ctx context.Context, groupID, gameID int64) ([]models.Player, map[int64]bool, error) {
	if m.BalancePoolFunc != nil {
		return m.BalancePoolFunc(ctx, groupID, gameID)
	}
	return nil, nil, nil
}

func (m *MockGamesService) SaveAvailability(ctx context.Context, gameID, userID int64, status models.AvailabilityStatus) error {
	if m.SaveAvailabilityFunc != nil {
		return m.SaveAvailabilityFunc(ctx, gameID, userID, status)
	}
	return nil
}

func (m *MockGamesService) LockPoll(ctx context.Context, gameID int64) error {
	if m.LockPollFunc != nil {
		return m.LockPollFunc(ctx, gameID)
	}
	return nil
}

func (m *MockGamesService) PublishTeams(ctx context.Context, gameID int64, teamA, teamB []int64) error {
	if m.PublishTeamsFunc != nil {
		return m.PublishTeamsFunc(ctx, gameID, teamA, teamB)
	}
	return nil
}

func (m *MockGamesService) StartGame(ctx context.Context, gameID int64) error {
	if m.StartGameFunc != nil {
		return m.StartGameFunc(ctx, gameID)
	}
	return nil
}

func (m *MockGamesService) EndGame(ctx context.Context, gameID int64) error {
	if m.EndGameFunc != nil {
		return m.EndGameFunc(ctx, gameID)
	}
	return nil
}

func (m *MockGamesService) GroupMembers(ctx context.Context, groupID int64) ([]models.Player, error) {
	if m.GroupMembersFunc != nil {
		return m.GroupMembersFunc(ctx, groupID)
	}
	return nil, nil
}

func (m *MockGamesService) FinishedMatches(ctx context.Context, groupID int64, limit int) ([]models.MatchRecord, error) {
	if m.FinishedMatchesFunc != nil {
		return m.FinishedMatchesFunc(ctx, groupID, limit)
	}
	return nil, nil
}

// MockIngestQueue
type MockIngestQueue struct {
	EnqueueFunc func(event *models.MatchEvent) bool
	Enqueued    []*models.MatchEvent
}

func (m *MockIngestQueue) Enqueue(event *models.MatchEvent) bool {
	if m.EnqueueFunc != nil && !m.EnqueueFunc(event) {
		return false
	}
	m.Enqueued = append(m.Enqueued, event)
	return true
}

func (m *MockIngestQueue) QueueDepth() int {
	return len(m.Enqueued)
}
