package handlers

import (
	"math/rand"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/pitchside/teams-api/internal/logic"
	"github.com/pitchside/teams-api/internal/models"
)

// MaxBodySize limits the size of request bodies to 1MB
const MaxBodySize = 1048576

// IngestQueue defines the interface for the event ingestion worker pool
type IngestQueue interface {
	Enqueue(event *models.MatchEvent) bool
	QueueDepth() int
}

var validate = validator.New()

// ValidateStruct runs the shared validator over a request payload.
func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

type Config struct {
	WorkerPool IngestQueue
	Postgres   *pgxpool.Pool
	ClickHouse driver.Conn
	Redis      *redis.Client
	Logger     *zap.Logger
	// Services
	Snapshot    logic.SnapshotService
	TeamRatings logic.TeamRatingsService
	Leaderboard logic.LeaderboardService
	Games       logic.GamesService
	Profiles    logic.ProfilesService
	// RNG seeds the balancing optimizers; nil means time-seeded.
	RNG *rand.Rand
}

type Handler struct {
	pool        IngestQueue
	pg          *pgxpool.Pool
	ch          driver.Conn
	redis       *redis.Client
	logger      *zap.SugaredLogger
	snapshot    logic.SnapshotService
	teamRatings logic.TeamRatingsService
	leaderboard logic.LeaderboardService
	games       logic.GamesService
	profiles    logic.ProfilesService
	rng         *rand.Rand
}

func New(cfg Config) *Handler {
	return &Handler{
		pool:        cfg.WorkerPool,
		pg:          cfg.Postgres,
		ch:          cfg.ClickHouse,
		redis:       cfg.Redis,
		logger:      cfg.Logger.Sugar(),
		snapshot:    cfg.Snapshot,
		teamRatings: cfg.TeamRatings,
		leaderboard: cfg.Leaderboard,
		games:       cfg.Games,
		profiles:    cfg.Profiles,
		rng:         cfg.RNG,
	}
}

// Routes mounts every API endpoint on a chi router.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", h.Health)
	r.Get("/readyz", h.Ready)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/groups/{groupID}", func(r chi.Router) {
			r.Get("/members", h.GroupMembers)
			r.Get("/leaderboard", h.GroupLeaderboard)
			r.Get("/matches", h.RecentMatches)
			r.Post("/games", h.CreateGame)

			r.Route("/players/{userID}/attributes", func(r chi.Router) {
				r.Get("/", h.GetPlayerAttributes)
				r.Post("/", h.UpdatePlayerAttributes)
			})
		})

		r.Route("/games/{gameID}", func(r chi.Router) {
			r.Get("/", h.GetGame)
			r.Post("/balance", h.BalanceGame)
			r.Post("/ratings", h.RateTeams)
			r.Post("/availability", h.Vote)
			r.Post("/lock-poll", h.LockPoll)
			r.Post("/teams", h.PublishTeams)
			r.Post("/start", h.StartGame)
			r.Post("/end", h.EndGame)
		})

		r.Post("/ingest/events", h.IngestEvents)
	})

	return r
}
