package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/pitchside/teams-api/internal/balance"
	"github.com/pitchside/teams-api/internal/models"
)

// BalanceGame handles POST /api/v1/games/{gameID}/balance
// @Summary Balance Teams
// @Description Splits the available players into two balanced teams
// @Tags Games
// @Accept json
// @Produce json
// @Param gameID path int true "Game ID"
// @Param body body models.BalanceRequest false "Algorithm selection"
// @Success 200 {object} models.BalanceResult
// @Failure 400 {object} map[string]string "Fewer than two available players"
// @Failure 404 {object} map[string]string "Unknown game"
// @Router /games/{gameID}/balance [post]
func (h *Handler) BalanceGame(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	gameID, err := urlID(r, "gameID")
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid game id")
		return
	}

	var req models.BalanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		h.errorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	game, err := h.games.GetGame(ctx, gameID)
	if err != nil {
		h.serviceError(w, err, "balance.get_game")
		return
	}

	pool, _, err := h.games.BalancePool(ctx, game.GroupID, gameID)
	if err != nil {
		h.serviceError(w, err, "balance.pool")
		return
	}
	if len(pool) < 2 {
		h.errorResponse(w, http.StatusBadRequest, "At least two available players are required")
		return
	}

	rc, err := h.snapshot.BuildRatingsContext(ctx, game.GroupID, gameID, pool)
	if err != nil {
		h.serviceError(w, err, "balance.snapshot")
		return
	}

	alg := balance.ParseAlgorithm(req.Algorithm)
	result := balance.New(alg, h.rng).Optimize(pool, rc)

	resp := models.BalanceResult{
		TeamA:        result.Split.TeamA,
		TeamB:        result.Split.TeamB,
		Method:       result.Method,
		FitnessScore: &result.Fitness,
		TeamARatings: balance.LineRatings(result.Split.TeamA, rc),
		TeamBRatings: balance.LineRatings(result.Split.TeamB, rc),
	}
	// The single-pass draft has no iteration count worth reporting.
	if result.Iterations > 0 {
		resp.Iterations = &result.Iterations
	}

	h.logger.Infow("Teams balanced",
		"game_id", gameID,
		"algorithm", alg.Key(),
		"pool", len(pool),
		"fitness", result.Fitness,
	)
	h.jsonResponse(w, http.StatusOK, resp)
}

// RateTeams handles POST /api/v1/games/{gameID}/ratings
// @Summary Rate Rosters
// @Description Computes line ratings for two submitted rosters
// @Tags Games
// @Accept json
// @Produce json
// @Param gameID path int true "Game ID"
// @Param body body models.TeamRatingsRequest true "Rosters"
// @Success 200 {object} map[string]models.TeamRatings
// @Router /games/{gameID}/ratings [post]
func (h *Handler) RateTeams(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	gameID, err := urlID(r, "gameID")
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid game id")
		return
	}

	var req models.TeamRatingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	game, err := h.games.GetGame(ctx, gameID)
	if err != nil {
		h.serviceError(w, err, "ratings.get_game")
		return
	}

	teamA, err := h.teamRatings.TeamRatings(ctx, game.GroupID, req.TeamA)
	if err != nil {
		h.serviceError(w, err, "ratings.team_a")
		return
	}
	teamB, err := h.teamRatings.TeamRatings(ctx, game.GroupID, req.TeamB)
	if err != nil {
		h.serviceError(w, err, "ratings.team_b")
		return
	}

	h.jsonResponse(w, http.StatusOK, map[string]models.TeamRatings{
		"team_a_ratings": teamA,
		"team_b_ratings": teamB,
	})
}
