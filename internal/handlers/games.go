package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/pitchside/teams-api/internal/models"
)

// GetGame handles GET /api/v1/games/{gameID}
func (h *Handler) GetGame(w http.ResponseWriter, r *http.Request) {
	gameID, err := urlID(r, "gameID")
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid game id")
		return
	}

	game, err := h.games.GetGame(r.Context(), gameID)
	if err != nil {
		h.serviceError(w, err, "games.get")
		return
	}
	h.jsonResponse(w, http.StatusOK, game)
}

// CreateGame handles POST /api/v1/groups/{groupID}/games
// @Summary Schedule Game
// @Tags Games
// @Accept json
// @Produce json
// @Param groupID path int true "Group ID"
// @Param body body models.CreateGameRequest true "Game"
// @Success 201 {object} models.Game
// @Router /groups/{groupID}/games [post]
func (h *Handler) CreateGame(w http.ResponseWriter, r *http.Request) {
	groupID, err := urlID(r, "groupID")
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid group id")
		return
	}

	var req models.CreateGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if err := ValidateStruct(&req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	game, err := h.games.CreateGame(r.Context(), groupID, &req)
	if err != nil {
		h.serviceError(w, err, "games.create")
		return
	}

	h.logger.Infow("Game created", "game_id", game.ID, "group_id", groupID)
	h.jsonResponse(w, http.StatusCreated, game)
}

// Vote handles POST /api/v1/games/{gameID}/availability
// @Summary Availability Vote
// @Tags Games
// @Accept json
// @Produce json
// @Param gameID path int true "Game ID"
// @Param body body models.VoteRequest true "Vote"
// @Success 200 {object} map[string]string
// @Failure 409 {object} map[string]string "Poll locked"
// @Router /games/{gameID}/availability [post]
func (h *Handler) Vote(w http.ResponseWriter, r *http.Request) {
	gameID, err := urlID(r, "gameID")
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid game id")
		return
	}
	userID, err := requestUserID(r)
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Missing X-User-ID header")
		return
	}

	var req models.VoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if err := ValidateStruct(&req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	if err := h.games.SaveAvailability(r.Context(), gameID, userID, req.Status); err != nil {
		h.serviceError(w, err, "games.vote")
		return
	}
	h.jsonResponse(w, http.StatusOK, map[string]string{"status": string(req.Status)})
}

// LockPoll handles POST /api/v1/games/{gameID}/lock-poll
func (h *Handler) LockPoll(w http.ResponseWriter, r *http.Request) {
	gameID, err := urlID(r, "gameID")
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid game id")
		return
	}

	if err := h.games.LockPoll(r.Context(), gameID); err != nil {
		h.serviceError(w, err, "games.lock_poll")
		return
	}
	h.jsonResponse(w, http.StatusOK, map[string]string{"status": "locked"})
}

// PublishTeams handles POST /api/v1/games/{gameID}/teams
// @Summary Publish Teams
// @Tags Games
// @Accept json
// @Produce json
// @Param gameID path int true "Game ID"
// @Param body body models.PublishTeamsRequest true "Rosters"
// @Success 200 {object} map[string]string
// @Router /games/{gameID}/teams [post]
func (h *Handler) PublishTeams(w http.ResponseWriter, r *http.Request) {
	gameID, err := urlID(r, "gameID")
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid game id")
		return
	}

	var req models.PublishTeamsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if err := ValidateStruct(&req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	if err := h.games.PublishTeams(r.Context(), gameID, req.TeamA, req.TeamB); err != nil {
		h.serviceError(w, err, "games.publish_teams")
		return
	}

	h.logger.Infow("Teams published", "game_id", gameID,
		"team_a", len(req.TeamA), "team_b", len(req.TeamB))
	h.jsonResponse(w, http.StatusOK, map[string]string{"status": "published"})
}

// StartGame handles POST /api/v1/games/{gameID}/start
func (h *Handler) StartGame(w http.ResponseWriter, r *http.Request) {
	gameID, err := urlID(r, "gameID")
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid game id")
		return
	}

	if err := h.games.StartGame(r.Context(), gameID); err != nil {
		h.serviceError(w, err, "games.start")
		return
	}
	h.jsonResponse(w, http.StatusOK, map[string]string{"status": string(models.GameLive)})
}

// EndGame handles POST /api/v1/games/{gameID}/end
func (h *Handler) EndGame(w http.ResponseWriter, r *http.Request) {
	gameID, err := urlID(r, "gameID")
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid game id")
		return
	}

	if err := h.games.EndGame(r.Context(), gameID); err != nil {
		h.serviceError(w, err, "games.end")
		return
	}
	h.jsonResponse(w, http.StatusOK, map[string]string{"status": string(models.GameFinished)})
}
