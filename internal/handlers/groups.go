package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/pitchside/teams-api/internal/models"
)

// GroupMembers handles GET /api/v1/groups/{groupID}/members
func (h *Handler) GroupMembers(w http.ResponseWriter, r *http.Request) {
	groupID, err := urlID(r, "groupID")
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid group id")
		return
	}

	members, err := h.games.GroupMembers(r.Context(), groupID)
	if err != nil {
		h.serviceError(w, err, "groups.members")
		return
	}
	if members == nil {
		members = []models.Player{}
	}
	h.jsonResponse(w, http.StatusOK, members)
}

// GroupLeaderboard handles GET /api/v1/groups/{groupID}/leaderboard
// @Summary Group Leaderboard
// @Tags Groups
// @Produce json
// @Param groupID path int true "Group ID"
// @Success 200 {array} models.LeaderboardEntry
// @Router /groups/{groupID}/leaderboard [get]
func (h *Handler) GroupLeaderboard(w http.ResponseWriter, r *http.Request) {
	groupID, err := urlID(r, "groupID")
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid group id")
		return
	}

	entries, err := h.leaderboard.GroupLeaderboard(r.Context(), groupID)
	if err != nil {
		h.serviceError(w, err, "groups.leaderboard")
		return
	}
	if entries == nil {
		entries = []models.LeaderboardEntry{}
	}
	h.jsonResponse(w, http.StatusOK, entries)
}

// GetPlayerAttributes handles GET /api/v1/groups/{groupID}/players/{userID}/attributes
// @Summary Player Attributes
// @Tags Groups
// @Produce json
// @Param groupID path int true "Group ID"
// @Param userID path int true "User ID"
// @Success 200 {object} logic.PlayerProfile
// @Failure 404 {object} map[string]string "User is not a group member"
// @Router /groups/{groupID}/players/{userID}/attributes [get]
func (h *Handler) GetPlayerAttributes(w http.ResponseWriter, r *http.Request) {
	groupID, err := urlID(r, "groupID")
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid group id")
		return
	}
	userID, err := urlID(r, "userID")
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	profile, err := h.profiles.PlayerAttributes(r.Context(), groupID, userID)
	if err != nil {
		h.serviceError(w, err, "groups.player_attributes")
		return
	}
	h.jsonResponse(w, http.StatusOK, profile)
}

// UpdatePlayerAttributes handles POST /api/v1/groups/{groupID}/players/{userID}/attributes
// @Summary Update Player Attributes
// @Tags Groups
// @Accept json
// @Produce json
// @Param groupID path int true "Group ID"
// @Param userID path int true "User ID"
// @Param body body models.UpdateAttributesRequest true "Attributes"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string "Attribute out of the 1-10 range"
// @Router /groups/{groupID}/players/{userID}/attributes [post]
func (h *Handler) UpdatePlayerAttributes(w http.ResponseWriter, r *http.Request) {
	groupID, err := urlID(r, "groupID")
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid group id")
		return
	}
	userID, err := urlID(r, "userID")
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid user id")
		return
	}
	updatedBy, err := requestUserID(r)
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Missing X-User-ID header")
		return
	}

	// Omitted fields keep the neutral defaults rather than zeroing out.
	req := models.NewUpdateAttributesRequest()
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if err := ValidateStruct(&req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	if err := h.profiles.SavePlayerAttributes(r.Context(), groupID, userID, updatedBy, &req); err != nil {
		h.serviceError(w, err, "groups.update_attributes")
		return
	}

	h.logger.Infow("Player attributes updated",
		"group_id", groupID, "user_id", userID, "updated_by", updatedBy)
	h.jsonResponse(w, http.StatusOK, map[string]string{"status": "updated"})
}

// RecentMatches handles GET /api/v1/groups/{groupID}/matches?limit=N
func (h *Handler) RecentMatches(w http.ResponseWriter, r *http.Request) {
	groupID, err := urlID(r, "groupID")
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid group id")
		return
	}

	limit := 10
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	matches, err := h.games.FinishedMatches(r.Context(), groupID, limit)
	if err != nil {
		h.serviceError(w, err, "groups.matches")
		return
	}
	if matches == nil {
		matches = []models.MatchRecord{}
	}
	h.jsonResponse(w, http.StatusOK, matches)
}
