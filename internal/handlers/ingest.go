package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/pitchside/teams-api/internal/models"
)

// IngestEvents handles POST /api/v1/ingest/events
// @Summary Ingest Match Events
// @Description Accepts a JSON array of live match events for async recording
// @Tags Ingestion
// @Accept json
// @Produce json
// @Param body body []models.MatchEvent true "Events"
// @Success 202 {object} map[string]interface{} "Accepted"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 503 {object} map[string]interface{} "Queue full"
// @Router /ingest/events [post]
func (h *Handler) IngestEvents(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodySize)
	defer r.Body.Close()

	var events []models.MatchEvent
	if err := json.NewDecoder(r.Body).Decode(&events); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	processed := 0
	shed := false
	for i := range events {
		event := &events[i]

		if err := ValidateStruct(event); err != nil {
			h.logger.Warnw("Dropping invalid match event", "error", err, "type", event.Type)
			continue
		}
		// Own goals never carry an assist credit.
		if event.Type == models.EventOwnGoal {
			event.AssistID = 0
		}

		if !h.pool.Enqueue(event) {
			h.logger.Warn("Ingest queue full, shedding remaining events")
			shed = true
			break
		}
		processed++
	}

	status, text := http.StatusAccepted, "accepted"
	if shed {
		status, text = http.StatusServiceUnavailable, "queue_full"
	}
	h.jsonResponse(w, status, map[string]interface{}{
		"status":    text,
		"processed": processed,
		"dropped":   len(events) - processed,
	})
}
