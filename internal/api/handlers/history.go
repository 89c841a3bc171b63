package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"fitai/internal/app"
	"fitai/internal/logger"
	"fitai/internal/repository/db"
	fitnessService "fitai/internal/service/fitness"
)

// HistoryHandlers serves the workout history endpoints
type HistoryHandlers struct {
	fitness *fitnessService.Service
}

// NewHistoryHandlers creates history handlers
func NewHistoryHandlers(config *app.Config) *HistoryHandlers {
	return &HistoryHandlers{fitness: config.Fitness}
}

// ListHistoryHandler returns a page of the user's completed workouts
func (h *HistoryHandlers) ListHistoryHandler(w http.ResponseWriter, r *http.Request) {
	skip, limit := pagination(r)
	history, err := h.fitness.ListHistory(currentUser(r).ID, skip, limit)
	if err != nil {
		sendError(w, http.StatusInternalServerError, "Error retrieving history", nil)
		return
	}
	if history == nil {
		history = []db.WorkoutHistory{}
	}
	respondJSON(w, http.StatusOK, history)
}

// CreateHistoryHandler records a manually reported session
func (h *HistoryHandlers) CreateHistoryHandler(w http.ResponseWriter, r *http.Request) {
	var req fitnessService.HistoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.SessionDuration < 0 {
		sendError(w, http.StatusBadRequest, "session_duration cannot be negative", nil)
		return
	}

	entry, err := h.fitness.CreateHistory(currentUser(r).ID, req)
	if err != nil {
		switch {
		case errors.Is(err, fitnessService.ErrForbidden):
			sendError(w, http.StatusForbidden, "Cannot record workouts for another user", nil)
		case errors.Is(err, db.ErrNotFound):
			sendError(w, http.StatusNotFound, "Workout plan not found", nil)
		default:
			logger.Log.WithField("error", err.Error()).Error("History creation failed")
			sendError(w, http.StatusInternalServerError, "Error recording workout", nil)
		}
		return
	}
	respondJSON(w, http.StatusCreated, entry)
}

// ClearHistoryHandler removes all of the user's history
func (h *HistoryHandlers) ClearHistoryHandler(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.fitness.ClearHistory(currentUser(r).ID)
	if err != nil {
		sendError(w, http.StatusInternalServerError, "Error clearing history", nil)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{
		"detail": fmt.Sprintf("Deleted %d history entries", deleted),
	})
}
