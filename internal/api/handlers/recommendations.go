package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"fitai/internal/app"
	"fitai/internal/logger"
	"fitai/internal/repository/db"
	fitnessService "fitai/internal/service/fitness"
	"fitai/pkg/validation"
)

// RecommendationHandlers serves the exercise recommendation endpoints
type RecommendationHandlers struct {
	fitness   *fitnessService.Service
	validator *validation.FitnessRequestValidator
}

// NewRecommendationHandlers creates recommendation handlers
func NewRecommendationHandlers(config *app.Config) *RecommendationHandlers {
	return &RecommendationHandlers{
		fitness:   config.Fitness,
		validator: validation.NewFitnessRequestValidator(),
	}
}

// ListRecommendationsHandler returns a page of the user's recommendations
func (h *RecommendationHandlers) ListRecommendationsHandler(w http.ResponseWriter, r *http.Request) {
	skip, limit := pagination(r)
	recs, err := h.fitness.ListRecommendations(currentUser(r).ID, skip, limit)
	if err != nil {
		sendError(w, http.StatusInternalServerError, "Error retrieving recommendations", nil)
		return
	}
	if recs == nil {
		recs = []db.ExerciseRecommendation{}
	}
	respondJSON(w, http.StatusOK, recs)
}

// CreateRecommendationHandler generates advice for a described limitation
func (h *RecommendationHandlers) CreateRecommendationHandler(w http.ResponseWriter, r *http.Request) {
	var req fitnessService.RecommendationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if err := h.validator.ValidateRecommendationRequest(req.UserLimitations); err != nil {
		sendError(w, http.StatusBadRequest, "Validation failed", err)
		return
	}

	rec, err := h.fitness.CreateRecommendation(r.Context(), currentUser(r).ID, req)
	if err != nil {
		logger.Log.WithField("error", err.Error()).Error("Recommendation creation failed")
		sendError(w, http.StatusInternalServerError, "Error creating recommendation", nil)
		return
	}
	respondJSON(w, http.StatusCreated, rec)
}

// DeleteRecommendationHandler removes a recommendation
func (h *RecommendationHandlers) DeleteRecommendationHandler(w http.ResponseWriter, r *http.Request) {
	recID, err := pathID(r, "id")
	if err != nil {
		sendError(w, http.StatusBadRequest, "Invalid recommendation id", nil)
		return
	}

	if err := h.fitness.DeleteRecommendation(currentUser(r).ID, recID); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			sendError(w, http.StatusNotFound, "Recommendation not found", nil)
			return
		}
		sendError(w, http.StatusInternalServerError, "Error deleting recommendation", nil)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"detail": "Recommendation deleted"})
}
