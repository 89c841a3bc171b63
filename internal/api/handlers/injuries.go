package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"fitai/internal/app"
	"fitai/internal/logger"
	"fitai/internal/repository/db"
	fitnessService "fitai/internal/service/fitness"
)

// InjuryHandlers serves the injury risk analysis endpoints
type InjuryHandlers struct {
	fitness *fitnessService.Service
}

// NewInjuryHandlers creates injury handlers
func NewInjuryHandlers(config *app.Config) *InjuryHandlers {
	return &InjuryHandlers{fitness: config.Fitness}
}

// ListPredictionsHandler returns a page of the user's risk assessments
func (h *InjuryHandlers) ListPredictionsHandler(w http.ResponseWriter, r *http.Request) {
	skip, limit := pagination(r)
	predictions, err := h.fitness.ListPredictions(currentUser(r).ID, skip, limit)
	if err != nil {
		sendError(w, http.StatusInternalServerError, "Error retrieving predictions", nil)
		return
	}
	if predictions == nil {
		predictions = []db.InjuryPrediction{}
	}
	respondJSON(w, http.StatusOK, predictions)
}

// AnalyzeHandler runs a risk analysis and stores the result
func (h *InjuryHandlers) AnalyzeHandler(w http.ResponseWriter, r *http.Request) {
	var req fitnessService.AnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	prediction, err := h.fitness.AnalyzeInjuryRisk(r.Context(), currentUser(r).ID, req)
	if err != nil {
		switch {
		case errors.Is(err, fitnessService.ErrAnalysisInput):
			sendError(w, http.StatusBadRequest, "Specify a workout plan or describe exercises to analyze", nil)
		case errors.Is(err, fitnessService.ErrForbidden):
			sendError(w, http.StatusForbidden, "No access to this workout plan", nil)
		case errors.Is(err, db.ErrNotFound):
			sendError(w, http.StatusNotFound, "Workout plan not found", nil)
		default:
			logger.Log.WithField("error", err.Error()).Error("Risk analysis failed")
			sendError(w, http.StatusInternalServerError, "Error analyzing injury risk", nil)
		}
		return
	}
	respondJSON(w, http.StatusCreated, prediction)
}

// DeletePredictionHandler removes a risk assessment
func (h *InjuryHandlers) DeletePredictionHandler(w http.ResponseWriter, r *http.Request) {
	predictionID, err := pathID(r, "id")
	if err != nil {
		sendError(w, http.StatusBadRequest, "Invalid prediction id", nil)
		return
	}

	if err := h.fitness.DeletePrediction(currentUser(r).ID, predictionID); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			sendError(w, http.StatusNotFound, "Prediction not found", nil)
			return
		}
		sendError(w, http.StatusInternalServerError, "Error deleting prediction", nil)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"detail": "Prediction deleted"})
}
