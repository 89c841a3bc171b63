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

// PlanHandlers serves the workout plan endpoints
type PlanHandlers struct {
	fitness   *fitnessService.Service
	validator *validation.FitnessRequestValidator
}

// NewPlanHandlers creates plan handlers from the application config
func NewPlanHandlers(config *app.Config) *PlanHandlers {
	return &PlanHandlers{
		fitness:   config.Fitness,
		validator: validation.NewFitnessRequestValidator(),
	}
}

// ListPlansHandler returns a page of the user's plans
func (h *PlanHandlers) ListPlansHandler(w http.ResponseWriter, r *http.Request) {
	skip, limit := pagination(r)
	plans, err := h.fitness.ListPlans(currentUser(r).ID, skip, limit)
	if err != nil {
		sendError(w, http.StatusInternalServerError, "Error retrieving workout plans", nil)
		return
	}
	if plans == nil {
		plans = []db.WorkoutPlan{}
	}
	respondJSON(w, http.StatusOK, plans)
}

// GetPlanHandler returns one plan
func (h *PlanHandlers) GetPlanHandler(w http.ResponseWriter, r *http.Request) {
	planID, err := pathID(r, "id")
	if err != nil {
		sendError(w, http.StatusBadRequest, "Invalid plan id", nil)
		return
	}

	plan, err := h.fitness.GetPlan(currentUser(r).ID, planID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			sendError(w, http.StatusNotFound, "Workout plan not found", nil)
			return
		}
		sendError(w, http.StatusInternalServerError, "Error retrieving workout plan", nil)
		return
	}
	respondJSON(w, http.StatusOK, plan)
}

// CreatePlanHandler generates and stores a new plan
func (h *PlanHandlers) CreatePlanHandler(w http.ResponseWriter, r *http.Request) {
	var req fitnessService.PlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if err := h.validator.ValidatePlanRequest(req.UserRequest, req.PlanType, req.Difficulty, req.DurationMinutes); err != nil {
		sendError(w, http.StatusBadRequest, "Validation failed", err)
		return
	}

	plan, err := h.fitness.CreatePlan(r.Context(), currentUser(r).ID, req)
	if err != nil {
		logger.Log.WithField("error", err.Error()).Error("Plan creation failed")
		sendError(w, http.StatusInternalServerError, "Error creating workout plan", nil)
		return
	}
	respondJSON(w, http.StatusCreated, plan)
}

type CompletePlanResponse struct {
	IsCompleted  bool               `json:"is_completed"`
	HistoryEntry *db.WorkoutHistory `json:"history_entry,omitempty"`
}

// CompletePlanHandler marks a plan done and records history
func (h *PlanHandlers) CompletePlanHandler(w http.ResponseWriter, r *http.Request) {
	planID, err := pathID(r, "id")
	if err != nil {
		sendError(w, http.StatusBadRequest, "Invalid plan id", nil)
		return
	}

	plan, entry, err := h.fitness.CompletePlan(currentUser(r).ID, planID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			sendError(w, http.StatusNotFound, "Workout plan not found", nil)
			return
		}
		sendError(w, http.StatusInternalServerError, "Error completing workout plan", nil)
		return
	}
	respondJSON(w, http.StatusOK, CompletePlanResponse{
		IsCompleted:  plan.IsCompleted,
		HistoryEntry: entry,
	})
}

// DeletePlanHandler removes a plan
func (h *PlanHandlers) DeletePlanHandler(w http.ResponseWriter, r *http.Request) {
	planID, err := pathID(r, "id")
	if err != nil {
		sendError(w, http.StatusBadRequest, "Invalid plan id", nil)
		return
	}

	if err := h.fitness.DeletePlan(currentUser(r).ID, planID); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			sendError(w, http.StatusNotFound, "Workout plan not found", nil)
			return
		}
		sendError(w, http.StatusInternalServerError, "Error deleting workout plan", nil)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"detail": "Workout plan deleted"})
}
