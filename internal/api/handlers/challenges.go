package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"fitai/internal/app"
	"fitai/internal/logger"
	"fitai/internal/repository/db"
	fitnessService "fitai/internal/service/fitness"
	"fitai/pkg/validation"
)

// ChallengeHandlers serves the weekly challenge endpoints
type ChallengeHandlers struct {
	fitness   *fitnessService.Service
	validator *validation.FitnessRequestValidator
}

// NewChallengeHandlers creates challenge handlers
func NewChallengeHandlers(config *app.Config) *ChallengeHandlers {
	return &ChallengeHandlers{
		fitness:   config.Fitness,
		validator: validation.NewFitnessRequestValidator(),
	}
}

// ListChallengesHandler returns a page of the user's challenges
func (h *ChallengeHandlers) ListChallengesHandler(w http.ResponseWriter, r *http.Request) {
	skip, limit := pagination(r)
	challenges, err := h.fitness.ListChallenges(currentUser(r).ID, skip, limit)
	if err != nil {
		sendError(w, http.StatusInternalServerError, "Error retrieving challenges", nil)
		return
	}
	if challenges == nil {
		challenges = []db.WeeklyChallenge{}
	}
	respondJSON(w, http.StatusOK, challenges)
}

// CurrentChallengeHandler returns the challenge for the requested week
func (h *ChallengeHandlers) CurrentChallengeHandler(w http.ResponseWriter, r *http.Request) {
	weekNumber, err := strconv.Atoi(r.URL.Query().Get("week_number"))
	if err != nil {
		sendError(w, http.StatusBadRequest, "week_number is required", nil)
		return
	}

	challenge, err := h.fitness.GetChallengeForWeek(currentUser(r).ID, weekNumber)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			sendError(w, http.StatusNotFound, "Challenge not found", nil)
			return
		}
		sendError(w, http.StatusInternalServerError, "Error retrieving challenge", nil)
		return
	}
	respondJSON(w, http.StatusOK, challenge)
}

// CreateChallengeHandler generates and stores a new challenge
func (h *ChallengeHandlers) CreateChallengeHandler(w http.ResponseWriter, r *http.Request) {
	var req fitnessService.ChallengeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if err := h.validator.ValidateChallengeRequest(req.WeekNumber, req.ChallengeType); err != nil {
		sendError(w, http.StatusBadRequest, "Validation failed", err)
		return
	}

	challenge, err := h.fitness.CreateChallenge(r.Context(), currentUser(r).ID, req)
	if err != nil {
		logger.Log.WithField("error", err.Error()).Error("Challenge creation failed")
		sendError(w, http.StatusInternalServerError, "Error creating challenge", nil)
		return
	}
	respondJSON(w, http.StatusCreated, challenge)
}

type ChallengeUpdateRequest struct {
	Completed *bool `json:"completed,omitempty"`
}

// UpdateChallengeHandler applies a status update
func (h *ChallengeHandlers) UpdateChallengeHandler(w http.ResponseWriter, r *http.Request) {
	challengeID, err := pathID(r, "id")
	if err != nil {
		sendError(w, http.StatusBadRequest, "Invalid challenge id", nil)
		return
	}

	var req ChallengeUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	challenge, err := h.fitness.UpdateChallenge(currentUser(r).ID, challengeID, db.WeeklyChallengeUpdate{
		Completed: req.Completed,
	})
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			sendError(w, http.StatusNotFound, "Challenge not found", nil)
			return
		}
		sendError(w, http.StatusInternalServerError, "Error updating challenge", nil)
		return
	}
	respondJSON(w, http.StatusOK, challenge)
}

// CompleteChallengeHandler marks a challenge done
func (h *ChallengeHandlers) CompleteChallengeHandler(w http.ResponseWriter, r *http.Request) {
	challengeID, err := pathID(r, "id")
	if err != nil {
		sendError(w, http.StatusBadRequest, "Invalid challenge id", nil)
		return
	}

	challenge, err := h.fitness.CompleteChallenge(currentUser(r).ID, challengeID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			sendError(w, http.StatusNotFound, "Challenge not found", nil)
			return
		}
		sendError(w, http.StatusInternalServerError, "Error completing challenge", nil)
		return
	}
	respondJSON(w, http.StatusOK, challenge)
}

// DeleteChallengeHandler removes a challenge
func (h *ChallengeHandlers) DeleteChallengeHandler(w http.ResponseWriter, r *http.Request) {
	challengeID, err := pathID(r, "id")
	if err != nil {
		sendError(w, http.StatusBadRequest, "Invalid challenge id", nil)
		return
	}

	if err := h.fitness.DeleteChallenge(currentUser(r).ID, challengeID); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			sendError(w, http.StatusNotFound, "Challenge not found", nil)
			return
		}
		sendError(w, http.StatusInternalServerError, "Error deleting challenge", nil)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"detail": "Challenge deleted"})
}
