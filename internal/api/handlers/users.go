package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"fitai/internal/app"
	"fitai/internal/logger"
	"fitai/internal/repository/db"
	userService "fitai/internal/service/user"
	"fitai/pkg/validation"
)

// UserHandlers serves profile and measurements endpoints
type UserHandlers struct {
	users     *userService.Service
	validator *validation.FitnessRequestValidator
}

// NewUserHandlers creates user handlers from the application config
func NewUserHandlers(config *app.Config) *UserHandlers {
	return &UserHandlers{
		users:     config.Users,
		validator: validation.NewFitnessRequestValidator(),
	}
}

type ProfileUpdateRequest struct {
	Username     *string `json:"username,omitempty"`
	FitnessLevel *string `json:"fitness_level,omitempty"`
}

// GetProfileHandler returns the authenticated user
func (h *UserHandlers) GetProfileHandler(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, currentUser(r))
}

// UpdateProfileHandler applies a partial profile update
func (h *UserHandlers) UpdateProfileHandler(w http.ResponseWriter, r *http.Request) {
	var req ProfileUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	user, err := h.users.UpdateProfile(currentUser(r).ID, db.UserUpdate{
		Username:     req.Username,
		FitnessLevel: req.FitnessLevel,
	})
	if err != nil {
		logger.Log.WithField("error", err.Error()).Error("Profile update failed")
		sendError(w, http.StatusInternalServerError, "Error updating profile", nil)
		return
	}
	respondJSON(w, http.StatusOK, user)
}

// GetAnthropometricsHandler returns the user's measurements
func (h *UserHandlers) GetAnthropometricsHandler(w http.ResponseWriter, r *http.Request) {
	data, err := h.users.GetAnthropometrics(currentUser(r).ID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			sendError(w, http.StatusNotFound, "Measurements not found", nil)
			return
		}
		sendError(w, http.StatusInternalServerError, "Error retrieving measurements", nil)
		return
	}
	respondJSON(w, http.StatusOK, data)
}

// SaveAnthropometricsHandler creates or replaces the user's measurements
func (h *UserHandlers) SaveAnthropometricsHandler(w http.ResponseWriter, r *http.Request) {
	var req userService.MeasurementsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if err := h.validator.ValidateMeasurements(req.HeightCm, req.WeightKg, req.Age, req.Gender); err != nil {
		sendError(w, http.StatusBadRequest, "Validation failed", err)
		return
	}

	data, err := h.users.SaveAnthropometrics(currentUser(r).ID, req)
	if err != nil {
		logger.Log.WithField("error", err.Error()).Error("Saving measurements failed")
		sendError(w, http.StatusInternalServerError, "Error saving measurements", nil)
		return
	}
	respondJSON(w, http.StatusOK, data)
}

type AnthropometricsUpdateRequest struct {
	HeightCm     *int     `json:"height_cm,omitempty"`
	WeightKg     *float64 `json:"weight_kg,omitempty"`
	Age          *int     `json:"age,omitempty"`
	Gender       *string  `json:"gender,omitempty"`
	Injuries     *string  `json:"injuries,omitempty"`
	FitnessGoals *string  `json:"fitness_goals,omitempty"`
}

// UpdateAnthropometricsHandler applies a partial measurements update
func (h *UserHandlers) UpdateAnthropometricsHandler(w http.ResponseWriter, r *http.Request) {
	var req AnthropometricsUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	data, err := h.users.UpdateAnthropometrics(currentUser(r).ID, db.AnthropometricsUpdate{
		HeightCm:     req.HeightCm,
		WeightKg:     req.WeightKg,
		Age:          req.Age,
		Gender:       req.Gender,
		Injuries:     req.Injuries,
		FitnessGoals: req.FitnessGoals,
	})
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			sendError(w, http.StatusNotFound, "Measurements not found", nil)
			return
		}
		sendError(w, http.StatusInternalServerError, "Error updating measurements", nil)
		return
	}
	respondJSON(w, http.StatusOK, data)
}
