// Package user implements profile and body-measurement management.
package user

import (
	"errors"
	"fmt"

	"fitai/internal/repository/db"
)

// Service manages user profiles and their anthropometric data
type Service struct {
	db db.Database
}

// NewService creates a user service
func NewService(database db.Database) *Service {
	return &Service{db: database}
}

// GetProfile returns the user record
func (s *Service) GetProfile(userID int64) (*db.User, error) {
	return s.db.GetUserByID(userID)
}

// UpdateProfile applies a partial profile update
func (s *Service) UpdateProfile(userID int64, update db.UserUpdate) (*db.User, error) {
	return s.db.UpdateUser(userID, update)
}

// GetAnthropometrics returns the user's measurements
func (s *Service) GetAnthropometrics(userID int64) (*db.Anthropometrics, error) {
	return s.db.GetAnthropometricsByUserID(userID)
}

// MeasurementsRequest carries a full set of body measurements
type MeasurementsRequest struct {
	HeightCm     int     `json:"height_cm"`
	WeightKg     float64 `json:"weight_kg"`
	Age          int     `json:"age"`
	Gender       string  `json:"gender"`
	Injuries     *string `json:"injuries,omitempty"`
	FitnessGoals *string `json:"fitness_goals,omitempty"`
}

// SaveAnthropometrics creates the user's measurements row, or updates
// the existing one. Each user has at most one.
func (s *Service) SaveAnthropometrics(userID int64, req MeasurementsRequest) (*db.Anthropometrics, error) {
	existing, err := s.db.GetAnthropometricsByUserID(userID)
	if err == nil {
		return s.db.UpdateAnthropometrics(existing.ID, db.AnthropometricsUpdate{
			HeightCm:     &req.HeightCm,
			WeightKg:     &req.WeightKg,
			Age:          &req.Age,
			Gender:       &req.Gender,
			Injuries:     req.Injuries,
			FitnessGoals: req.FitnessGoals,
		})
	}
	if !errors.Is(err, db.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing measurements: %w", err)
	}

	return s.db.CreateAnthropometrics(db.CreateAnthropometricsParams{
		UserID:       userID,
		HeightCm:     req.HeightCm,
		WeightKg:     req.WeightKg,
		Age:          req.Age,
		Gender:       req.Gender,
		Injuries:     req.Injuries,
		FitnessGoals: req.FitnessGoals,
	})
}

// UpdateAnthropometrics applies a partial measurements update
func (s *Service) UpdateAnthropometrics(userID int64, update db.AnthropometricsUpdate) (*db.Anthropometrics, error) {
	existing, err := s.db.GetAnthropometricsByUserID(userID)
	if err != nil {
		return nil, err
	}
	return s.db.UpdateAnthropometrics(existing.ID, update)
}
