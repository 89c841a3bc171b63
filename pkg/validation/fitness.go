package validation

import (
	"errors"
	"fmt"
)

// FitnessRequestValidator validates training feature requests
type FitnessRequestValidator struct{}

// NewFitnessRequestValidator creates a new FitnessRequestValidator
func NewFitnessRequestValidator() *FitnessRequestValidator {
	return &FitnessRequestValidator{}
}

var planTypes = map[string]bool{
	"strength":    true,
	"cardio":      true,
	"flexibility": true,
	"hiit":        true,
	"recovery":    true,
}

var difficulties = map[string]bool{
	"beginner":     true,
	"intermediate": true,
	"advanced":     true,
}

var challengeTypes = map[string]bool{
	"endurance":   true,
	"strength":    true,
	"technique":   true,
	"consistency": true,
}

// ValidatePlanRequest validates a workout plan generation request
func (v *FitnessRequestValidator) ValidatePlanRequest(userRequest, planType, difficulty string, durationMinutes int) error {
	if userRequest == "" {
		return errors.New("user_request cannot be empty")
	}
	if len(userRequest) > 4000 {
		return fmt.Errorf("user_request must be at most 4000 characters long, got %d", len(userRequest))
	}
	if planType != "" && !planTypes[planType] {
		return fmt.Errorf("unknown plan_type %q", planType)
	}
	if difficulty != "" && !difficulties[difficulty] {
		return fmt.Errorf("unknown difficulty %q", difficulty)
	}
	if durationMinutes < 0 || durationMinutes > 600 {
		return fmt.Errorf("duration_minutes must be between 0 and 600, got %d", durationMinutes)
	}
	return nil
}

// ValidateRecommendationRequest validates a limitation advice request
func (v *FitnessRequestValidator) ValidateRecommendationRequest(userLimitations string) error {
	if userLimitations == "" {
		return errors.New("user_limitations cannot be empty")
	}
	if len(userLimitations) > 4000 {
		return fmt.Errorf("user_limitations must be at most 4000 characters long, got %d", len(userLimitations))
	}
	return nil
}

// ValidateChallengeRequest validates a weekly challenge generation request
func (v *FitnessRequestValidator) ValidateChallengeRequest(weekNumber int, challengeType string) error {
	if weekNumber < 1 || weekNumber > 53 {
		return fmt.Errorf("week_number must be between 1 and 53, got %d", weekNumber)
	}
	if challengeType != "" && !challengeTypes[challengeType] {
		return fmt.Errorf("unknown challenge_type %q", challengeType)
	}
	return nil
}

// ValidateMeasurements validates a body measurements payload
func (v *FitnessRequestValidator) ValidateMeasurements(heightCm int, weightKg float64, age int, gender string) error {
	if heightCm < 50 || heightCm > 300 {
		return fmt.Errorf("height_cm must be between 50 and 300, got %d", heightCm)
	}
	if weightKg < 20 || weightKg > 500 {
		return fmt.Errorf("weight_kg must be between 20 and 500, got %g", weightKg)
	}
	if age < 10 || age > 120 {
		return fmt.Errorf("age must be between 10 and 120, got %d", age)
	}
	if gender != "male" && gender != "female" && gender != "other" {
		return fmt.Errorf("unknown gender %q", gender)
	}
	return nil
}
