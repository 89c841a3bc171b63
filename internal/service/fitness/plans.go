package fitness

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"fitai/internal/logger"
	"fitai/internal/repository/db"
	"fitai/internal/service/ai"

	"github.com/sirupsen/logrus"
)

// PlanRequest describes the workout plan the user wants generated
type PlanRequest struct {
	UserRequest     string `json:"user_request"`
	PlanType        string `json:"plan_type"`
	Difficulty      string `json:"difficulty"`
	DurationMinutes int    `json:"duration_minutes"`
}

// ListPlans returns a page of the user's workout plans
func (s *Service) ListPlans(userID int64, skip, limit int) ([]db.WorkoutPlan, error) {
	return s.db.GetWorkoutPlansByUser(userID, skip, limit)
}

// GetPlan returns a single plan owned by the user
func (s *Service) GetPlan(userID, planID int64) (*db.WorkoutPlan, error) {
	plan, err := s.db.GetWorkoutPlan(planID)
	if err != nil {
		return nil, err
	}
	if plan.UserID != userID {
		return nil, db.ErrNotFound
	}
	return plan, nil
}

// CreatePlan generates a workout plan through the gateway and stores it
func (s *Service) CreatePlan(ctx context.Context, userID int64, req PlanRequest) (*db.WorkoutPlan, error) {
	prompt := ai.WorkoutPlanPrompt(req.UserRequest, req.PlanType, req.Difficulty, req.DurationMinutes)
	resp := s.gateway.Request(ctx, prompt)

	plan, err := s.db.CreateWorkoutPlan(db.CreateWorkoutPlanParams{
		UserID:          userID,
		UserRequest:     req.UserRequest,
		AIGeneratedPlan: resp.Text,
		PlanType:        req.PlanType,
		Difficulty:      req.Difficulty,
		DurationMinutes: req.DurationMinutes,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to store workout plan: %w", err)
	}

	s.recordInteraction(userID, "workout_plan", req.UserRequest, prompt, resp)
	logger.Log.WithFields(logrus.Fields{
		"user_id": userID,
		"plan_id": plan.ID,
		"model":   resp.Model,
	}).Info("Created workout plan")
	return plan, nil
}

// planSnapshot is the JSON written into the history record when a plan
// is completed
type planSnapshot struct {
	PlanID          int64  `json:"plan_id"`
	PlanType        string `json:"plan_type"`
	Difficulty      string `json:"difficulty"`
	DurationMinutes int    `json:"duration_minutes"`
	FullPlan        string `json:"full_plan"`
	UserRequest     string `json:"user_request"`
	CreatedAt       string `json:"created_at"`
}

// CompletePlan marks a plan done and records a history entry carrying a
// snapshot of the plan
func (s *Service) CompletePlan(userID, planID int64) (*db.WorkoutPlan, *db.WorkoutHistory, error) {
	plan, err := s.GetPlan(userID, planID)
	if err != nil {
		return nil, nil, err
	}

	updated, err := s.db.MarkWorkoutPlanCompleted(planID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to mark plan completed: %w", err)
	}

	snapshot, err := json.Marshal(planSnapshot{
		PlanID:          plan.ID,
		PlanType:        plan.PlanType,
		Difficulty:      plan.Difficulty,
		DurationMinutes: plan.DurationMinutes,
		FullPlan:        plan.AIGeneratedPlan,
		UserRequest:     plan.UserRequest,
		CreatedAt:       plan.CreatedAt.Format(time.RFC3339),
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encode plan snapshot: %w", err)
	}

	sessionDuration := plan.DurationMinutes
	if sessionDuration == 0 {
		sessionDuration = 30
	}

	entry, err := s.db.CreateWorkoutHistory(db.CreateWorkoutHistoryParams{
		UserID:             userID,
		PlanID:             &planID,
		ExercisesCompleted: snapshot,
		SessionDuration:    sessionDuration,
	})
	if err != nil {
		// The plan status already changed; report success without the
		// history entry.
		logger.Log.WithFields(logrus.Fields{
			"plan_id": planID,
			"error":   err.Error(),
		}).Warn("Failed to record history entry for completed plan")
		return updated, nil, nil
	}
	return updated, entry, nil
}

// DeletePlan removes a plan owned by the user
func (s *Service) DeletePlan(userID, planID int64) error {
	if _, err := s.GetPlan(userID, planID); err != nil {
		return err
	}
	if err := s.db.DeleteWorkoutPlan(planID); err != nil && !errors.Is(err, db.ErrNotFound) {
		return fmt.Errorf("failed to delete workout plan: %w", err)
	}
	return nil
}
