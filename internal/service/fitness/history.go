package fitness

import (
	"encoding/json"

	"fitai/internal/repository/db"
)

// HistoryRequest is a manually reported training session. UserID, when
// set, must match the authenticated user.
type HistoryRequest struct {
	UserID             int64           `json:"user_id,omitempty"`
	PlanID             *int64          `json:"plan_id,omitempty"`
	ExercisesCompleted json.RawMessage `json:"exercises_completed,omitempty"`
	SessionDuration    int             `json:"session_duration"`
	PerceivedExertion  *int            `json:"perceived_exertion,omitempty"`
	UserFeedback       *string         `json:"user_feedback,omitempty"`
	Notes              *string         `json:"notes,omitempty"`
}

// ListHistory returns a page of the user's completed workouts
func (s *Service) ListHistory(userID int64, skip, limit int) ([]db.WorkoutHistory, error) {
	return s.db.GetWorkoutHistoryByUser(userID, skip, limit)
}

// CreateHistory records a training session. A referenced plan must
// belong to the user.
func (s *Service) CreateHistory(userID int64, req HistoryRequest) (*db.WorkoutHistory, error) {
	if req.UserID != 0 && req.UserID != userID {
		return nil, ErrForbidden
	}
	if req.PlanID != nil {
		if _, err := s.GetPlan(userID, *req.PlanID); err != nil {
			return nil, err
		}
	}
	return s.db.CreateWorkoutHistory(db.CreateWorkoutHistoryParams{
		UserID:             userID,
		PlanID:             req.PlanID,
		ExercisesCompleted: req.ExercisesCompleted,
		SessionDuration:    req.SessionDuration,
		PerceivedExertion:  req.PerceivedExertion,
		UserFeedback:       req.UserFeedback,
		Notes:              req.Notes,
	})
}

// ClearHistory removes all of the user's history and reports the count
func (s *Service) ClearHistory(userID int64) (int64, error) {
	return s.db.DeleteWorkoutHistoryByUser(userID)
}
