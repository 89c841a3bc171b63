package fitness

import (
	"context"
	"fmt"

	"fitai/internal/repository/db"
	"fitai/internal/service/ai"
)

// RecommendationRequest describes the limitation the user wants advice on
type RecommendationRequest struct {
	UserLimitations string `json:"user_limitations"`
	LimitationsType string `json:"limitations_type"`
}

// ListRecommendations returns a page of the user's recommendations
func (s *Service) ListRecommendations(userID int64, skip, limit int) ([]db.ExerciseRecommendation, error) {
	return s.db.GetExerciseRecommendationsByUser(userID, skip, limit)
}

// CreateRecommendation asks the gateway for advice matching the
// limitation and stores the result
func (s *Service) CreateRecommendation(ctx context.Context, userID int64, req RecommendationRequest) (*db.ExerciseRecommendation, error) {
	// The limitation type is folded into the request so the model can
	// account for it.
	combined := fmt.Sprintf("Тип ограничений: %s. Описание: %s", req.LimitationsType, req.UserLimitations)
	prompt := ai.RecommendationsPrompt(combined)
	resp := s.gateway.Request(ctx, prompt)

	rec, err := s.db.CreateExerciseRecommendation(db.CreateExerciseRecommendationParams{
		UserID:                 userID,
		UserLimitations:        req.UserLimitations,
		LimitationsType:        req.LimitationsType,
		AIRecommendedExercises: resp.Text,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to store recommendation: %w", err)
	}

	s.recordInteraction(userID, "exercise_recommendation", combined, prompt, resp)
	return rec, nil
}

// DeleteRecommendation removes a recommendation owned by the user
func (s *Service) DeleteRecommendation(userID, recommendationID int64) error {
	rec, err := s.db.GetExerciseRecommendation(recommendationID)
	if err != nil {
		return err
	}
	if rec.UserID != userID {
		return db.ErrNotFound
	}
	return s.db.DeleteExerciseRecommendation(recommendationID)
}
