package fitness

import (
	"context"
	"fmt"

	"fitai/internal/repository/db"
	"fitai/internal/service/ai"
)

// AnalysisRequest describes what should be risk-analyzed: an existing
// plan, a free-form exercise description, or both
type AnalysisRequest struct {
	WorkoutPlanID     *int64 `json:"workout_plan_id,omitempty"`
	ExercisesAnalyzed string `json:"exercises_analyzed,omitempty"`
	RiskFactors       string `json:"risk_factors,omitempty"`
}

// ListPredictions returns a page of the user's risk assessments
func (s *Service) ListPredictions(userID int64, skip, limit int) ([]db.InjuryPrediction, error) {
	return s.db.GetInjuryPredictionsByUser(userID, skip, limit)
}

// AnalyzeInjuryRisk runs a risk analysis through the gateway, extracts
// the structured fields from the response and stores the prediction
func (s *Service) AnalyzeInjuryRisk(ctx context.Context, userID int64, req AnalysisRequest) (*db.InjuryPrediction, error) {
	if req.WorkoutPlanID == nil && req.ExercisesAnalyzed == "" {
		return nil, ErrAnalysisInput
	}

	var planExercises string
	if req.WorkoutPlanID != nil {
		plan, err := s.db.GetWorkoutPlan(*req.WorkoutPlanID)
		if err != nil {
			return nil, err
		}
		if plan.UserID != userID {
			return nil, ErrForbidden
		}
		planExercises = plan.AIGeneratedPlan
	}

	prompt := ai.InjuryAnalysisPrompt(planExercises, req.ExercisesAnalyzed, req.RiskFactors)
	resp := s.gateway.Request(ctx, prompt)

	riskLevel := s.interpreter.ExtractRiskLevel(resp.Text)
	var recommendations *string
	if extracted := s.interpreter.ExtractRecommendations(resp.Text); extracted != "" {
		recommendations = &extracted
	}

	prediction, err := s.db.CreateInjuryPrediction(db.CreateInjuryPredictionParams{
		UserID:            userID,
		WorkoutPlanID:     req.WorkoutPlanID,
		ExercisesAnalyzed: req.ExercisesAnalyzed,
		AIRiskPrediction:  resp.Text,
		RiskLevel:         riskLevel,
		RiskFactors:       req.RiskFactors,
		Recommendations:   recommendations,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to store injury prediction: %w", err)
	}

	s.recordInteraction(userID, "injury_prediction", req.ExercisesAnalyzed, prompt, resp)
	return prediction, nil
}

// DeletePrediction removes a risk assessment owned by the user
func (s *Service) DeletePrediction(userID, predictionID int64) error {
	prediction, err := s.db.GetInjuryPrediction(predictionID)
	if err != nil {
		return err
	}
	if prediction.UserID != userID {
		return db.ErrNotFound
	}
	return s.db.DeleteInjuryPrediction(predictionID)
}
