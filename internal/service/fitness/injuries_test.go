package fitness

import (
	"context"
	"testing"

	"fitai/internal/repository/db"
	"fitai/internal/service/ai"
	"fitai/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeInjuryRiskRequiresInput(t *testing.T) {
	svc := NewService(&testutil.MockDatabase{}, &testutil.MockGateway{}, &testutil.MockInterpreter{})

	_, err := svc.AnalyzeInjuryRisk(context.Background(), 1, AnalysisRequest{})
	assert.ErrorIs(t, err, ErrAnalysisInput)
}

func TestAnalyzeInjuryRiskForeignPlan(t *testing.T) {
	mock := &testutil.MockDatabase{
		GetWorkoutPlanFunc: func(id int64) (*db.WorkoutPlan, error) {
			return &db.WorkoutPlan{ID: id, UserID: 99}, nil
		},
	}
	svc := NewService(mock, &testutil.MockGateway{}, &testutil.MockInterpreter{})

	planID := int64(7)
	_, err := svc.AnalyzeInjuryRisk(context.Background(), 1, AnalysisRequest{WorkoutPlanID: &planID})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestAnalyzeInjuryRiskStoresExtractedFields(t *testing.T) {
	var stored db.CreateInjuryPredictionParams
	mock := &testutil.MockDatabase{
		GetWorkoutPlanFunc: func(id int64) (*db.WorkoutPlan, error) {
			return &db.WorkoutPlan{ID: id, UserID: 1, AIGeneratedPlan: "1. Становая тяга"}, nil
		},
		CreateInjuryPredictionFunc: func(params db.CreateInjuryPredictionParams) (*db.InjuryPrediction, error) {
			stored = params
			return &db.InjuryPrediction{ID: 2, UserID: params.UserID, RiskLevel: params.RiskLevel}, nil
		},
		CreateAIInteractionFunc: func(db.CreateAIInteractionParams) (*db.AIInteraction, error) {
			return &db.AIInteraction{ID: 1}, nil
		},
	}
	gateway := &testutil.MockGateway{
		RequestFunc: func(_ context.Context, prompt string) ai.Response {
			assert.Contains(t, prompt, "1. Становая тяга")
			assert.Contains(t, prompt, "боль в пояснице")
			return ai.Response{Text: "Уровень риска: Высокий", Model: "model-a"}
		},
	}
	interp := &testutil.MockInterpreter{RiskLevel: "high", Recommendations: "Снизьте рабочий вес"}

	svc := NewService(mock, gateway, interp)
	planID := int64(7)
	prediction, err := svc.AnalyzeInjuryRisk(context.Background(), 1, AnalysisRequest{
		WorkoutPlanID: &planID,
		RiskFactors:   "боль в пояснице",
	})
	require.NoError(t, err)

	assert.Equal(t, "high", prediction.RiskLevel)
	assert.Equal(t, "high", stored.RiskLevel)
	assert.Equal(t, "Уровень риска: Высокий", stored.AIRiskPrediction)
	require.NotNil(t, stored.Recommendations)
	assert.Equal(t, "Снизьте рабочий вес", *stored.Recommendations)
}

func TestAnalyzeInjuryRiskEmptyRecommendations(t *testing.T) {
	var stored db.CreateInjuryPredictionParams
	mock := &testutil.MockDatabase{
		CreateInjuryPredictionFunc: func(params db.CreateInjuryPredictionParams) (*db.InjuryPrediction, error) {
			stored = params
			return &db.InjuryPrediction{ID: 2}, nil
		},
		CreateAIInteractionFunc: func(db.CreateAIInteractionParams) (*db.AIInteraction, error) {
			return &db.AIInteraction{ID: 1}, nil
		},
	}
	interp := &testutil.MockInterpreter{RiskLevel: "medium"}

	svc := NewService(mock, &testutil.MockGateway{}, interp)
	_, err := svc.AnalyzeInjuryRisk(context.Background(), 1, AnalysisRequest{
		ExercisesAnalyzed: "приседания со штангой",
	})
	require.NoError(t, err)
	assert.Nil(t, stored.Recommendations)
}

func TestDeletePredictionForeignOwner(t *testing.T) {
	mock := &testutil.MockDatabase{
		GetInjuryPredictionFunc: func(id int64) (*db.InjuryPrediction, error) {
			return &db.InjuryPrediction{ID: id, UserID: 99}, nil
		},
	}
	svc := NewService(mock, &testutil.MockGateway{}, &testutil.MockInterpreter{})

	err := svc.DeletePrediction(1, 4)
	assert.ErrorIs(t, err, db.ErrNotFound)
}
