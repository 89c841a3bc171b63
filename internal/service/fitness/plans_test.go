package fitness

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"fitai/internal/repository/db"
	"fitai/internal/service/ai"
	"fitai/internal/service/risk"
	"fitai/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPlanService(mock *testutil.MockDatabase, gateway AIGateway) *Service {
	if gateway == nil {
		gateway = &testutil.MockGateway{}
	}
	return NewService(mock, gateway, risk.NewHeuristicInterpreter())
}

func TestCreatePlanStoresGeneratedText(t *testing.T) {
	var storedPlan db.CreateWorkoutPlanParams
	var interaction db.CreateAIInteractionParams
	mock := &testutil.MockDatabase{
		CreateWorkoutPlanFunc: func(params db.CreateWorkoutPlanParams) (*db.WorkoutPlan, error) {
			storedPlan = params
			return &db.WorkoutPlan{ID: 1, UserID: params.UserID, AIGeneratedPlan: params.AIGeneratedPlan}, nil
		},
		CreateAIInteractionFunc: func(params db.CreateAIInteractionParams) (*db.AIInteraction, error) {
			interaction = params
			return &db.AIInteraction{ID: 1}, nil
		},
	}
	gateway := &testutil.MockGateway{
		RequestFunc: func(_ context.Context, prompt string) ai.Response {
			assert.Contains(t, prompt, "хочу накачать спину")
			return ai.Response{Text: "1. Разминка 10 минут", Model: "model-a"}
		},
	}

	svc := newPlanService(mock, gateway)
	plan, err := svc.CreatePlan(context.Background(), 5, PlanRequest{
		UserRequest:     "хочу накачать спину",
		PlanType:        "strength",
		Difficulty:      "beginner",
		DurationMinutes: 45,
	})
	require.NoError(t, err)

	assert.Equal(t, "1. Разминка 10 минут", plan.AIGeneratedPlan)
	assert.Equal(t, int64(5), storedPlan.UserID)
	assert.Equal(t, "strength", storedPlan.PlanType)

	assert.Equal(t, "workout_plan", interaction.InteractionType)
	assert.Equal(t, "хочу накачать спину", interaction.UserInput)
	assert.Equal(t, "model-a", interaction.ModelUsed)
	assert.Equal(t, "1. Разминка 10 минут", interaction.AIResponse)
}

func TestCreatePlanAuditFailureIsNotFatal(t *testing.T) {
	mock := &testutil.MockDatabase{
		CreateWorkoutPlanFunc: func(params db.CreateWorkoutPlanParams) (*db.WorkoutPlan, error) {
			return &db.WorkoutPlan{ID: 1}, nil
		},
		CreateAIInteractionFunc: func(db.CreateAIInteractionParams) (*db.AIInteraction, error) {
			return nil, db.ErrNotFound
		},
	}

	svc := newPlanService(mock, nil)
	_, err := svc.CreatePlan(context.Background(), 5, PlanRequest{UserRequest: "план"})
	assert.NoError(t, err)
}

func TestGetPlanOwnership(t *testing.T) {
	mock := &testutil.MockDatabase{
		GetWorkoutPlanFunc: func(id int64) (*db.WorkoutPlan, error) {
			return &db.WorkoutPlan{ID: id, UserID: 1}, nil
		},
	}

	svc := newPlanService(mock, nil)

	plan, err := svc.GetPlan(1, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), plan.ID)

	// A foreign plan is indistinguishable from a missing one.
	_, err = svc.GetPlan(2, 7)
	assert.ErrorIs(t, err, db.ErrNotFound)
}

func TestCompletePlanRecordsHistorySnapshot(t *testing.T) {
	created := time.Date(2026, 8, 1, 9, 30, 0, 0, time.UTC)
	var history db.CreateWorkoutHistoryParams
	mock := &testutil.MockDatabase{
		GetWorkoutPlanFunc: func(id int64) (*db.WorkoutPlan, error) {
			return &db.WorkoutPlan{
				ID:              id,
				UserID:          1,
				UserRequest:     "спина",
				AIGeneratedPlan: "1. Подтягивания",
				PlanType:        "strength",
				Difficulty:      "intermediate",
				DurationMinutes: 45,
				CreatedAt:       created,
			}, nil
		},
		MarkWorkoutPlanCompletedFunc: func(id int64) (*db.WorkoutPlan, error) {
			return &db.WorkoutPlan{ID: id, UserID: 1, IsCompleted: true}, nil
		},
		CreateWorkoutHistoryFunc: func(params db.CreateWorkoutHistoryParams) (*db.WorkoutHistory, error) {
			history = params
			return &db.WorkoutHistory{ID: 3, UserID: params.UserID}, nil
		},
	}

	svc := newPlanService(mock, nil)
	updated, entry, err := svc.CompletePlan(1, 7)
	require.NoError(t, err)
	assert.True(t, updated.IsCompleted)
	require.NotNil(t, entry)

	assert.Equal(t, 45, history.SessionDuration)
	require.NotNil(t, history.PlanID)
	assert.Equal(t, int64(7), *history.PlanID)

	var snapshot map[string]interface{}
	require.NoError(t, json.Unmarshal(history.ExercisesCompleted, &snapshot))
	assert.Equal(t, float64(7), snapshot["plan_id"])
	assert.Equal(t, "1. Подтягивания", snapshot["full_plan"])
	assert.Equal(t, "strength", snapshot["plan_type"])
	assert.Equal(t, "2026-08-01T09:30:00Z", snapshot["created_at"])
}

func TestCompletePlanSessionDurationFallback(t *testing.T) {
	var history db.CreateWorkoutHistoryParams
	mock := &testutil.MockDatabase{
		GetWorkoutPlanFunc: func(id int64) (*db.WorkoutPlan, error) {
			return &db.WorkoutPlan{ID: id, UserID: 1}, nil
		},
		MarkWorkoutPlanCompletedFunc: func(id int64) (*db.WorkoutPlan, error) {
			return &db.WorkoutPlan{ID: id, UserID: 1, IsCompleted: true}, nil
		},
		CreateWorkoutHistoryFunc: func(params db.CreateWorkoutHistoryParams) (*db.WorkoutHistory, error) {
			history = params
			return &db.WorkoutHistory{ID: 3}, nil
		},
	}

	svc := newPlanService(mock, nil)
	_, _, err := svc.CompletePlan(1, 7)
	require.NoError(t, err)
	assert.Equal(t, 30, history.SessionDuration)
}

func TestCompletePlanHistoryFailureIsNotFatal(t *testing.T) {
	mock := &testutil.MockDatabase{
		GetWorkoutPlanFunc: func(id int64) (*db.WorkoutPlan, error) {
			return &db.WorkoutPlan{ID: id, UserID: 1}, nil
		},
		MarkWorkoutPlanCompletedFunc: func(id int64) (*db.WorkoutPlan, error) {
			return &db.WorkoutPlan{ID: id, UserID: 1, IsCompleted: true}, nil
		},
		CreateWorkoutHistoryFunc: func(db.CreateWorkoutHistoryParams) (*db.WorkoutHistory, error) {
			return nil, db.ErrNotFound
		},
	}

	svc := newPlanService(mock, nil)
	updated, entry, err := svc.CompletePlan(1, 7)
	require.NoError(t, err)
	assert.True(t, updated.IsCompleted)
	assert.Nil(t, entry)
}

func TestDeletePlanForeignOwner(t *testing.T) {
	mock := &testutil.MockDatabase{
		GetWorkoutPlanFunc: func(id int64) (*db.WorkoutPlan, error) {
			return &db.WorkoutPlan{ID: id, UserID: 99}, nil
		},
	}

	svc := newPlanService(mock, nil)
	err := svc.DeletePlan(1, 7)
	assert.ErrorIs(t, err, db.ErrNotFound)
}
