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

func intPtr(v int) *int { return &v }

func TestCreateChallengeCarriesTargets(t *testing.T) {
	var stored db.CreateWeeklyChallengeParams
	mock := &testutil.MockDatabase{
		CreateWeeklyChallengeFunc: func(params db.CreateWeeklyChallengeParams) (*db.WeeklyChallenge, error) {
			stored = params
			return &db.WeeklyChallenge{ID: 1, UserID: params.UserID, WeekNumber: params.WeekNumber}, nil
		},
		CreateAIInteractionFunc: func(db.CreateAIInteractionParams) (*db.AIInteraction, error) {
			return &db.AIInteraction{ID: 1}, nil
		},
	}
	gateway := &testutil.MockGateway{
		RequestFunc: func(_ context.Context, prompt string) ai.Response {
			assert.Contains(t, prompt, "Цель по повторениям: 140")
			assert.Contains(t, prompt, "Цель по подходам: 4")
			return ai.Response{Text: "НЕДЕЛЬНОЕ ИСПЫТАНИЕ", Model: "model-a"}
		},
	}

	svc := NewService(mock, gateway, &testutil.MockInterpreter{})
	challenge, err := svc.CreateChallenge(context.Background(), 5, ChallengeRequest{
		WeekNumber:    35,
		ChallengeType: "endurance",
		TargetReps:    intPtr(140),
		TargetSets:    intPtr(4),
	})
	require.NoError(t, err)

	assert.Equal(t, 35, challenge.WeekNumber)
	assert.Equal(t, "НЕДЕЛЬНОЕ ИСПЫТАНИЕ", stored.AIGeneratedChallenge)
	assert.Equal(t, map[string]int{"target_reps": 140, "target_sets": 4}, stored.TargetMetrics)
}

func TestCreateChallengeWithoutTargets(t *testing.T) {
	var stored db.CreateWeeklyChallengeParams
	mock := &testutil.MockDatabase{
		CreateWeeklyChallengeFunc: func(params db.CreateWeeklyChallengeParams) (*db.WeeklyChallenge, error) {
			stored = params
			return &db.WeeklyChallenge{ID: 1}, nil
		},
		CreateAIInteractionFunc: func(db.CreateAIInteractionParams) (*db.AIInteraction, error) {
			return &db.AIInteraction{ID: 1}, nil
		},
	}

	svc := NewService(mock, &testutil.MockGateway{}, &testutil.MockInterpreter{})
	_, err := svc.CreateChallenge(context.Background(), 5, ChallengeRequest{
		WeekNumber:    35,
		ChallengeType: "strength",
	})
	require.NoError(t, err)
	assert.Empty(t, stored.TargetMetrics)
}

func TestChallengeOwnershipChecks(t *testing.T) {
	mock := &testutil.MockDatabase{
		GetWeeklyChallengeFunc: func(id int64) (*db.WeeklyChallenge, error) {
			return &db.WeeklyChallenge{ID: id, UserID: 99}, nil
		},
	}
	svc := NewService(mock, &testutil.MockGateway{}, &testutil.MockInterpreter{})

	_, err := svc.CompleteChallenge(1, 3)
	assert.ErrorIs(t, err, db.ErrNotFound)

	completed := true
	_, err = svc.UpdateChallenge(1, 3, db.WeeklyChallengeUpdate{Completed: &completed})
	assert.ErrorIs(t, err, db.ErrNotFound)

	err = svc.DeleteChallenge(1, 3)
	assert.ErrorIs(t, err, db.ErrNotFound)
}
