package user

import (
	"testing"

	"fitai/internal/repository/db"
	"fitai/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAnthropometricsCreatesWhenMissing(t *testing.T) {
	var created db.CreateAnthropometricsParams
	mock := &testutil.MockDatabase{
		GetAnthropometricsByUserIDFunc: func(int64) (*db.Anthropometrics, error) {
			return nil, db.ErrNotFound
		},
		CreateAnthropometricsFunc: func(params db.CreateAnthropometricsParams) (*db.Anthropometrics, error) {
			created = params
			return &db.Anthropometrics{ID: 1, UserID: params.UserID, HeightCm: params.HeightCm}, nil
		},
	}

	svc := NewService(mock)
	goals := "marathon"
	result, err := svc.SaveAnthropometrics(5, MeasurementsRequest{
		HeightCm:     180,
		WeightKg:     75.5,
		Age:          30,
		Gender:       "male",
		FitnessGoals: &goals,
	})
	require.NoError(t, err)

	assert.Equal(t, 180, result.HeightCm)
	assert.Equal(t, int64(5), created.UserID)
	assert.Equal(t, 75.5, created.WeightKg)
	require.NotNil(t, created.FitnessGoals)
	assert.Equal(t, "marathon", *created.FitnessGoals)
}

func TestSaveAnthropometricsUpdatesExisting(t *testing.T) {
	var updatedID int64
	var update db.AnthropometricsUpdate
	mock := &testutil.MockDatabase{
		GetAnthropometricsByUserIDFunc: func(userID int64) (*db.Anthropometrics, error) {
			return &db.Anthropometrics{ID: 9, UserID: userID, HeightCm: 175}, nil
		},
		UpdateAnthropometricsFunc: func(id int64, u db.AnthropometricsUpdate) (*db.Anthropometrics, error) {
			updatedID = id
			update = u
			return &db.Anthropometrics{ID: id, HeightCm: *u.HeightCm}, nil
		},
	}

	svc := NewService(mock)
	result, err := svc.SaveAnthropometrics(5, MeasurementsRequest{
		HeightCm: 181,
		WeightKg: 74,
		Age:      31,
		Gender:   "male",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(9), updatedID)
	assert.Equal(t, 181, result.HeightCm)
	require.NotNil(t, update.WeightKg)
	assert.Equal(t, float64(74), *update.WeightKg)
}

func TestUpdateAnthropometricsRequiresExisting(t *testing.T) {
	mock := &testutil.MockDatabase{
		GetAnthropometricsByUserIDFunc: func(int64) (*db.Anthropometrics, error) {
			return nil, db.ErrNotFound
		},
	}

	svc := NewService(mock)
	weight := 74.0
	_, err := svc.UpdateAnthropometrics(5, db.AnthropometricsUpdate{WeightKg: &weight})
	assert.ErrorIs(t, err, db.ErrNotFound)
}
