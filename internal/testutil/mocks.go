package testutil

import (
	"context"
	"errors"

	"fitai/internal/repository/db"
	"fitai/internal/service/ai"

	openai "github.com/sashabaranov/go-openai"
)

// MockDatabase is a mock implementation of db.Database for testing
type MockDatabase struct {
	// User mocks
	GetUserByIDFunc         func(id int64) (*db.User, error)
	GetUserByEmailFunc      func(email string) (*db.User, error)
	GetUserByTelegramIDFunc func(telegramID int64) (*db.User, error)
	GetUserByGoogleIDFunc   func(googleID string) (*db.User, error)
	CreateUserFunc          func(params db.CreateUserParams) (*db.User, error)
	UpdateUserFunc          func(id int64, update db.UserUpdate) (*db.User, error)

	// Anthropometrics mocks
	GetAnthropometricsByUserIDFunc func(userID int64) (*db.Anthropometrics, error)
	CreateAnthropometricsFunc      func(params db.CreateAnthropometricsParams) (*db.Anthropometrics, error)
	UpdateAnthropometricsFunc      func(id int64, update db.AnthropometricsUpdate) (*db.Anthropometrics, error)

	// Workout plan mocks
	GetWorkoutPlanFunc           func(id int64) (*db.WorkoutPlan, error)
	GetWorkoutPlansByUserFunc    func(userID int64, skip, limit int) ([]db.WorkoutPlan, error)
	CreateWorkoutPlanFunc        func(params db.CreateWorkoutPlanParams) (*db.WorkoutPlan, error)
	MarkWorkoutPlanCompletedFunc func(id int64) (*db.WorkoutPlan, error)
	DeleteWorkoutPlanFunc        func(id int64) error

	// Exercise recommendation mocks
	GetExerciseRecommendationFunc        func(id int64) (*db.ExerciseRecommendation, error)
	GetExerciseRecommendationsByUserFunc func(userID int64, skip, limit int) ([]db.ExerciseRecommendation, error)
	CreateExerciseRecommendationFunc     func(params db.CreateExerciseRecommendationParams) (*db.ExerciseRecommendation, error)
	DeleteExerciseRecommendationFunc     func(id int64) error

	// Weekly challenge mocks
	GetWeeklyChallengeFunc           func(id int64) (*db.WeeklyChallenge, error)
	GetWeeklyChallengesByUserFunc    func(userID int64, skip, limit int) ([]db.WeeklyChallenge, error)
	GetWeeklyChallengeForWeekFunc    func(userID int64, weekNumber int) (*db.WeeklyChallenge, error)
	CreateWeeklyChallengeFunc        func(params db.CreateWeeklyChallengeParams) (*db.WeeklyChallenge, error)
	UpdateWeeklyChallengeFunc        func(id int64, update db.WeeklyChallengeUpdate) (*db.WeeklyChallenge, error)
	MarkWeeklyChallengeCompletedFunc func(id int64) (*db.WeeklyChallenge, error)
	DeleteWeeklyChallengeFunc        func(id int64) error

	// Workout history mocks
	GetWorkoutHistoryByUserFunc    func(userID int64, skip, limit int) ([]db.WorkoutHistory, error)
	CreateWorkoutHistoryFunc       func(params db.CreateWorkoutHistoryParams) (*db.WorkoutHistory, error)
	DeleteWorkoutHistoryByUserFunc func(userID int64) (int64, error)

	// Injury prediction mocks
	GetInjuryPredictionFunc        func(id int64) (*db.InjuryPrediction, error)
	GetInjuryPredictionsByUserFunc func(userID int64, skip, limit int) ([]db.InjuryPrediction, error)
	CreateInjuryPredictionFunc     func(params db.CreateInjuryPredictionParams) (*db.InjuryPrediction, error)
	DeleteInjuryPredictionFunc     func(id int64) error

	// AI interaction mocks
	CreateAIInteractionFunc func(params db.CreateAIInteractionParams) (*db.AIInteraction, error)
}

var errNotImplemented = errors.New("not implemented")

func (m *MockDatabase) GetUserByID(id int64) (*db.User, error) {
	if m.GetUserByIDFunc != nil {
		return m.GetUserByIDFunc(id)
	}
	return nil, errNotImplemented
}

func (m *MockDatabase) GetUserByEmail(email string) (*db.User, error) {
	if m.GetUserByEmailFunc != nil {
		return m.GetUserByEmailFunc(email)
	}
	return nil, errNotImplemented
}

func (m *MockDatabase) GetUserByTelegramID(telegramID int64) (*db.User, error) {
	if m.GetUserByTelegramIDFunc != nil {
		return m.GetUserByTelegramIDFunc(telegramID)
	}
	return nil, errNotImplemented
}

func (m *MockDatabase) GetUserByGoogleID(googleID string) (*db.User, error) {
	if m.GetUserByGoogleIDFunc != nil {
		return m.GetUserByGoogleIDFunc(googleID)
	}
	return nil, errNotImplemented
}

func (m *MockDatabase) CreateUser(params db.CreateUserParams) (*db.User, error) {
	if m.CreateUserFunc != nil {
		return m.CreateUserFunc(params)
	}
	return nil, errNotImplemented
}

func (m *MockDatabase) UpdateUser(id int64, update db.UserUpdate) (*db.User, error) {
	if m.UpdateUserFunc != nil {
		return m.UpdateUserFunc(id, update)
	}
	return nil, errNotImplemented
}

func (m *MockDatabase) GetAnthropometricsByUserID(userID int64) (*db.Anthropometrics, error) {
	if m.GetAnthropometricsByUserIDFunc != nil {
		return m.GetAnthropometricsByUserIDFunc(userID)
	}
	return nil, errNotImplemented
}

func (m *MockDatabase) CreateAnthropometrics(params db.CreateAnthropometricsParams) (*db.Anthropometrics, error) {
	if m.CreateAnthropometricsFunc != nil {
		return m.CreateAnthropometricsFunc(params)
	}
	return nil, errNotImplemented
}

func (m *MockDatabase) UpdateAnthropometrics(id int64, update db.AnthropometricsUpdate) (*db.Anthropometrics, error) {
	if m.UpdateAnthropometricsFunc != nil {
		return m.UpdateAnthropometricsFunc(id, update)
	}
	return nil, errNotImplemented
}

func (m *MockDatabase) GetWorkoutPlan(id int64) (*db.WorkoutPlan, error) {
	if m.GetWorkoutPlanFunc != nil {
		return m.GetWorkoutPlanFunc(id)
	}
	return nil, errNotImplemented
}

func (m *MockDatabase) GetWorkoutPlansByUser(userID int64, skip, limit int) ([]db.WorkoutPlan, error) {
	if m.GetWorkoutPlansByUserFunc != nil {
		return m.GetWorkoutPlansByUserFunc(userID, skip, limit)
	}
	return nil, errNotImplemented
}

func (m *MockDatabase) CreateWorkoutPlan(params db.CreateWorkoutPlanParams) (*db.WorkoutPlan, error) {
	if m.CreateWorkoutPlanFunc != nil {
		return m.CreateWorkoutPlanFunc(params)
	}
	return nil, errNotImplemented
}

func (m *MockDatabase) MarkWorkoutPlanCompleted(id int64) (*db.WorkoutPlan, error) {
	if m.MarkWorkoutPlanCompletedFunc != nil {
		return m.MarkWorkoutPlanCompletedFunc(id)
	}
	return nil, errNotImplemented
}

func (m *MockDatabase) DeleteWorkoutPlan(id int64) error {
	if m.DeleteWorkoutPlanFunc != nil {
		return m.DeleteWorkoutPlanFunc(id)
	}
	return errNotImplemented
}

func (m *MockDatabase) GetExerciseRecommendation(id int64) (*db.ExerciseRecommendation, error) {
	if m.GetExerciseRecommendationFunc != nil {
		return m.GetExerciseRecommendationFunc(id)
	}
	return nil, errNotImplemented
}

func (m *MockDatabase) GetExerciseRecommendationsByUser(userID int64, skip, limit int) ([]db.ExerciseRecommendation, error) {
	if m.GetExerciseRecommendationsByUserFunc != nil {
		return m.GetExerciseRecommendationsByUserFunc(userID, skip, limit)
	}
	return nil, errNotImplemented
}

func (m *MockDatabase) CreateExerciseRecommendation(params db.CreateExerciseRecommendationParams) (*db.ExerciseRecommendation, error) {
	if m.CreateExerciseRecommendationFunc != nil {
		return m.CreateExerciseRecommendationFunc(params)
	}
	return nil, errNotImplemented
}

func (m *MockDatabase) DeleteExerciseRecommendation(id int64) error {
	if m.DeleteExerciseRecommendationFunc != nil {
		return m.DeleteExerciseRecommendationFunc(id)
	}
	return errNotImplemented
}

func (m *MockDatabase) GetWeeklyChallenge(id int64) (*db.WeeklyChallenge, error) {
	if m.GetWeeklyChallengeFunc != nil {
		return m.GetWeeklyChallengeFunc(id)
	}
	return nil, errNotImplemented
}

func (m *MockDatabase) GetWeeklyChallengesByUser(userID int64, skip, limit int) ([]db.WeeklyChallenge, error) {
	if m.GetWeeklyChallengesByUserFunc != nil {
		return m.GetWeeklyChallengesByUserFunc(userID, skip, limit)
	}
	return nil, errNotImplemented
}

func (m *MockDatabase) GetWeeklyChallengeForWeek(userID int64, weekNumber int) (*db.WeeklyChallenge, error) {
	if m.GetWeeklyChallengeForWeekFunc != nil {
		return m.GetWeeklyChallengeForWeekFunc(userID, weekNumber)
	}
	return nil, errNotImplemented
}

func (m *MockDatabase) CreateWeeklyChallenge(params db.CreateWeeklyChallengeParams) (*db.WeeklyChallenge, error) {
	if m.CreateWeeklyChallengeFunc != nil {
		return m.CreateWeeklyChallengeFunc(params)
	}
	return nil, errNotImplemented
}

func (m *MockDatabase) UpdateWeeklyChallenge(id int64, update db.WeeklyChallengeUpdate) (*db.WeeklyChallenge, error) {
	if m.UpdateWeeklyChallengeFunc != nil {
		return m.UpdateWeeklyChallengeFunc(id, update)
	}
	return nil, errNotImplemented
}

func (m *MockDatabase) MarkWeeklyChallengeCompleted(id int64) (*db.WeeklyChallenge, error) {
	if m.MarkWeeklyChallengeCompletedFunc != nil {
		return m.MarkWeeklyChallengeCompletedFunc(id)
	}
	return nil, errNotImplemented
}

func (m *MockDatabase) DeleteWeeklyChallenge(id int64) error {
	if m.DeleteWeeklyChallengeFunc != nil {
		return m.DeleteWeeklyChallengeFunc(id)
	}
	return errNotImplemented
}

func (m *MockDatabase) GetWorkoutHistoryByUser(userID int64, skip, limit int) ([]db.WorkoutHistory, error) {
	if m.GetWorkoutHistoryByUserFunc != nil {
		return m.GetWorkoutHistoryByUserFunc(userID, skip, limit)
	}
	return nil, errNotImplemented
}

func (m *MockDatabase) CreateWorkoutHistory(params db.CreateWorkoutHistoryParams) (*db.WorkoutHistory, error) {
	if m.CreateWorkoutHistoryFunc != nil {
		return m.CreateWorkoutHistoryFunc(params)
	}
	return nil, errNotImplemented
}

func (m *MockDatabase) DeleteWorkoutHistoryByUser(userID int64) (int64, error) {
	if m.DeleteWorkoutHistoryByUserFunc != nil {
		return m.DeleteWorkoutHistoryByUserFunc(userID)
	}
	return 0, errNotImplemented
}

func (m *MockDatabase) GetInjuryPrediction(id int64) (*db.InjuryPrediction, error) {
	if m.GetInjuryPredictionFunc != nil {
		return m.GetInjuryPredictionFunc(id)
	}
	return nil, errNotImplemented
}

func (m *MockDatabase) GetInjuryPredictionsByUser(userID int64, skip, limit int) ([]db.InjuryPrediction, error) {
	if m.GetInjuryPredictionsByUserFunc != nil {
		return m.GetInjuryPredictionsByUserFunc(userID, skip, limit)
	}
	return nil, errNotImplemented
}

func (m *MockDatabase) CreateInjuryPrediction(params db.CreateInjuryPredictionParams) (*db.InjuryPrediction, error) {
	if m.CreateInjuryPredictionFunc != nil {
		return m.CreateInjuryPredictionFunc(params)
	}
	return nil, errNotImplemented
}

func (m *MockDatabase) DeleteInjuryPrediction(id int64) error {
	if m.DeleteInjuryPredictionFunc != nil {
		return m.DeleteInjuryPredictionFunc(id)
	}
	return errNotImplemented
}

func (m *MockDatabase) CreateAIInteraction(params db.CreateAIInteractionParams) (*db.AIInteraction, error) {
	if m.CreateAIInteractionFunc != nil {
		return m.CreateAIInteractionFunc(params)
	}
	return nil, errNotImplemented
}

// MockChatClient is a mock OpenRouter client for gateway tests
type MockChatClient struct {
	CreateChatCompletionFunc func(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

func (m *MockChatClient) CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	if m.CreateChatCompletionFunc != nil {
		return m.CreateChatCompletionFunc(ctx, request)
	}
	return openai.ChatCompletionResponse{}, errNotImplemented
}

// MockGateway is a fixed-response gateway for service tests
type MockGateway struct {
	RequestFunc func(ctx context.Context, prompt string) ai.Response
}

func (m *MockGateway) Request(ctx context.Context, prompt string) ai.Response {
	if m.RequestFunc != nil {
		return m.RequestFunc(ctx, prompt)
	}
	return ai.Response{Text: "mock response", Model: "mock"}
}

// MockInterpreter returns fixed extraction results
type MockInterpreter struct {
	RiskLevel       string
	Recommendations string
}

func (m *MockInterpreter) ExtractRiskLevel(string) string       { return m.RiskLevel }
func (m *MockInterpreter) ExtractRecommendations(string) string { return m.Recommendations }
