package db

import (
	"encoding/json"
	"errors"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("not found")

// ErrDuplicate is returned when a create violates a unique constraint.
var ErrDuplicate = errors.New("duplicate value")

// CreateUserParams are the fields of a new user row. PasswordHash may be
// empty for OAuth-only accounts.
type CreateUserParams struct {
	Email        string
	Username     string
	PasswordHash string
	TelegramID   *int64
	GoogleID     *string
	FitnessLevel string
}

// CreateAnthropometricsParams are the fields of a new measurements row.
type CreateAnthropometricsParams struct {
	UserID       int64
	HeightCm     int
	WeightKg     float64
	Age          int
	Gender       string
	Injuries     *string
	FitnessGoals *string
}

// CreateWorkoutPlanParams are the fields of a new workout plan row.
type CreateWorkoutPlanParams struct {
	UserID          int64
	UserRequest     string
	AIGeneratedPlan string
	PlanType        string
	Difficulty      string
	DurationMinutes int
}

// CreateExerciseRecommendationParams are the fields of a new
// recommendation row.
type CreateExerciseRecommendationParams struct {
	UserID                 int64
	UserLimitations        string
	LimitationsType        string
	AIRecommendedExercises string
}

// CreateWeeklyChallengeParams are the fields of a new challenge row.
type CreateWeeklyChallengeParams struct {
	UserID               int64
	AIGeneratedChallenge string
	WeekNumber           int
	ChallengeType        string
	TargetMetrics        map[string]int
}

// CreateWorkoutHistoryParams are the fields of a new history row.
type CreateWorkoutHistoryParams struct {
	UserID             int64
	PlanID             *int64
	ExercisesCompleted json.RawMessage
	SessionDuration    int
	PerceivedExertion  *int
	UserFeedback       *string
	Notes              *string
}

// CreateInjuryPredictionParams are the fields of a new prediction row.
type CreateInjuryPredictionParams struct {
	UserID            int64
	WorkoutPlanID     *int64
	ExercisesAnalyzed string
	AIRiskPrediction  string
	RiskLevel         string
	RiskFactors       string
	Recommendations   *string
}

// CreateAIInteractionParams are the fields of a new audit row.
type CreateAIInteractionParams struct {
	UserID          int64
	InteractionType string
	UserInput       string
	AIPrompt        string
	AIResponse      string
	ModelUsed       string
	TokensUsed      *int
}

// Database defines all persistence operations. Services depend on this
// interface so tests can substitute mocks.
type Database interface {
	// Users
	GetUserByID(id int64) (*User, error)
	GetUserByEmail(email string) (*User, error)
	GetUserByTelegramID(telegramID int64) (*User, error)
	GetUserByGoogleID(googleID string) (*User, error)
	CreateUser(params CreateUserParams) (*User, error)
	UpdateUser(id int64, update UserUpdate) (*User, error)

	// Anthropometrics
	GetAnthropometricsByUserID(userID int64) (*Anthropometrics, error)
	CreateAnthropometrics(params CreateAnthropometricsParams) (*Anthropometrics, error)
	UpdateAnthropometrics(id int64, update AnthropometricsUpdate) (*Anthropometrics, error)

	// Workout plans
	GetWorkoutPlan(id int64) (*WorkoutPlan, error)
	GetWorkoutPlansByUser(userID int64, skip, limit int) ([]WorkoutPlan, error)
	CreateWorkoutPlan(params CreateWorkoutPlanParams) (*WorkoutPlan, error)
	MarkWorkoutPlanCompleted(id int64) (*WorkoutPlan, error)
	DeleteWorkoutPlan(id int64) error

	// Exercise recommendations
	GetExerciseRecommendation(id int64) (*ExerciseRecommendation, error)
	GetExerciseRecommendationsByUser(userID int64, skip, limit int) ([]ExerciseRecommendation, error)
	CreateExerciseRecommendation(params CreateExerciseRecommendationParams) (*ExerciseRecommendation, error)
	DeleteExerciseRecommendation(id int64) error

	// Weekly challenges
	GetWeeklyChallenge(id int64) (*WeeklyChallenge, error)
	GetWeeklyChallengesByUser(userID int64, skip, limit int) ([]WeeklyChallenge, error)
	GetWeeklyChallengeForWeek(userID int64, weekNumber int) (*WeeklyChallenge, error)
	CreateWeeklyChallenge(params CreateWeeklyChallengeParams) (*WeeklyChallenge, error)
	UpdateWeeklyChallenge(id int64, update WeeklyChallengeUpdate) (*WeeklyChallenge, error)
	MarkWeeklyChallengeCompleted(id int64) (*WeeklyChallenge, error)
	DeleteWeeklyChallenge(id int64) error

	// Workout history
	GetWorkoutHistoryByUser(userID int64, skip, limit int) ([]WorkoutHistory, error)
	CreateWorkoutHistory(params CreateWorkoutHistoryParams) (*WorkoutHistory, error)
	DeleteWorkoutHistoryByUser(userID int64) (int64, error)

	// Injury predictions
	GetInjuryPrediction(id int64) (*InjuryPrediction, error)
	GetInjuryPredictionsByUser(userID int64, skip, limit int) ([]InjuryPrediction, error)
	CreateInjuryPrediction(params CreateInjuryPredictionParams) (*InjuryPrediction, error)
	DeleteInjuryPrediction(id int64) error

	// AI interactions
	CreateAIInteraction(params CreateAIInteractionParams) (*AIInteraction, error)
}
