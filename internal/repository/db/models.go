package db

import (
	"encoding/json"
	"time"
)

// User is an identity record. An empty PasswordHash means the account is
// OAuth-only and cannot authenticate by password.
type User struct {
	ID           int64     `json:"id"`
	TelegramID   *int64    `json:"telegram_id,omitempty"`
	GoogleID     *string   `json:"google_id,omitempty"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	FitnessLevel string    `json:"fitness_level,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UserUpdate carries a partial user update; nil fields are left untouched.
type UserUpdate struct {
	Username     *string
	FitnessLevel *string
	TelegramID   *int64
	GoogleID     *string
}

// Anthropometrics is the single body-measurement record of a user.
type Anthropometrics struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"user_id"`
	HeightCm     int       `json:"height_cm"`
	WeightKg     float64   `json:"weight_kg"`
	Age          int       `json:"age"`
	Gender       string    `json:"gender"`
	Injuries     *string   `json:"injuries,omitempty"`
	FitnessGoals *string   `json:"fitness_goals,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// AnthropometricsUpdate carries a partial update; nil fields are untouched.
type AnthropometricsUpdate struct {
	HeightCm     *int
	WeightKg     *float64
	Age          *int
	Gender       *string
	Injuries     *string
	FitnessGoals *string
}

// WorkoutPlan stores a user request and the AI-generated plan text.
type WorkoutPlan struct {
	ID              int64     `json:"id"`
	UserID          int64     `json:"user_id"`
	UserRequest     string    `json:"user_request"`
	AIGeneratedPlan string    `json:"ai_generated_plan"`
	PlanType        string    `json:"plan_type"`
	Difficulty      string    `json:"difficulty"`
	DurationMinutes int       `json:"duration_minutes"`
	IsCompleted     bool      `json:"is_completed"`
	CreatedAt       time.Time `json:"created_at"`
}

// ExerciseRecommendation stores AI advice for a described limitation.
type ExerciseRecommendation struct {
	ID                     int64     `json:"id"`
	UserID                 int64     `json:"user_id"`
	UserLimitations        string    `json:"user_limitations"`
	LimitationsType        string    `json:"limitations_type"`
	AIRecommendedExercises string    `json:"ai_recommended_exercises"`
	CreatedAt              time.Time `json:"created_at"`
}

// WeeklyChallenge stores an AI-generated challenge with numeric targets.
type WeeklyChallenge struct {
	ID                   int64          `json:"id"`
	UserID               int64          `json:"user_id"`
	AIGeneratedChallenge string         `json:"ai_generated_challenge"`
	WeekNumber           int            `json:"week_number"`
	ChallengeType        string         `json:"challenge_type"`
	TargetMetrics        map[string]int `json:"target_metrics,omitempty"`
	Completed            bool           `json:"completed"`
	CompletedAt          *time.Time     `json:"completed_at,omitempty"`
	CreatedAt            time.Time      `json:"created_at"`
}

// WeeklyChallengeUpdate carries a partial status update.
type WeeklyChallengeUpdate struct {
	Completed *bool
}

// WorkoutHistory is one completed training session.
type WorkoutHistory struct {
	ID                 int64           `json:"id"`
	UserID             int64           `json:"user_id"`
	PlanID             *int64          `json:"plan_id,omitempty"`
	ExercisesCompleted json.RawMessage `json:"exercises_completed,omitempty"`
	SessionDuration    int             `json:"session_duration"`
	PerceivedExertion  *int            `json:"perceived_exertion,omitempty"`
	UserFeedback       *string         `json:"user_feedback,omitempty"`
	Notes              *string         `json:"notes,omitempty"`
	CompletedAt        time.Time       `json:"completed_at"`
}

// InjuryPrediction stores an AI risk analysis and the fields extracted
// from it.
type InjuryPrediction struct {
	ID                int64     `json:"id"`
	UserID            int64     `json:"user_id"`
	WorkoutPlanID     *int64    `json:"workout_plan_id,omitempty"`
	ExercisesAnalyzed string    `json:"exercises_analyzed,omitempty"`
	AIRiskPrediction  string    `json:"ai_risk_prediction"`
	RiskLevel         string    `json:"risk_level"`
	RiskFactors       string    `json:"risk_factors,omitempty"`
	Recommendations   *string   `json:"recommendations,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

// AIInteraction is an audit row for one outbound gateway call.
type AIInteraction struct {
	ID              int64     `json:"id"`
	UserID          int64     `json:"user_id"`
	InteractionType string    `json:"interaction_type"`
	UserInput       string    `json:"user_input"`
	AIPrompt        string    `json:"ai_prompt"`
	AIResponse      string    `json:"ai_response"`
	ModelUsed       string    `json:"model_used"`
	TokensUsed      *int      `json:"tokens_used,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}
