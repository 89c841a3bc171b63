// Package fitness implements the AI-backed training features: workout
// plans, exercise recommendations, weekly challenges, workout history
// and injury risk analysis.
package fitness

import (
	"context"
	"errors"

	"fitai/internal/logger"
	"fitai/internal/repository/db"
	"fitai/internal/service/ai"
	"fitai/internal/service/risk"

	"github.com/sirupsen/logrus"
)

var (
	// ErrForbidden is returned when a record belongs to another user.
	ErrForbidden = errors.New("access denied")
	// ErrAnalysisInput is returned when a risk analysis request names
	// neither a plan nor exercises.
	ErrAnalysisInput = errors.New("either a workout plan or an exercise description is required")
)

// AIGateway is the part of the gateway the fitness features depend on
type AIGateway interface {
	Request(ctx context.Context, prompt string) ai.Response
}

// Service implements the training features on top of the store, the AI
// gateway and the risk interpreter
type Service struct {
	db          db.Database
	gateway     AIGateway
	interpreter risk.Interpreter
}

// NewService creates a fitness service
func NewService(database db.Database, gateway AIGateway, interpreter risk.Interpreter) *Service {
	return &Service{
		db:          database,
		gateway:     gateway,
		interpreter: interpreter,
	}
}

// recordInteraction writes an audit row for one gateway exchange.
// Audit failures are logged and do not fail the request.
func (s *Service) recordInteraction(userID int64, interactionType, userInput, prompt string, resp ai.Response) {
	_, err := s.db.CreateAIInteraction(db.CreateAIInteractionParams{
		UserID:          userID,
		InteractionType: interactionType,
		UserInput:       userInput,
		AIPrompt:        prompt,
		AIResponse:      resp.Text,
		ModelUsed:       resp.Model,
	})
	if err != nil {
		logger.Log.WithFields(logrus.Fields{
			"user_id": userID,
			"type":    interactionType,
			"error":   err.Error(),
		}).Warn("Failed to record AI interaction")
	}
}
