package postgres

import (
	"fmt"

	"fitai/internal/repository/db"
)

// CreateAIInteraction records a single model exchange for audit purposes
func (p *PostgresDB) CreateAIInteraction(params db.CreateAIInteractionParams) (*db.AIInteraction, error) {
	query := `
	INSERT INTO ai_interactions (user_id, interaction_type, user_input, ai_prompt, ai_response, model_used, tokens_used)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	RETURNING id, user_id, interaction_type, user_input, ai_prompt, ai_response, model_used, tokens_used, created_at`

	var ia db.AIInteraction
	err := p.conn.QueryRow(query, params.UserID, params.InteractionType,
		params.UserInput, params.AIPrompt, params.AIResponse,
		params.ModelUsed, params.TokensUsed).
		Scan(&ia.ID, &ia.UserID, &ia.InteractionType, &ia.UserInput,
			&ia.AIPrompt, &ia.AIResponse, &ia.ModelUsed, &ia.TokensUsed,
			&ia.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("error recording ai interaction: %w", err)
	}
	return &ia, nil
}
