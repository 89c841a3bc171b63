package postgres

import (
	"database/sql"
	"fmt"

	"fitai/internal/repository/db"
)

const predictionColumns = `id, user_id, workout_plan_id, exercises_analyzed, ai_risk_prediction, risk_level, risk_factors, recommendations, created_at`

func scanPredictionRow(scan func(dest ...interface{}) error) (*db.InjuryPrediction, error) {
	var pr db.InjuryPrediction
	err := scan(&pr.ID, &pr.UserID, &pr.WorkoutPlanID, &pr.ExercisesAnalyzed,
		&pr.AIRiskPrediction, &pr.RiskLevel, &pr.RiskFactors,
		&pr.Recommendations, &pr.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, db.ErrNotFound
		}
		return nil, fmt.Errorf("error retrieving injury prediction: %w", err)
	}
	return &pr, nil
}

// GetInjuryPrediction retrieves a prediction by id
func (p *PostgresDB) GetInjuryPrediction(id int64) (*db.InjuryPrediction, error) {
	query := `SELECT ` + predictionColumns + ` FROM injury_predictions WHERE id = $1`
	return scanPredictionRow(p.conn.QueryRow(query, id).Scan)
}

// GetInjuryPredictionsByUser retrieves a page of the user's predictions,
// newest first
func (p *PostgresDB) GetInjuryPredictionsByUser(userID int64, skip, limit int) ([]db.InjuryPrediction, error) {
	query := `SELECT ` + predictionColumns + `
	FROM injury_predictions WHERE user_id = $1
	ORDER BY created_at DESC OFFSET $2 LIMIT $3`

	rows, err := p.conn.Query(query, userID, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing injury predictions: %w", err)
	}
	defer rows.Close()

	var predictions []db.InjuryPrediction
	for rows.Next() {
		pr, err := scanPredictionRow(rows.Scan)
		if err != nil {
			return nil, err
		}
		predictions = append(predictions, *pr)
	}
	return predictions, rows.Err()
}

// CreateInjuryPrediction stores a new risk assessment
func (p *PostgresDB) CreateInjuryPrediction(params db.CreateInjuryPredictionParams) (*db.InjuryPrediction, error) {
	query := `
	INSERT INTO injury_predictions (user_id, workout_plan_id, exercises_analyzed, ai_risk_prediction, risk_level, risk_factors, recommendations)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	RETURNING ` + predictionColumns

	return scanPredictionRow(p.conn.QueryRow(query, params.UserID,
		params.WorkoutPlanID, params.ExercisesAnalyzed, params.AIRiskPrediction,
		params.RiskLevel, params.RiskFactors, params.Recommendations).Scan)
}

// DeleteInjuryPrediction removes a prediction row
func (p *PostgresDB) DeleteInjuryPrediction(id int64) error {
	result, err := p.conn.Exec(`DELETE FROM injury_predictions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting injury prediction: %w", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return db.ErrNotFound
	}
	return nil
}
