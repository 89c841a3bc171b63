package postgres

import (
	"database/sql"
	"fmt"

	"fitai/internal/repository/db"
)

const recommendationColumns = `id, user_id, user_limitations, limitations_type, ai_recommended_exercises, created_at`

func scanRecommendationRow(scan func(dest ...interface{}) error) (*db.ExerciseRecommendation, error) {
	var rec db.ExerciseRecommendation
	err := scan(&rec.ID, &rec.UserID, &rec.UserLimitations, &rec.LimitationsType,
		&rec.AIRecommendedExercises, &rec.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, db.ErrNotFound
		}
		return nil, fmt.Errorf("error retrieving exercise recommendation: %w", err)
	}
	return &rec, nil
}

// GetExerciseRecommendation retrieves a recommendation by id
func (p *PostgresDB) GetExerciseRecommendation(id int64) (*db.ExerciseRecommendation, error) {
	query := `SELECT ` + recommendationColumns + ` FROM exercise_recommendations WHERE id = $1`
	return scanRecommendationRow(p.conn.QueryRow(query, id).Scan)
}

// GetExerciseRecommendationsByUser retrieves a page of the user's
// recommendations, newest first
func (p *PostgresDB) GetExerciseRecommendationsByUser(userID int64, skip, limit int) ([]db.ExerciseRecommendation, error) {
	query := `SELECT ` + recommendationColumns + `
	FROM exercise_recommendations WHERE user_id = $1
	ORDER BY created_at DESC OFFSET $2 LIMIT $3`

	rows, err := p.conn.Query(query, userID, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing exercise recommendations: %w", err)
	}
	defer rows.Close()

	var recs []db.ExerciseRecommendation
	for rows.Next() {
		rec, err := scanRecommendationRow(rows.Scan)
		if err != nil {
			return nil, err
		}
		recs = append(recs, *rec)
	}
	return recs, rows.Err()
}

// CreateExerciseRecommendation inserts a new recommendation row
func (p *PostgresDB) CreateExerciseRecommendation(params db.CreateExerciseRecommendationParams) (*db.ExerciseRecommendation, error) {
	query := `
	INSERT INTO exercise_recommendations (user_id, user_limitations, limitations_type, ai_recommended_exercises)
	VALUES ($1, $2, $3, $4)
	RETURNING ` + recommendationColumns

	return scanRecommendationRow(p.conn.QueryRow(query, params.UserID,
		params.UserLimitations, params.LimitationsType,
		params.AIRecommendedExercises).Scan)
}

// DeleteExerciseRecommendation removes a recommendation row
func (p *PostgresDB) DeleteExerciseRecommendation(id int64) error {
	result, err := p.conn.Exec(`DELETE FROM exercise_recommendations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting exercise recommendation: %w", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return db.ErrNotFound
	}
	return nil
}
