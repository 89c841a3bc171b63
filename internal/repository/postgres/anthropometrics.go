package postgres

import (
	"database/sql"
	"fmt"

	"fitai/internal/repository/db"
)

const anthropometricsColumns = `id, user_id, height_cm, weight_kg, age, gender, injuries, fitness_goals, created_at, updated_at`

func scanAnthropometrics(row *sql.Row) (*db.Anthropometrics, error) {
	var a db.Anthropometrics
	err := row.Scan(&a.ID, &a.UserID, &a.HeightCm, &a.WeightKg, &a.Age,
		&a.Gender, &a.Injuries, &a.FitnessGoals, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, db.ErrNotFound
		}
		return nil, fmt.Errorf("error retrieving anthropometrics: %w", err)
	}
	return &a, nil
}

// GetAnthropometricsByUserID returns the single measurements row of a user
func (p *PostgresDB) GetAnthropometricsByUserID(userID int64) (*db.Anthropometrics, error) {
	query := `SELECT ` + anthropometricsColumns + ` FROM user_anthropometrics WHERE user_id = $1`
	return scanAnthropometrics(p.conn.QueryRow(query, userID))
}

// CreateAnthropometrics inserts a measurements row
func (p *PostgresDB) CreateAnthropometrics(params db.CreateAnthropometricsParams) (*db.Anthropometrics, error) {
	query := `
	INSERT INTO user_anthropometrics (user_id, height_cm, weight_kg, age, gender, injuries, fitness_goals)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	RETURNING ` + anthropometricsColumns

	a, err := scanAnthropometrics(p.conn.QueryRow(query, params.UserID,
		params.HeightCm, params.WeightKg, params.Age, params.Gender,
		params.Injuries, params.FitnessGoals))
	if err != nil {
		return nil, fmt.Errorf("error creating anthropometrics: %w", err)
	}
	return a, nil
}

// UpdateAnthropometrics applies a partial update and returns the fresh row
func (p *PostgresDB) UpdateAnthropometrics(id int64, update db.AnthropometricsUpdate) (*db.Anthropometrics, error) {
	query := `
	UPDATE user_anthropometrics SET
		height_cm     = COALESCE($2, height_cm),
		weight_kg     = COALESCE($3, weight_kg),
		age           = COALESCE($4, age),
		gender        = COALESCE($5, gender),
		injuries      = COALESCE($6, injuries),
		fitness_goals = COALESCE($7, fitness_goals),
		updated_at    = NOW()
	WHERE id = $1
	RETURNING ` + anthropometricsColumns

	return scanAnthropometrics(p.conn.QueryRow(query, id, update.HeightCm,
		update.WeightKg, update.Age, update.Gender, update.Injuries,
		update.FitnessGoals))
}
