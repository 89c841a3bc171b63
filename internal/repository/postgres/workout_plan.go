package postgres

import (
	"database/sql"
	"fmt"

	"fitai/internal/repository/db"
)

const workoutPlanColumns = `id, user_id, user_request, ai_generated_plan, plan_type, difficulty, duration_minutes, is_completed, created_at`

func scanWorkoutPlanRow(scan func(dest ...interface{}) error) (*db.WorkoutPlan, error) {
	var plan db.WorkoutPlan
	err := scan(&plan.ID, &plan.UserID, &plan.UserRequest, &plan.AIGeneratedPlan,
		&plan.PlanType, &plan.Difficulty, &plan.DurationMinutes,
		&plan.IsCompleted, &plan.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, db.ErrNotFound
		}
		return nil, fmt.Errorf("error retrieving workout plan: %w", err)
	}
	return &plan, nil
}

// GetWorkoutPlan retrieves a plan by id
func (p *PostgresDB) GetWorkoutPlan(id int64) (*db.WorkoutPlan, error) {
	query := `SELECT ` + workoutPlanColumns + ` FROM workout_plans WHERE id = $1`
	return scanWorkoutPlanRow(p.conn.QueryRow(query, id).Scan)
}

// GetWorkoutPlansByUser retrieves a page of the user's plans, newest first
func (p *PostgresDB) GetWorkoutPlansByUser(userID int64, skip, limit int) ([]db.WorkoutPlan, error) {
	query := `SELECT ` + workoutPlanColumns + `
	FROM workout_plans WHERE user_id = $1
	ORDER BY created_at DESC OFFSET $2 LIMIT $3`

	rows, err := p.conn.Query(query, userID, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing workout plans: %w", err)
	}
	defer rows.Close()

	var plans []db.WorkoutPlan
	for rows.Next() {
		plan, err := scanWorkoutPlanRow(rows.Scan)
		if err != nil {
			return nil, err
		}
		plans = append(plans, *plan)
	}
	return plans, rows.Err()
}

// CreateWorkoutPlan inserts a new plan row
func (p *PostgresDB) CreateWorkoutPlan(params db.CreateWorkoutPlanParams) (*db.WorkoutPlan, error) {
	query := `
	INSERT INTO workout_plans (user_id, user_request, ai_generated_plan, plan_type, difficulty, duration_minutes)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING ` + workoutPlanColumns

	return scanWorkoutPlanRow(p.conn.QueryRow(query, params.UserID,
		params.UserRequest, params.AIGeneratedPlan, params.PlanType,
		params.Difficulty, params.DurationMinutes).Scan)
}

// MarkWorkoutPlanCompleted flips the completion flag
func (p *PostgresDB) MarkWorkoutPlanCompleted(id int64) (*db.WorkoutPlan, error) {
	query := `UPDATE workout_plans SET is_completed = TRUE WHERE id = $1 RETURNING ` + workoutPlanColumns
	return scanWorkoutPlanRow(p.conn.QueryRow(query, id).Scan)
}

// DeleteWorkoutPlan removes a plan row
func (p *PostgresDB) DeleteWorkoutPlan(id int64) error {
	result, err := p.conn.Exec(`DELETE FROM workout_plans WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting workout plan: %w", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return db.ErrNotFound
	}
	return nil
}
