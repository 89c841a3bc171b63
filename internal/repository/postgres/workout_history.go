package postgres

import (
	"database/sql"
	"fmt"

	"fitai/internal/logger"
	"fitai/internal/repository/db"

	"github.com/sirupsen/logrus"
)

const historyColumns = `id, user_id, plan_id, exercises_completed, session_duration, perceived_exertion, user_feedback, notes, completed_at`

func scanHistoryRow(scan func(dest ...interface{}) error) (*db.WorkoutHistory, error) {
	var h db.WorkoutHistory
	err := scan(&h.ID, &h.UserID, &h.PlanID, &h.ExercisesCompleted,
		&h.SessionDuration, &h.PerceivedExertion, &h.UserFeedback,
		&h.Notes, &h.CompletedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, db.ErrNotFound
		}
		return nil, fmt.Errorf("error retrieving workout history: %w", err)
	}
	return &h, nil
}

// GetWorkoutHistoryByUser retrieves a page of the user's completed
// workouts, newest first
func (p *PostgresDB) GetWorkoutHistoryByUser(userID int64, skip, limit int) ([]db.WorkoutHistory, error) {
	query := `SELECT ` + historyColumns + `
	FROM workout_history WHERE user_id = $1
	ORDER BY completed_at DESC OFFSET $2 LIMIT $3`

	rows, err := p.conn.Query(query, userID, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing workout history: %w", err)
	}
	defer rows.Close()

	var history []db.WorkoutHistory
	for rows.Next() {
		h, err := scanHistoryRow(rows.Scan)
		if err != nil {
			return nil, err
		}
		history = append(history, *h)
	}
	return history, rows.Err()
}

// CreateWorkoutHistory records a completed workout
func (p *PostgresDB) CreateWorkoutHistory(params db.CreateWorkoutHistoryParams) (*db.WorkoutHistory, error) {
	query := `
	INSERT INTO workout_history (user_id, plan_id, exercises_completed, session_duration, perceived_exertion, user_feedback, notes)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	RETURNING ` + historyColumns

	var exercises interface{}
	if len(params.ExercisesCompleted) > 0 {
		exercises = []byte(params.ExercisesCompleted)
	}
	return scanHistoryRow(p.conn.QueryRow(query, params.UserID, params.PlanID,
		exercises, params.SessionDuration, params.PerceivedExertion,
		params.UserFeedback, params.Notes).Scan)
}

// DeleteWorkoutHistoryByUser removes all of the user's history rows and
// reports how many were deleted
func (p *PostgresDB) DeleteWorkoutHistoryByUser(userID int64) (int64, error) {
	result, err := p.conn.Exec(`DELETE FROM workout_history WHERE user_id = $1`, userID)
	if err != nil {
		return 0, fmt.Errorf("error clearing workout history: %w", err)
	}
	affected, _ := result.RowsAffected()
	logger.Log.WithFields(logrus.Fields{
		"user_id": userID,
		"deleted": affected,
	}).Info("Cleared workout history")
	return affected, nil
}
