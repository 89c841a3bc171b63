package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"fitai/internal/repository/db"
)

const challengeColumns = `id, user_id, ai_generated_challenge, week_number, challenge_type, target_metrics, completed, completed_at, created_at`

func scanChallengeRow(scan func(dest ...interface{}) error) (*db.WeeklyChallenge, error) {
	var ch db.WeeklyChallenge
	var metrics []byte
	err := scan(&ch.ID, &ch.UserID, &ch.AIGeneratedChallenge, &ch.WeekNumber,
		&ch.ChallengeType, &metrics, &ch.Completed, &ch.CompletedAt, &ch.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, db.ErrNotFound
		}
		return nil, fmt.Errorf("error retrieving weekly challenge: %w", err)
	}
	if len(metrics) > 0 {
		if err := json.Unmarshal(metrics, &ch.TargetMetrics); err != nil {
			return nil, fmt.Errorf("error decoding target metrics: %w", err)
		}
	}
	return &ch, nil
}

// GetWeeklyChallenge retrieves a challenge by id
func (p *PostgresDB) GetWeeklyChallenge(id int64) (*db.WeeklyChallenge, error) {
	query := `SELECT ` + challengeColumns + ` FROM weekly_challenges WHERE id = $1`
	return scanChallengeRow(p.conn.QueryRow(query, id).Scan)
}

// GetWeeklyChallengesByUser retrieves a page of the user's challenges,
// newest first
func (p *PostgresDB) GetWeeklyChallengesByUser(userID int64, skip, limit int) ([]db.WeeklyChallenge, error) {
	query := `SELECT ` + challengeColumns + `
	FROM weekly_challenges WHERE user_id = $1
	ORDER BY created_at DESC OFFSET $2 LIMIT $3`

	rows, err := p.conn.Query(query, userID, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing weekly challenges: %w", err)
	}
	defer rows.Close()

	var challenges []db.WeeklyChallenge
	for rows.Next() {
		ch, err := scanChallengeRow(rows.Scan)
		if err != nil {
			return nil, err
		}
		challenges = append(challenges, *ch)
	}
	return challenges, rows.Err()
}

// GetWeeklyChallengeForWeek retrieves the user's challenge for a given
// week number
func (p *PostgresDB) GetWeeklyChallengeForWeek(userID int64, weekNumber int) (*db.WeeklyChallenge, error) {
	query := `SELECT ` + challengeColumns + `
	FROM weekly_challenges WHERE user_id = $1 AND week_number = $2
	ORDER BY created_at DESC LIMIT 1`
	return scanChallengeRow(p.conn.QueryRow(query, userID, weekNumber).Scan)
}

// CreateWeeklyChallenge inserts a new challenge row
func (p *PostgresDB) CreateWeeklyChallenge(params db.CreateWeeklyChallengeParams) (*db.WeeklyChallenge, error) {
	var metrics interface{}
	if len(params.TargetMetrics) > 0 {
		encoded, err := json.Marshal(params.TargetMetrics)
		if err != nil {
			return nil, fmt.Errorf("error encoding target metrics: %w", err)
		}
		metrics = encoded
	}

	query := `
	INSERT INTO weekly_challenges (user_id, ai_generated_challenge, week_number, challenge_type, target_metrics)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING ` + challengeColumns

	return scanChallengeRow(p.conn.QueryRow(query, params.UserID,
		params.AIGeneratedChallenge, params.WeekNumber, params.ChallengeType,
		metrics).Scan)
}

// UpdateWeeklyChallenge applies a partial status update
func (p *PostgresDB) UpdateWeeklyChallenge(id int64, update db.WeeklyChallengeUpdate) (*db.WeeklyChallenge, error) {
	query := `
	UPDATE weekly_challenges SET
		completed = COALESCE($2, completed)
	WHERE id = $1
	RETURNING ` + challengeColumns

	return scanChallengeRow(p.conn.QueryRow(query, id, update.Completed).Scan)
}

// MarkWeeklyChallengeCompleted flips the completion flag and stamps the
// completion time
func (p *PostgresDB) MarkWeeklyChallengeCompleted(id int64) (*db.WeeklyChallenge, error) {
	query := `
	UPDATE weekly_challenges SET completed = TRUE, completed_at = NOW()
	WHERE id = $1
	RETURNING ` + challengeColumns
	return scanChallengeRow(p.conn.QueryRow(query, id).Scan)
}

// DeleteWeeklyChallenge removes a challenge row
func (p *PostgresDB) DeleteWeeklyChallenge(id int64) error {
	result, err := p.conn.Exec(`DELETE FROM weekly_challenges WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting weekly challenge: %w", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return db.ErrNotFound
	}
	return nil
}
