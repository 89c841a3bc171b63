package postgres

import (
	"database/sql"
	"fmt"

	"fitai/internal/logger"
	"fitai/internal/repository/db"

	"github.com/sirupsen/logrus"
)

const userColumns = `id, telegram_id, google_id, email, username, password_hash, fitness_level, created_at, updated_at`

func scanUser(row *sql.Row) (*db.User, error) {
	var user db.User
	err := row.Scan(&user.ID, &user.TelegramID, &user.GoogleID, &user.Email,
		&user.Username, &user.PasswordHash, &user.FitnessLevel,
		&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, db.ErrNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}
	return &user, nil
}

// GetUserByID retrieves a user by primary key
func (p *PostgresDB) GetUserByID(id int64) (*db.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(p.conn.QueryRow(query, id))
}

// GetUserByEmail retrieves a user by email
func (p *PostgresDB) GetUserByEmail(email string) (*db.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return scanUser(p.conn.QueryRow(query, email))
}

// GetUserByTelegramID retrieves a user by linked Telegram id
func (p *PostgresDB) GetUserByTelegramID(telegramID int64) (*db.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE telegram_id = $1`
	return scanUser(p.conn.QueryRow(query, telegramID))
}

// GetUserByGoogleID retrieves a user by linked Google subject id
func (p *PostgresDB) GetUserByGoogleID(googleID string) (*db.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE google_id = $1`
	return scanUser(p.conn.QueryRow(query, googleID))
}

// CreateUser inserts a new user row
func (p *PostgresDB) CreateUser(params db.CreateUserParams) (*db.User, error) {
	fitnessLevel := params.FitnessLevel
	if fitnessLevel == "" {
		fitnessLevel = "beginner"
	}

	query := `
	INSERT INTO users (telegram_id, google_id, email, username, password_hash, fitness_level)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING ` + userColumns

	user, err := scanUser(p.conn.QueryRow(query, params.TelegramID, params.GoogleID,
		params.Email, params.Username, params.PasswordHash, fitnessLevel))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, db.ErrDuplicate
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	logger.Log.WithFields(logrus.Fields{"username": user.Username, "user_id": user.ID}).Info("Created new user")

	return user, nil
}

// UpdateUser applies a partial update and returns the fresh row
func (p *PostgresDB) UpdateUser(id int64, update db.UserUpdate) (*db.User, error) {
	query := `
	UPDATE users SET
		username      = COALESCE($2, username),
		fitness_level = COALESCE($3, fitness_level),
		telegram_id   = COALESCE($4, telegram_id),
		google_id     = COALESCE($5, google_id),
		updated_at    = NOW()
	WHERE id = $1
	RETURNING ` + userColumns

	user, err := scanUser(p.conn.QueryRow(query, id, update.Username,
		update.FitnessLevel, update.TelegramID, update.GoogleID))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, db.ErrDuplicate
		}
		return nil, err
	}
	return user, nil
}
