// Package auth implements registration and the password, Google and
// Telegram login flows.
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"fitai/internal/config"
	"fitai/internal/logger"
	"fitai/internal/repository/db"
	"fitai/internal/security"
	"fitai/internal/telegram"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrGoogleToken        = errors.New("invalid Google ID token")
	ErrUserCreation       = errors.New("failed to create user")
)

// staleAfter is how old a Telegram OAuth payload may be before it is
// rejected.
const staleAfter = 24 * time.Hour

// Result is a successful authentication: a bearer token plus the
// resolved user.
type Result struct {
	AccessToken string   `json:"access_token"`
	TokenType   string   `json:"token_type"`
	AuthMethod  string   `json:"auth_method,omitempty"`
	User        *db.User `json:"user"`
}

// Service implements all login flows against the user store
type Service struct {
	db         db.Database
	tokens     *security.TokenIssuer
	telegram   config.TelegramConfig
	google     config.GoogleConfig
	httpClient *http.Client
	now        func() time.Time
}

// NewService creates an auth service
func NewService(database db.Database, tokens *security.TokenIssuer, telegramCfg config.TelegramConfig, googleCfg config.GoogleConfig) *Service {
	return &Service{
		db:         database,
		tokens:     tokens,
		telegram:   telegramCfg,
		google:     googleCfg,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		now:        time.Now,
	}
}

// Register creates a password account. The email must not be in use.
func (s *Service) Register(email, username, password string) (*db.User, error) {
	if _, err := s.db.GetUserByEmail(email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, db.ErrNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hash, err := security.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.db.CreateUser(db.CreateUserParams{
		Email:        email,
		Username:     username,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// Login authenticates by email and password. OAuth-only accounts have no
// password hash and always fail here.
func (s *Service) Login(email, password string) (*Result, error) {
	user, err := s.db.GetUserByEmail(email)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if !security.VerifyPassword(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	return s.issueResult(user, "password")
}

type googleTokenInfo struct {
	Sub   string `json:"sub"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// GoogleLogin verifies a Google ID token against the tokeninfo endpoint
// and resolves the account: by Google id first, then by email with the
// Google id linked, otherwise a new account is created.
func (s *Service) GoogleLogin(ctx context.Context, idToken string) (*Result, error) {
	if idToken == "" {
		return nil, ErrGoogleToken
	}

	info, err := s.verifyGoogleToken(ctx, idToken)
	if err != nil {
		return nil, err
	}

	if user, err := s.db.GetUserByGoogleID(info.Sub); err == nil {
		return s.issueResult(user, "google")
	} else if !errors.Is(err, db.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if existing, err := s.db.GetUserByEmail(info.Email); err == nil {
		linked, err := s.db.UpdateUser(existing.ID, db.UserUpdate{GoogleID: &info.Sub})
		if err != nil {
			return nil, fmt.Errorf("failed to link Google account: %w", err)
		}
		logger.Log.WithFields(logrus.Fields{"user_id": linked.ID}).Info("Linked Google account to existing user")
		return s.issueResult(linked, "google")
	} else if !errors.Is(err, db.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	username := info.Name
	if username == "" {
		username = strings.SplitN(info.Email, "@", 2)[0]
	}
	user, err := s.db.CreateUser(db.CreateUserParams{
		Email:    info.Email,
		Username: username,
		GoogleID: &info.Sub,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	logger.Log.WithFields(logrus.Fields{"user_id": user.ID}).Info("Created new Google user")
	return s.issueResult(user, "google")
}

func (s *Service) verifyGoogleToken(ctx context.Context, idToken string) (*googleTokenInfo, error) {
	endpoint := s.google.TokenInfoURL + "?id_token=" + url.QueryEscape(idToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build tokeninfo request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tokeninfo request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, ErrGoogleToken
	}

	var info googleTokenInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("failed to decode tokeninfo response: %w", err)
	}
	if info.Sub == "" || info.Email == "" {
		return nil, ErrGoogleToken
	}
	return &info, nil
}

// TelegramLogin classifies the payload and runs the matching
// verification before resolving the account
func (s *Service) TelegramLogin(fields map[string]string) (*Result, error) {
	login, err := telegram.ParseLogin(fields, s.telegram.BotToken)
	if err != nil {
		return nil, err
	}

	switch l := login.(type) {
	case telegram.MockLogin:
		if !s.telegram.AllowMock {
			return nil, telegram.ErrMockAuthDisabled
		}
	case telegram.WebAppLogin:
		if s.telegram.BotToken == "" {
			return nil, telegram.ErrBotTokenNotSet
		}
		if !telegram.VerifySignature(l.Fields, s.telegram.BotToken) {
			return nil, telegram.ErrInvalidSignature
		}
	case telegram.OAuthLogin:
		if s.now().Unix()-l.AuthDate > int64(staleAfter.Seconds()) {
			return nil, telegram.ErrStaleCredential
		}
	}

	user, err := s.resolveTelegramUser(login.Profile(), login.AuthType())
	if err != nil {
		return nil, err
	}
	return s.issueResult(user, login.AuthType())
}

// resolveTelegramUser finds the account by Telegram id, refreshing the
// stored username on change, or creates one with a synthesized email.
func (s *Service) resolveTelegramUser(ident telegram.Identity, authType string) (*db.User, error) {
	user, err := s.db.GetUserByTelegramID(ident.TelegramID)
	if err == nil {
		if ident.Username != "" && user.Username != ident.Username {
			updated, err := s.db.UpdateUser(user.ID, db.UserUpdate{Username: &ident.Username})
			if err != nil {
				return nil, fmt.Errorf("failed to refresh username: %w", err)
			}
			return updated, nil
		}
		return user, nil
	}
	if !errors.Is(err, db.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	email := fmt.Sprintf("telegram_%d@%s.user", ident.TelegramID, authType)
	params := db.CreateUserParams{
		Email:      email,
		Username:   ident.Username,
		TelegramID: &ident.TelegramID,
	}

	user, err = s.db.CreateUser(params)
	if err == nil {
		logger.Log.WithFields(logrus.Fields{
			"user_id":     user.ID,
			"telegram_id": ident.TelegramID,
			"auth_type":   authType,
		}).Info("Created new Telegram user")
		return user, nil
	}
	if !errors.Is(err, db.ErrDuplicate) {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	// The synthesized email is taken; retry once with a random suffix.
	suffix := strings.SplitN(uuid.NewString(), "-", 2)[0]
	params.Email = fmt.Sprintf("telegram_%d_%s@%s.user", ident.TelegramID, suffix, authType)
	user, err = s.db.CreateUser(params)
	if err != nil {
		logger.Log.WithFields(logrus.Fields{
			"telegram_id": ident.TelegramID,
			"error":       err.Error(),
		}).Error("Telegram user creation failed twice")
		return nil, ErrUserCreation
	}
	return user, nil
}

func (s *Service) issueResult(user *db.User, authMethod string) (*Result, error) {
	token, err := s.tokens.IssueToken(user.ID, authMethod)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return &Result{
		AccessToken: token,
		TokenType:   "bearer",
		AuthMethod:  authMethod,
		User:        user,
	}, nil
}
