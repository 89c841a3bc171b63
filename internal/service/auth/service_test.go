package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"fitai/internal/config"
	"fitai/internal/repository/db"
	"fitai/internal/security"
	"fitai/internal/telegram"
	"fitai/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBotToken = "123456:test-bot-token"

func newTestService(database db.Database, telegramCfg config.TelegramConfig) *Service {
	tokens := security.NewTokenIssuer([]byte("0123456789abcdef0123456789abcdef"), 30*time.Minute)
	return NewService(database, tokens, telegramCfg, config.GoogleConfig{})
}

func TestRegisterAndLogin(t *testing.T) {
	var stored db.User
	mock := &testutil.MockDatabase{
		GetUserByEmailFunc: func(email string) (*db.User, error) {
			if stored.Email == email {
				return &stored, nil
			}
			return nil, db.ErrNotFound
		},
		CreateUserFunc: func(params db.CreateUserParams) (*db.User, error) {
			stored = db.User{ID: 1, Email: params.Email, Username: params.Username, PasswordHash: params.PasswordHash}
			return &stored, nil
		},
	}

	svc := newTestService(mock, config.TelegramConfig{})

	user, err := svc.Register("ivan@example.com", "ivan", "secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", user.PasswordHash)

	result, err := svc.Login("ivan@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "bearer", result.TokenType)
	assert.NotEmpty(t, result.AccessToken)

	_, err = svc.Login("ivan@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	mock := &testutil.MockDatabase{
		GetUserByEmailFunc: func(string) (*db.User, error) {
			return &db.User{ID: 1}, nil
		},
	}

	svc := newTestService(mock, config.TelegramConfig{})
	_, err := svc.Register("taken@example.com", "ivan", "secret123")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLoginOAuthOnlyAccount(t *testing.T) {
	mock := &testutil.MockDatabase{
		GetUserByEmailFunc: func(string) (*db.User, error) {
			// OAuth account: no password hash.
			return &db.User{ID: 1, PasswordHash: ""}, nil
		},
	}

	svc := newTestService(mock, config.TelegramConfig{})
	_, err := svc.Login("oauth@example.com", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestTelegramMockDisabled(t *testing.T) {
	svc := newTestService(&testutil.MockDatabase{}, config.TelegramConfig{AllowMock: false})

	_, err := svc.TelegramLogin(map[string]string{"auth_type": "mock", "id": "777"})
	assert.ErrorIs(t, err, telegram.ErrMockAuthDisabled)
}

func TestTelegramMockCreatesUser(t *testing.T) {
	var created db.CreateUserParams
	mock := &testutil.MockDatabase{
		GetUserByTelegramIDFunc: func(int64) (*db.User, error) {
			return nil, db.ErrNotFound
		},
		CreateUserFunc: func(params db.CreateUserParams) (*db.User, error) {
			created = params
			return &db.User{ID: 10, Email: params.Email, Username: params.Username, TelegramID: params.TelegramID}, nil
		},
	}

	svc := newTestService(mock, config.TelegramConfig{AllowMock: true})
	result, err := svc.TelegramLogin(map[string]string{"auth_type": "mock", "id": "777", "username": "tester"})
	require.NoError(t, err)

	assert.Equal(t, "mock", result.AuthMethod)
	assert.Equal(t, "telegram_777@mock.user", created.Email)
	require.NotNil(t, created.TelegramID)
	assert.Equal(t, int64(777), *created.TelegramID)
}

func TestTelegramDuplicateEmailRetries(t *testing.T) {
	var attempts []string
	mock := &testutil.MockDatabase{
		GetUserByTelegramIDFunc: func(int64) (*db.User, error) {
			return nil, db.ErrNotFound
		},
		CreateUserFunc: func(params db.CreateUserParams) (*db.User, error) {
			attempts = append(attempts, params.Email)
			if len(attempts) == 1 {
				return nil, db.ErrDuplicate
			}
			return &db.User{ID: 11, Email: params.Email}, nil
		},
	}

	svc := newTestService(mock, config.TelegramConfig{AllowMock: true})
	_, err := svc.TelegramLogin(map[string]string{"auth_type": "mock", "id": "777"})
	require.NoError(t, err)

	require.Len(t, attempts, 2)
	assert.Equal(t, "telegram_777@mock.user", attempts[0])
	assert.True(t, strings.HasPrefix(attempts[1], "telegram_777_"))
	assert.True(t, strings.HasSuffix(attempts[1], "@mock.user"))
	assert.NotEqual(t, attempts[0], attempts[1])
}

func TestTelegramDuplicateEmailTwiceFails(t *testing.T) {
	mock := &testutil.MockDatabase{
		GetUserByTelegramIDFunc: func(int64) (*db.User, error) {
			return nil, db.ErrNotFound
		},
		CreateUserFunc: func(db.CreateUserParams) (*db.User, error) {
			return nil, db.ErrDuplicate
		},
	}

	svc := newTestService(mock, config.TelegramConfig{AllowMock: true})
	_, err := svc.TelegramLogin(map[string]string{"auth_type": "mock", "id": "777"})
	assert.ErrorIs(t, err, ErrUserCreation)
}

func TestTelegramUsernameRefresh(t *testing.T) {
	var updated *db.UserUpdate
	mock := &testutil.MockDatabase{
		GetUserByTelegramIDFunc: func(telegramID int64) (*db.User, error) {
			return &db.User{ID: 5, Username: "old_name", TelegramID: &telegramID}, nil
		},
		UpdateUserFunc: func(id int64, update db.UserUpdate) (*db.User, error) {
			updated = &update
			return &db.User{ID: 5, Username: *update.Username}, nil
		},
	}

	svc := newTestService(mock, config.TelegramConfig{AllowMock: true})
	result, err := svc.TelegramLogin(map[string]string{"auth_type": "mock", "id": "5", "username": "new_name"})
	require.NoError(t, err)

	require.NotNil(t, updated)
	assert.Equal(t, "new_name", *updated.Username)
	assert.Equal(t, "new_name", result.User.Username)
}

func TestTelegramWebAppSignature(t *testing.T) {
	mock := &testutil.MockDatabase{
		GetUserByTelegramIDFunc: func(telegramID int64) (*db.User, error) {
			return &db.User{ID: 7, Username: "ivan_fit", TelegramID: &telegramID}, nil
		},
	}
	svc := newTestService(mock, config.TelegramConfig{BotToken: testBotToken})

	fields := map[string]string{
		"auth_type": "webapp",
		"id":        "987654321",
		"username":  "ivan_fit",
		"auth_date": "1700000000",
	}
	fields["hash"] = telegram.ComputeSignature(fields, testBotToken)

	result, err := svc.TelegramLogin(fields)
	require.NoError(t, err)
	assert.Equal(t, "webapp", result.AuthMethod)

	// Any field change breaks the signature.
	fields["id"] = "111"
	_, err = svc.TelegramLogin(fields)
	assert.ErrorIs(t, err, telegram.ErrInvalidSignature)
}

func TestTelegramWebAppWithoutBotToken(t *testing.T) {
	svc := newTestService(&testutil.MockDatabase{}, config.TelegramConfig{})

	_, err := svc.TelegramLogin(map[string]string{
		"auth_type": "webapp", "id": "5", "hash": "deadbeef",
	})
	assert.ErrorIs(t, err, telegram.ErrBotTokenNotSet)
}

func TestTelegramOAuthStale(t *testing.T) {
	mock := &testutil.MockDatabase{
		GetUserByTelegramIDFunc: func(telegramID int64) (*db.User, error) {
			return &db.User{ID: 7, TelegramID: &telegramID}, nil
		},
	}
	svc := newTestService(mock, config.TelegramConfig{})

	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	fresh := now.Add(-1 * time.Hour).Unix()
	_, err := svc.TelegramLogin(map[string]string{
		"auth_type": "oauth", "id": "7",
		"auth_date": formatUnix(fresh),
	})
	require.NoError(t, err)

	stale := now.Add(-25 * time.Hour).Unix()
	_, err = svc.TelegramLogin(map[string]string{
		"auth_type": "oauth", "id": "7",
		"auth_date": formatUnix(stale),
	})
	assert.ErrorIs(t, err, telegram.ErrStaleCredential)
}

func formatUnix(v int64) string {
	return strconv.FormatInt(v, 10)
}

func TestGoogleLoginLinksExistingAccount(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "token-abc", r.URL.Query().Get("id_token"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"sub": "google-123", "email": "ivan@example.com", "name": "Ivan"}`))
	}))
	defer server.Close()

	var linked *db.UserUpdate
	mock := &testutil.MockDatabase{
		GetUserByGoogleIDFunc: func(string) (*db.User, error) {
			return nil, db.ErrNotFound
		},
		GetUserByEmailFunc: func(string) (*db.User, error) {
			return &db.User{ID: 3, Email: "ivan@example.com"}, nil
		},
		UpdateUserFunc: func(id int64, update db.UserUpdate) (*db.User, error) {
			linked = &update
			return &db.User{ID: 3, Email: "ivan@example.com", GoogleID: update.GoogleID}, nil
		},
	}

	tokens := security.NewTokenIssuer([]byte("0123456789abcdef0123456789abcdef"), 30*time.Minute)
	svc := NewService(mock, tokens, config.TelegramConfig{}, config.GoogleConfig{TokenInfoURL: server.URL})

	result, err := svc.GoogleLogin(context.Background(), "token-abc")
	require.NoError(t, err)

	require.NotNil(t, linked)
	assert.Equal(t, "google-123", *linked.GoogleID)
	assert.Equal(t, "google", result.AuthMethod)
}

func TestGoogleLoginRejectedToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	tokens := security.NewTokenIssuer([]byte("0123456789abcdef0123456789abcdef"), 30*time.Minute)
	svc := NewService(&testutil.MockDatabase{}, tokens, config.TelegramConfig{}, config.GoogleConfig{TokenInfoURL: server.URL})

	_, err := svc.GoogleLogin(context.Background(), "bad-token")
	assert.ErrorIs(t, err, ErrGoogleToken)
}

func TestGoogleLoginCreatesUser(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"sub": "google-9", "email": "new@example.com"}`))
	}))
	defer server.Close()

	var created db.CreateUserParams
	mock := &testutil.MockDatabase{
		GetUserByGoogleIDFunc: func(string) (*db.User, error) { return nil, db.ErrNotFound },
		GetUserByEmailFunc:    func(string) (*db.User, error) { return nil, db.ErrNotFound },
		CreateUserFunc: func(params db.CreateUserParams) (*db.User, error) {
			created = params
			return &db.User{ID: 9, Email: params.Email, Username: params.Username}, nil
		},
	}

	tokens := security.NewTokenIssuer([]byte("0123456789abcdef0123456789abcdef"), 30*time.Minute)
	svc := NewService(mock, tokens, config.TelegramConfig{}, config.GoogleConfig{TokenInfoURL: server.URL})

	_, err := svc.GoogleLogin(context.Background(), "token")
	require.NoError(t, err)

	// No display name in the token: username falls back to the email
	// local part.
	assert.Equal(t, "new", created.Username)
	require.NotNil(t, created.GoogleID)
	assert.Equal(t, "google-9", *created.GoogleID)
	assert.Empty(t, created.PasswordHash)
}
