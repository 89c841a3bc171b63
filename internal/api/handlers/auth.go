package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"fitai/internal/app"
	"fitai/internal/logger"
	authService "fitai/internal/service/auth"
	"fitai/internal/telegram"
	"fitai/pkg/validation"

	"github.com/sirupsen/logrus"
)

// AuthHandlers serves registration and all login endpoints
type AuthHandlers struct {
	auth      *authService.Service
	validator *validation.AuthRequestValidator
}

// NewAuthHandlers creates auth handlers from the application config
func NewAuthHandlers(config *app.Config) *AuthHandlers {
	return &AuthHandlers{
		auth:      config.Auth,
		validator: validation.NewAuthRequestValidator(),
	}
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type GoogleAuthRequest struct {
	IDToken string `json:"id_token"`
}

// RegisterHandler creates a password account
func (h *AuthHandlers) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if err := h.validator.ValidateRegisterRequest(req.Email, req.Username, req.Password); err != nil {
		sendError(w, http.StatusBadRequest, "Validation failed", err)
		return
	}

	user, err := h.auth.Register(req.Email, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, authService.ErrEmailTaken) {
			sendError(w, http.StatusBadRequest, "Email is already registered", nil)
			return
		}
		logger.Log.WithField("error", err.Error()).Error("Registration failed")
		sendError(w, http.StatusInternalServerError, "Registration failed", nil)
		return
	}

	respondJSON(w, http.StatusCreated, user)
}

// LoginHandler authenticates by email and password
func (h *AuthHandlers) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if err := h.validator.ValidateLoginRequest(req.Email, req.Password); err != nil {
		sendError(w, http.StatusBadRequest, "Validation failed", err)
		return
	}

	result, err := h.auth.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, authService.ErrInvalidCredentials) {
			sendError(w, http.StatusUnauthorized, "Invalid email or password", nil)
			return
		}
		logger.Log.WithField("error", err.Error()).Error("Login failed")
		sendError(w, http.StatusInternalServerError, "Login failed", nil)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// GoogleAuthHandler authenticates with a Google ID token
func (h *AuthHandlers) GoogleAuthHandler(w http.ResponseWriter, r *http.Request) {
	var req GoogleAuthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.IDToken == "" {
		sendError(w, http.StatusBadRequest, "id_token is required", nil)
		return
	}

	result, err := h.auth.GoogleLogin(r.Context(), req.IDToken)
	if err != nil {
		if errors.Is(err, authService.ErrGoogleToken) {
			sendError(w, http.StatusUnauthorized, "Invalid Google ID token", nil)
			return
		}
		logger.Log.WithField("error", err.Error()).Error("Google login failed")
		sendError(w, http.StatusInternalServerError, "Google login failed", nil)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// TelegramAuthHandler authenticates a Telegram payload of any variant.
// Numbers are decoded with json.Number so signature checks see the exact
// wire form.
func (h *AuthHandlers) TelegramAuthHandler(w http.ResponseWriter, r *http.Request) {
	var payload map[string]interface{}
	decoder := json.NewDecoder(r.Body)
	decoder.UseNumber()
	if err := decoder.Decode(&payload); err != nil {
		sendError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	fields := telegram.FlattenPayload(payload)
	result, err := h.auth.TelegramLogin(fields)
	if err != nil {
		switch {
		case errors.Is(err, telegram.ErrInvalidSignature):
			sendError(w, http.StatusUnauthorized, "Invalid Web App signature", nil)
		case errors.Is(err, telegram.ErrStaleCredential):
			sendError(w, http.StatusUnauthorized, "Auth data is stale", nil)
		case errors.Is(err, telegram.ErrMockAuthDisabled):
			sendError(w, http.StatusForbidden, "Mock authentication is disabled", nil)
		case errors.Is(err, telegram.ErrBotTokenNotSet):
			sendError(w, http.StatusServiceUnavailable, "Telegram login is not configured", nil)
		case errors.Is(err, telegram.ErrMissingID), errors.Is(err, telegram.ErrMissingAuthDate), errors.Is(err, telegram.ErrUnknownAuthType):
			sendError(w, http.StatusBadRequest, "Invalid Telegram payload", err)
		default:
			logger.Log.WithFields(logrus.Fields{"error": err.Error()}).Error("Telegram login failed")
			sendError(w, http.StatusInternalServerError, "Telegram login failed", nil)
		}
		return
	}

	respondJSON(w, http.StatusOK, result)
}
