package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"fitai/internal/logger"
	"fitai/internal/repository/db"
	"fitai/internal/security"
)

type contextKey string

const userContextKey contextKey = "user"

// Middleware authenticates requests and resolves the current user
type Middleware struct {
	tokens *security.TokenIssuer
	db     db.Database
}

// NewMiddleware creates the auth middleware
func NewMiddleware(tokens *security.TokenIssuer, database db.Database) *Middleware {
	return &Middleware{tokens: tokens, db: database}
}

// Authenticate verifies the bearer token and loads the user into the
// request context
func (m *Middleware) Authenticate(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			sendError(w, http.StatusUnauthorized, "Missing bearer token", nil)
			return
		}

		userID, err := m.tokens.VerifyToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			sendError(w, http.StatusUnauthorized, "Invalid or expired token", nil)
			return
		}

		user, err := m.db.GetUserByID(userID)
		if err != nil {
			if errors.Is(err, db.ErrNotFound) {
				sendError(w, http.StatusUnauthorized, "User not found", nil)
				return
			}
			logger.Log.WithField("error", err.Error()).Error("Failed to load user for request")
			sendError(w, http.StatusInternalServerError, "Error loading user", nil)
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

// currentUser returns the user placed in the context by Authenticate
func currentUser(r *http.Request) *db.User {
	user, _ := r.Context().Value(userContextKey).(*db.User)
	return user
}

// EnableCORS adds permissive CORS headers and answers preflights
func EnableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
