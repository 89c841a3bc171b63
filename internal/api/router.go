// Package api assembles the HTTP surface.
package api

import (
	"net/http"

	"fitai/internal/api/handlers"
	"fitai/internal/app"

	"github.com/gorilla/mux"
)

// NewRouter builds the full route table on the application config
func NewRouter(config *app.Config) http.Handler {
	authHandlers := handlers.NewAuthHandlers(config)
	userHandlers := handlers.NewUserHandlers(config)
	planHandlers := handlers.NewPlanHandlers(config)
	recHandlers := handlers.NewRecommendationHandlers(config)
	challengeHandlers := handlers.NewChallengeHandlers(config)
	historyHandlers := handlers.NewHistoryHandlers(config)
	injuryHandlers := handlers.NewInjuryHandlers(config)
	aiHandlers := handlers.NewAIHandlers(config)

	middleware := handlers.NewMiddleware(config.Tokens, config.DB)
	protect := middleware.Authenticate

	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}).Methods(http.MethodGet)

	// Public auth endpoints
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", authHandlers.RegisterHandler).Methods(http.MethodPost)
	auth.HandleFunc("/login", authHandlers.LoginHandler).Methods(http.MethodPost)
	auth.HandleFunc("/google-auth", authHandlers.GoogleAuthHandler).Methods(http.MethodPost)
	auth.HandleFunc("/telegram-auth", authHandlers.TelegramAuthHandler).Methods(http.MethodPost)

	// Profile and measurements
	users := api.PathPrefix("/users").Subrouter()
	users.HandleFunc("/me", protect(userHandlers.GetProfileHandler)).Methods(http.MethodGet)
	users.HandleFunc("/me", protect(userHandlers.UpdateProfileHandler)).Methods(http.MethodPut)
	users.HandleFunc("/me/anthropometrics", protect(userHandlers.GetAnthropometricsHandler)).Methods(http.MethodGet)
	users.HandleFunc("/me/anthropometrics", protect(userHandlers.SaveAnthropometricsHandler)).Methods(http.MethodPost)
	users.HandleFunc("/me/anthropometrics", protect(userHandlers.UpdateAnthropometricsHandler)).Methods(http.MethodPut)

	// Workout plans
	plans := api.PathPrefix("/workout-plans").Subrouter()
	plans.HandleFunc("", protect(planHandlers.ListPlansHandler)).Methods(http.MethodGet)
	plans.HandleFunc("", protect(planHandlers.CreatePlanHandler)).Methods(http.MethodPost)
	plans.HandleFunc("/{id:[0-9]+}", protect(planHandlers.GetPlanHandler)).Methods(http.MethodGet)
	plans.HandleFunc("/{id:[0-9]+}/complete", protect(planHandlers.CompletePlanHandler)).Methods(http.MethodPost)
	plans.HandleFunc("/{id:[0-9]+}", protect(planHandlers.DeletePlanHandler)).Methods(http.MethodDelete)

	// Exercise recommendations
	recs := api.PathPrefix("/exercise-recommendations").Subrouter()
	recs.HandleFunc("", protect(recHandlers.ListRecommendationsHandler)).Methods(http.MethodGet)
	recs.HandleFunc("", protect(recHandlers.CreateRecommendationHandler)).Methods(http.MethodPost)
	recs.HandleFunc("/{id:[0-9]+}", protect(recHandlers.DeleteRecommendationHandler)).Methods(http.MethodDelete)

	// Weekly challenges
	challenges := api.PathPrefix("/weekly-challenges").Subrouter()
	challenges.HandleFunc("", protect(challengeHandlers.ListChallengesHandler)).Methods(http.MethodGet)
	challenges.HandleFunc("", protect(challengeHandlers.CreateChallengeHandler)).Methods(http.MethodPost)
	challenges.HandleFunc("/current", protect(challengeHandlers.CurrentChallengeHandler)).Methods(http.MethodGet)
	challenges.HandleFunc("/{id:[0-9]+}", protect(challengeHandlers.UpdateChallengeHandler)).Methods(http.MethodPatch)
	challenges.HandleFunc("/{id:[0-9]+}/complete", protect(challengeHandlers.CompleteChallengeHandler)).Methods(http.MethodPatch)
	challenges.HandleFunc("/{id:[0-9]+}", protect(challengeHandlers.DeleteChallengeHandler)).Methods(http.MethodDelete)

	// Workout history
	history := api.PathPrefix("/workout-history").Subrouter()
	history.HandleFunc("", protect(historyHandlers.ListHistoryHandler)).Methods(http.MethodGet)
	history.HandleFunc("", protect(historyHandlers.CreateHistoryHandler)).Methods(http.MethodPost)
	history.HandleFunc("/clear", protect(historyHandlers.ClearHistoryHandler)).Methods(http.MethodDelete)

	// Injury predictions
	injuries := api.PathPrefix("/injury-predictions").Subrouter()
	injuries.HandleFunc("", protect(injuryHandlers.ListPredictionsHandler)).Methods(http.MethodGet)
	injuries.HandleFunc("", protect(injuryHandlers.AnalyzeHandler)).Methods(http.MethodPost)
	injuries.HandleFunc("/{id:[0-9]+}", protect(injuryHandlers.DeletePredictionHandler)).Methods(http.MethodDelete)

	// AI gateway introspection
	ai := api.PathPrefix("/ai").Subrouter()
	ai.HandleFunc("/usage", protect(aiHandlers.UsageHandler)).Methods(http.MethodGet)
	ai.HandleFunc("/models", protect(aiHandlers.ModelsHandler)).Methods(http.MethodGet)

	return handlers.EnableCORS(r)
}
