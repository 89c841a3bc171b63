package handlers

import (
	"net/http"

	"fitai/internal/app"
	"fitai/internal/config"
	"fitai/internal/service/ai"
)

// AIHandlers serves gateway introspection endpoints
type AIHandlers struct {
	gateway *ai.Gateway
	models  *config.ModelsConfig
}

// NewAIHandlers creates AI handlers
func NewAIHandlers(cfg *app.Config) *AIHandlers {
	return &AIHandlers{
		gateway: cfg.Gateway,
		models:  cfg.ModelsConfig(),
	}
}

type UsageResponse struct {
	ai.UsageStats
	DemoMode bool `json:"demo_mode"`
}

// UsageHandler returns today's spending snapshot
func (h *AIHandlers) UsageHandler(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, UsageResponse{
		UsageStats: h.gateway.Usage(),
		DemoMode:   h.gateway.DemoMode(),
	})
}

type ModelsResponse struct {
	Models []config.Model `json:"models"`
}

// ModelsHandler returns the configured fallback models
func (h *AIHandlers) ModelsHandler(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, ModelsResponse{Models: h.models.Models()})
}
