package app

import (
	"fitai/internal/config"
	"fitai/internal/repository/db"
	"fitai/internal/security"
	"fitai/internal/service/ai"
	authService "fitai/internal/service/auth"
	fitnessService "fitai/internal/service/fitness"
	"fitai/internal/service/risk"
	userService "fitai/internal/service/user"
)

// Config holds all application dependencies and configuration
type Config struct {
	// Database interface for data persistence
	DB db.Database
	// Centralized application configuration
	AppConfig *config.AppConfig

	Tokens  *security.TokenIssuer
	Gateway *ai.Gateway
	Usage   *ai.UsageTracker

	Auth    *authService.Service
	Users   *userService.Service
	Fitness *fitnessService.Service
}

// NewConfig wires the service graph on top of the store and the loaded
// configuration
func NewConfig(database db.Database, appConfig *config.AppConfig) *Config {
	tokens := security.NewTokenIssuer(appConfig.Auth.JWTSecret, appConfig.Auth.TokenExpiration)
	usage := ai.NewUsageTracker(appConfig.AI.DailyBudgetRub)
	gateway := ai.NewGateway(appConfig.AI, appConfig.Models, usage)
	interpreter := risk.NewHeuristicInterpreter()

	return &Config{
		DB:        database,
		AppConfig: appConfig,
		Tokens:    tokens,
		Gateway:   gateway,
		Usage:     usage,
		Auth:      authService.NewService(database, tokens, appConfig.Telegram, appConfig.Google),
		Users:     userService.NewService(database),
		Fitness:   fitnessService.NewService(database, gateway, interpreter),
	}
}

// ModelsConfig exposes the model fallback configuration
func (c *Config) ModelsConfig() *config.ModelsConfig {
	return c.AppConfig.Models
}
