package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"fitai/internal/logger"

	"github.com/sirupsen/logrus"
)

// AppConfig holds all application configuration
type AppConfig struct {
	Server   ServerConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Telegram TelegramConfig
	Google   GoogleConfig
	AI       AIConfig
	Models   *ModelsConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port string
}

// DatabaseConfig holds database connection configuration
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// AuthConfig holds token signing configuration
type AuthConfig struct {
	JWTSecret       []byte
	TokenExpiration time.Duration
}

// TelegramConfig holds Telegram login verification configuration
type TelegramConfig struct {
	BotToken string
	// AllowMock enables the unverified mock login path. Development only.
	AllowMock bool
}

// GoogleConfig holds Google token verification configuration
type GoogleConfig struct {
	// TokenInfoURL is overridable so tests can point it at a local server.
	TokenInfoURL string
}

// AIConfig holds OpenRouter gateway configuration
type AIConfig struct {
	OpenRouterAPIKey string
	BaseURL          string
	DailyBudgetRub   float64
	RequestTimeout   time.Duration
	MaxTokens        int
}

// LoadConfig loads and validates application configuration from environment
func LoadConfig() (*AppConfig, error) {
	config := &AppConfig{}

	config.Server = ServerConfig{
		Port: getEnvOrDefault("SERVER_PORT", "8080"),
	}

	config.Database = DatabaseConfig{
		Host:     getEnvOrDefault("DB_HOST", "postgres"),
		Port:     getEnvOrDefault("DB_PORT", "5432"),
		User:     getEnvOrDefault("DB_USER", "postgres"),
		Password: getEnvOrDefault("DB_PASSWORD", "postgres"),
		Name:     getEnvOrDefault("DB_NAME", "fitai"),
		SSLMode:  getEnvOrDefault("DB_SSLMODE", "disable"),
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable must be set")
	}
	if len(jwtSecret) < 32 {
		return nil, fmt.Errorf("JWT_SECRET must be at least 32 characters (current length: %d)", len(jwtSecret))
	}

	config.Auth = AuthConfig{
		JWTSecret:       []byte(jwtSecret),
		TokenExpiration: getEnvAsDuration("JWT_TOKEN_EXPIRATION", 30*time.Minute),
	}

	config.Telegram = TelegramConfig{
		BotToken:  os.Getenv("TELEGRAM_BOT_TOKEN"),
		AllowMock: getEnvAsBool("TELEGRAM_ALLOW_MOCK", false),
	}
	if config.Telegram.BotToken == "" {
		logger.Log.Warn("TELEGRAM_BOT_TOKEN not set, Web App signature verification disabled")
	}

	config.Google = GoogleConfig{
		TokenInfoURL: getEnvOrDefault("GOOGLE_TOKENINFO_URL", "https://oauth2.googleapis.com/tokeninfo"),
	}

	apiKey := os.Getenv("OPENROUTER_API_KEY")
	if apiKey == "" {
		logger.Log.Warn("OPENROUTER_API_KEY not set, AI gateway will serve demo responses")
	}

	config.AI = AIConfig{
		OpenRouterAPIKey: apiKey,
		BaseURL:          getEnvOrDefault("OPENROUTER_BASE_URL", "https://openrouter.ai/api/v1"),
		DailyBudgetRub:   getEnvAsFloat("AI_DAILY_BUDGET_RUB", 100.0),
		RequestTimeout:   getEnvAsDuration("AI_REQUEST_TIMEOUT", 30*time.Second),
		MaxTokens:        getEnvAsInt("AI_MAX_TOKENS", 4000),
	}

	modelsConfigPath := getEnvOrDefault("MODELS_CONFIG_PATH", "config/models.json")
	modelsConfig, err := NewModelsConfig(modelsConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load models config: %w", err)
	}
	config.Models = modelsConfig

	return config, nil
}

// GetDSN returns the database connection string
func (c *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode,
	)
}

// Helper functions for environment variable parsing

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		logger.Log.WithFields(logrus.Fields{"key": key, "default": defaultValue}).Warn("Invalid integer value, using default")
		return defaultValue
	}
	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		logger.Log.WithFields(logrus.Fields{"key": key, "default": defaultValue}).Warn("Invalid float value, using default")
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		logger.Log.WithFields(logrus.Fields{"key": key, "default": defaultValue}).Warn("Invalid boolean value, using default")
		return defaultValue
	}
	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		logger.Log.WithFields(logrus.Fields{"key": key, "default": defaultValue}).Warn("Invalid duration value, using default")
		return defaultValue
	}
	return value
}
