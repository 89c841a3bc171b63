package main

import (
	"net/http"
	"time"

	"fitai/internal/api"
	"fitai/internal/app"
	"fitai/internal/config"
	"fitai/internal/logger"
	"fitai/internal/repository/postgres"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	// Missing .env is fine; configuration falls back to the environment.
	if err := godotenv.Load(); err == nil {
		logger.Log.Info("Loaded configuration from .env")
	}

	appConfig, err := config.LoadConfig()
	if err != nil {
		logger.Log.WithField("error", err.Error()).Fatal("Failed to load configuration")
	}

	database, err := postgres.NewPostgresDB(appConfig.Database)
	if err != nil {
		logger.Log.WithField("error", err.Error()).Fatal("Failed to connect to database")
	}
	defer database.Close()

	cfg := app.NewConfig(database, appConfig)
	router := api.NewRouter(cfg)

	server := &http.Server{
		Addr:         ":" + appConfig.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	logger.Log.WithFields(logrus.Fields{
		"port":      appConfig.Server.Port,
		"demo_mode": cfg.Gateway.DemoMode(),
	}).Info("Starting server")
	if err := server.ListenAndServe(); err != nil {
		logger.Log.WithField("error", err.Error()).Fatal("Server stopped")
	}
}
