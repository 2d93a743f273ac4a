package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type Config struct {
	Server struct {
		Port         string
		ReadTimeout  time.Duration
		WriteTimeout time.Duration
	}

	WeatherAPI struct {
		APIKey  string
		Timeout time.Duration
	}

	Scheduler struct {
		Schedule  string
		Locations []string
	}

	CircuitBreaker struct {
		Timeout time.Duration
	}
}

func LoadConfig() (*Config, error) {
	// Load .env file if exists
	if err := godotenv.Load(); err != nil {
		zap.L().Info("No .env file found, using environment variables")
	}

	cfg := &Config{}

	// Server configuration
	cfg.Server.Port = getEnv("SERVER_PORT", "8080")
	cfg.Server.ReadTimeout = parseDuration(getEnv("SERVER_READ_TIMEOUT", "10s"))
	cfg.Server.WriteTimeout = parseDuration(getEnv("SERVER_WRITE_TIMEOUT", "10s"))

	// Weather API configuration
	cfg.WeatherAPI.APIKey = getEnv("WEATHERAPI_KEY", "")
	cfg.WeatherAPI.Timeout = parseDuration(getEnv("WEATHERAPI_TIMEOUT", "10s"))

	if cfg.WeatherAPI.APIKey == "" {
		return nil, fmt.Errorf("WEATHERAPI_KEY is required")
	}

	// Scheduler configuration
	cfg.Scheduler.Schedule = getEnv("REFRESH_SCHEDULE", "@every 15m")
	locations := getEnv("REFRESH_LOCATIONS", "Prague,London,Tokyo")
	cfg.Scheduler.Locations = strings.Split(locations, ",")

	// Circuit breaker configuration
	cfg.CircuitBreaker.Timeout = parseDuration(getEnv("CIRCUIT_BREAKER_TIMEOUT", "30s"))

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseDuration(value string) time.Duration {
	duration, err := time.ParseDuration(value)
	if err != nil {
		zap.L().Warn("Failed to parse duration", zap.String("value", value), zap.Error(err))
		return 0
	}
	return duration
}
