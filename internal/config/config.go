package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server ServerConfig
	JWT    JWTConfig
	Auth   AuthConfig
	HeyGen HeyGenConfig
}

type ServerConfig struct {
	Host string
	Port int
	Mode string
}

type JWTConfig struct {
	Secret     string
	Expiration time.Duration
}

// AuthConfig holds the credentials accepted by the token-issuing endpoint.
type AuthConfig struct {
	Username string
	Password string
}

type HeyGenConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

func Load() (*Config, error) {
	// Optional .env for local development.
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnvAsInt("SERVER_PORT", 8080),
			Mode: getEnv("GIN_MODE", "debug"),
		},
		JWT: JWTConfig{
			Secret:     getEnv("JWT_SECRET", "your-secret-key"),
			Expiration: getEnvAsDuration("JWT_EXPIRATION", 24*time.Hour),
		},
		Auth: AuthConfig{
			Username: getEnv("GATEWAY_USERNAME", "admin"),
			Password: getEnv("GATEWAY_PASSWORD", "admin"),
		},
		HeyGen: HeyGenConfig{
			BaseURL: getEnv("HEYGEN_BASE_URL", "https://api.heygen.com/v1"),
			APIKey:  getEnv("HEYGEN_API_KEY", ""),
			Timeout: getEnvAsDuration("HEYGEN_TIMEOUT", 60*time.Second),
		},
	}

	if cfg.HeyGen.APIKey == "" {
		return nil, errors.New("HEYGEN_API_KEY is required")
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
