// Package config loads the immutable process configuration. Load is
// called once in main and the resulting struct is passed explicitly to
// every component; there is no cached global.
package config

import (
	"os"
	"strconv"
	"time"

	goerrors "github.com/goliatone/go-errors"
	"github.com/joho/godotenv"
)

const (
	DefaultProjectName     = "Meetyfi"
	DefaultHTTPAddr        = ":8000"
	DefaultMongoDBName     = "meetyfi"
	DefaultTokenExpire     = 30 * time.Minute
	DefaultCORSOrigins     = "*"
	DefaultShutdownTimeout = 10 * time.Second
	defaultTokenMinutes    = 30
)

type Config struct {
	ProjectName     string
	HTTPAddr        string
	MongoURI        string
	MongoDBName     string
	SigningKey      string
	TokenTTL        time.Duration
	EmailAPIKey     string
	EmailSender     string
	CORSOrigins     string
	ShutdownTimeout time.Duration
}

// Load reads configuration from the environment, honoring a .env file
// when present. MONGODB_URL and SECRET_KEY are required.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		ProjectName:     GetEnvAsString("PROJECT_NAME", DefaultProjectName),
		HTTPAddr:        GetEnvAsString("HTTP_ADDR", DefaultHTTPAddr),
		MongoURI:        os.Getenv("MONGODB_URL"),
		MongoDBName:     GetEnvAsString("MONGODB_DATABASE", DefaultMongoDBName),
		SigningKey:      os.Getenv("SECRET_KEY"),
		TokenTTL:        time.Duration(GetEnvAsInt("ACCESS_TOKEN_EXPIRE_MINUTES", defaultTokenMinutes)) * time.Minute,
		EmailAPIKey:     os.Getenv("EMAIL_API_KEY"),
		EmailSender:     GetEnvAsString("EMAIL_SENDER", "no-reply@meetyfi.example"),
		CORSOrigins:     GetEnvAsString("CORS_ORIGINS", DefaultCORSOrigins),
		ShutdownTimeout: GetEnvAsDuration("SHUTDOWN_TIMEOUT", DefaultShutdownTimeout),
	}

	if cfg.MongoURI == "" {
		return nil, goerrors.New("MONGODB_URL is required", goerrors.CategoryValidation)
	}
	if cfg.SigningKey == "" {
		return nil, goerrors.New("SECRET_KEY is required", goerrors.CategoryValidation)
	}

	return cfg, nil
}

// GetEnvAsString gets environment variable as string with default value
func GetEnvAsString(key string, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetEnvAsInt gets environment variable as int with default value
func GetEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// GetEnvAsDuration gets environment variable as duration with default value
func GetEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
