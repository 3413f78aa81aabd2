package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/soundvault/soundvault/internal/constants"
)

// Config holds all application configuration
type Config struct {
	Port      string
	DBPath    string
	UploadDir string // Base directory for all uploaded artifacts
	JWTSecret string
	LogLevel  string
	LogFormat string
	DevMode   bool // include error details in responses
}

// Load loads configuration from environment variables with defaults.
// A .env file in the working directory is honored but never overrides
// variables already present in the environment.
func Load() *Config {
	// No .env is fine; rely on the environment and defaults.
	_ = godotenv.Load()

	return &Config{
		Port:      getEnv("PORT", constants.DefaultPort),
		DBPath:    getEnv("DB_PATH", constants.DefaultDBPath),
		UploadDir: getEnv("UPLOAD_DIR", constants.DefaultUploadDir),
		JWTSecret: getEnv("JWT_SECRET", constants.DefaultJWTSecret),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "text"),
		DevMode:   getEnvBool("DEV_MODE", false),
	}
}

// AudioDir returns the directory where uploaded audio files live.
func (c *Config) AudioDir() string {
	return filepath.Join(c.UploadDir, constants.AudioSubdir)
}

// CoversDir returns the directory where extracted cover art lives.
func (c *Config) CoversDir() string {
	return filepath.Join(c.UploadDir, constants.CoversSubdir)
}

// Validate validates the configuration and returns detailed errors
func (c *Config) Validate() error {
	var errors []string

	// Validate Port
	if c.Port == "" {
		errors = append(errors, "PORT cannot be empty")
	} else {
		port, err := strconv.Atoi(c.Port)
		if err != nil {
			errors = append(errors, fmt.Sprintf("PORT must be a valid number, got: %s", c.Port))
		} else if port < 1 || port > 65535 {
			errors = append(errors, fmt.Sprintf("PORT must be between 1 and 65535, got: %d", port))
		}
	}

	// Validate DBPath
	if c.DBPath == "" {
		errors = append(errors, "DB_PATH cannot be empty")
	}

	// Validate UploadDir
	if c.UploadDir == "" {
		errors = append(errors, "UPLOAD_DIR cannot be empty")
	}

	// Validate JWTSecret
	if c.JWTSecret == "" {
		errors = append(errors, "JWT_SECRET cannot be empty")
	}

	// Validate LogLevel
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		errors = append(errors, fmt.Sprintf("LOG_LEVEL must be one of: debug, info, warn, error, got: %s", c.LogLevel))
	}

	// Validate LogFormat
	validLogFormats := map[string]bool{
		"text": true,
		"json": true,
	}
	if !validLogFormats[c.LogFormat] {
		errors = append(errors, fmt.Sprintf("LOG_FORMAT must be one of: text, json, got: %s", c.LogFormat))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(errors, "\n  - "))
	}

	return nil
}

// getEnv retrieves an environment variable with a fallback default
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// getEnvBool retrieves a boolean environment variable with a fallback default
func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return fallback
}
