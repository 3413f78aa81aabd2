package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/soundvault/soundvault/internal/constants"
)

func TestLoad(t *testing.T) {
	// Test default values
	cfg := Load()

	if cfg.Port != constants.DefaultPort {
		t.Errorf("Expected Port to be %s, got %s", constants.DefaultPort, cfg.Port)
	}

	if cfg.DBPath != constants.DefaultDBPath {
		t.Errorf("Expected DBPath to be %s, got %s", constants.DefaultDBPath, cfg.DBPath)
	}

	if cfg.UploadDir != constants.DefaultUploadDir {
		t.Errorf("Expected UploadDir to be %s, got %s", constants.DefaultUploadDir, cfg.UploadDir)
	}

	if cfg.LogLevel != "info" {
		t.Errorf("Expected LogLevel to be info, got %s", cfg.LogLevel)
	}
}

func TestLoadWithEnvVars(t *testing.T) {
	os.Setenv("PORT", "9090")
	os.Setenv("DB_PATH", "/tmp/test.db")
	os.Setenv("UPLOAD_DIR", "/tmp/uploads")
	os.Setenv("JWT_SECRET", "test-secret")
	defer func() {
		os.Unsetenv("PORT")
		os.Unsetenv("DB_PATH")
		os.Unsetenv("UPLOAD_DIR")
		os.Unsetenv("JWT_SECRET")
	}()

	cfg := Load()

	if cfg.Port != "9090" {
		t.Errorf("Expected Port to be 9090, got %s", cfg.Port)
	}

	if cfg.DBPath != "/tmp/test.db" {
		t.Errorf("Expected DBPath to be /tmp/test.db, got %s", cfg.DBPath)
	}

	if cfg.UploadDir != "/tmp/uploads" {
		t.Errorf("Expected UploadDir to be /tmp/uploads, got %s", cfg.UploadDir)
	}

	if cfg.JWTSecret != "test-secret" {
		t.Errorf("Expected JWTSecret to be test-secret, got %s", cfg.JWTSecret)
	}
}

func TestDerivedDirs(t *testing.T) {
	cfg := &Config{UploadDir: "base"}

	if got := cfg.AudioDir(); got != filepath.Join("base", "audio") {
		t.Errorf("Expected AudioDir to be base/audio, got %s", got)
	}

	if got := cfg.CoversDir(); got != filepath.Join("base", "covers") {
		t.Errorf("Expected CoversDir to be base/covers, got %s", got)
	}
}

func TestValidate(t *testing.T) {
	valid := &Config{
		Port:      "8080",
		DBPath:    "test.db",
		UploadDir: "uploads",
		JWTSecret: "secret",
		LogLevel:  "info",
		LogFormat: "text",
	}
	if err := valid.Validate(); err != nil {
		t.Errorf("Expected valid config to pass validation, got: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty port", func(c *Config) { c.Port = "" }},
		{"non-numeric port", func(c *Config) { c.Port = "abc" }},
		{"port out of range", func(c *Config) { c.Port = "70000" }},
		{"empty db path", func(c *Config) { c.DBPath = "" }},
		{"empty upload dir", func(c *Config) { c.UploadDir = "" }},
		{"empty jwt secret", func(c *Config) { c.JWTSecret = "" }},
		{"bad log level", func(c *Config) { c.LogLevel = "verbose" }},
		{"bad log format", func(c *Config) { c.LogFormat = "xml" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := *valid
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Expected validation error, got nil")
			}
		})
	}
}
