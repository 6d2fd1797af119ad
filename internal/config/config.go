// Package config provides environment-driven configuration for the
// screening service.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// AppConfig holds the service-level settings read at startup.
type AppConfig struct {
	Port        int
	DatabaseURL string

	// GeminiAPIKeys is the rotation set for the extraction endpoint,
	// read from GEMINI_API_KEYS as a comma-separated list.
	GeminiAPIKeys []string

	// StandardModel and LiteModel override the default model names when set.
	StandardModel string
	LiteModel     string

	// AllowedOrigins for CORS, comma-separated. Empty means allow all.
	AllowedOrigins []string
}

// NewAppConfig reads the service configuration from environment variables.
// GEMINI_API_KEYS is required; everything else has a default.
func NewAppConfig() (*AppConfig, error) {
	cfg := &AppConfig{
		Port:          8080,
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		StandardModel: os.Getenv("GEMINI_MODEL"),
		LiteModel:     os.Getenv("GEMINI_MODEL_LITE"),
	}

	if portStr := os.Getenv("PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT: %v", err)
		}
		cfg.Port = port
	}

	cfg.GeminiAPIKeys = splitList(os.Getenv("GEMINI_API_KEYS"))
	if len(cfg.GeminiAPIKeys) == 0 {
		// Single-key fallback for local development
		if key := os.Getenv("GEMINI_API_KEY"); key != "" {
			cfg.GeminiAPIKeys = []string{key}
		}
	}

	cfg.AllowedOrigins = splitList(os.Getenv("ALLOWED_ORIGINS"))

	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// normalize validates the configuration.
func (c *AppConfig) normalize() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("PORT out of range: %d", c.Port)
	}
	if len(c.GeminiAPIKeys) == 0 {
		return fmt.Errorf("GEMINI_API_KEYS is required but not set")
	}
	return nil
}

// splitList splits a comma-separated env value, dropping blanks.
func splitList(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
