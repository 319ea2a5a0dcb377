// Package config handles application configuration.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration.
type Config struct {
	// Server settings
	Port    int
	BaseURL string

	// Database
	DatabaseURL string

	// CORS
	CORSOrigins []string

	// Trash sweeper
	SweepEnabled   bool          // run the scheduled sweep in-process
	SweepInterval  time.Duration // how often the scheduled sweep runs
	TrashRetention time.Duration // soft-delete retention window

	// Read-path cache TTLs (zero disables caching for that operation)
	CacheTTLStats     time.Duration
	CacheTTLCounts    time.Duration
	CacheTTLAnalytics time.Duration
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Port:        getEnvInt("PORT", 8080),
		BaseURL:     getEnv("BASE_URL", "http://localhost:8080"),
		DatabaseURL: getEnv("DATABASE_URL", "file:tooldeck.db?_journal=WAL&_timeout=5000"),

		CORSOrigins: getEnvSlice("CORS_ORIGINS", []string{"http://localhost:3000"}),

		SweepEnabled:   getEnvBool("SWEEP_ENABLED", true),
		SweepInterval:  getEnvDuration("SWEEP_INTERVAL", 24*time.Hour),
		TrashRetention: getEnvDuration("TRASH_RETENTION", 90*24*time.Hour),

		CacheTTLStats:     getEnvDuration("CACHE_TTL_STATS", 5*time.Minute),
		CacheTTLCounts:    getEnvDuration("CACHE_TTL_COUNTS", 5*time.Minute),
		CacheTTLAnalytics: getEnvDuration("CACHE_TTL_ANALYTICS", time.Minute),
	}

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid PORT: %d", cfg.Port)
	}
	if cfg.SweepInterval <= 0 {
		return nil, fmt.Errorf("SWEEP_INTERVAL must be positive, got %s", cfg.SweepInterval)
	}
	if cfg.TrashRetention <= 0 {
		return nil, fmt.Errorf("TRASH_RETENTION must be positive, got %s", cfg.TrashRetention)
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		lower := strings.ToLower(value)
		return lower == "true" || lower == "1" || lower == "yes"
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getEnvSlice(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	}
	return defaultValue
}
