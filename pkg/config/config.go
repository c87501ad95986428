// Package config holds global settings for the Vigilant extraction gateway.
// All settings can be configured via environment variables or
// programmatically.
package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds global settings for the Vigilant gateway. The extraction
// engine itself is configuration-free; everything here tunes the serving
// layer around it.
type Config struct {
	// === Core Settings ===
	Port      string // HTTP listen port (default: "3000")
	ConfigDir string // Directory searched for vigilant_tables.yaml (optional)

	// === Cache (optional, serving-layer only) ===
	// Feature vectors are deterministic, so cached entries never go stale;
	// the TTL only bounds memory on the Redis side.
	EnableCache bool          // Cache extracted vectors in Redis (default: false)
	RedisAddr   string        // Redis address, e.g. "localhost:6379"
	CacheTTL    time.Duration // Per-entry TTL (default: 1 hour)

	// === Batch Extraction Limits ===
	BatchLimit    int // Max URLs accepted per batch request (default: 256)
	MaxConcurrent int // Concurrent extraction bound for batches (default: 64)
}

// NewDefaultConfig creates a Config with sensible defaults.
// All settings can be overridden via environment variables.
func NewDefaultConfig() *Config {
	return &Config{
		Port:      GetEnv("VIGILANT_PORT", "3000"),
		ConfigDir: GetEnv("VIGILANT_CONFIG_DIR", ""),

		EnableCache: GetEnvBool("VIGILANT_ENABLE_CACHE", false),
		RedisAddr:   GetEnv("VIGILANT_REDIS_ADDR", "localhost:6379"),
		CacheTTL:    time.Duration(GetEnvInt("VIGILANT_CACHE_TTL_SECONDS", 3600)) * time.Second,

		BatchLimit:    clampInt(GetEnvInt("VIGILANT_BATCH_LIMIT", 256), 1, 10000),
		MaxConcurrent: clampInt(GetEnvInt("VIGILANT_MAX_CONCURRENT", 64), 1, 1024),
	}
}

// NewLocalConfig creates a Config for local-only operation: no Redis, small
// batch bounds. Use this for development or air-gapped runs.
func NewLocalConfig() *Config {
	cfg := NewDefaultConfig()
	cfg.EnableCache = false
	cfg.BatchLimit = 32
	return cfg
}

// NewHighThroughputConfig creates a Config tuned for bulk scoring backends.
func NewHighThroughputConfig() *Config {
	cfg := NewDefaultConfig()
	cfg.EnableCache = true
	cfg.BatchLimit = 2048
	cfg.MaxConcurrent = 256
	return cfg
}

// Validate checks that the configuration is internally consistent.
func (c *Config) Validate() error {
	var problems []string

	if c.Port == "" {
		problems = append(problems, "VIGILANT_PORT must not be empty")
	}
	if c.EnableCache && c.RedisAddr == "" {
		problems = append(problems, "VIGILANT_REDIS_ADDR required when cache is enabled")
	}
	if c.BatchLimit < 1 {
		problems = append(problems, "VIGILANT_BATCH_LIMIT must be at least 1")
	}
	if c.MaxConcurrent < 1 {
		problems = append(problems, "VIGILANT_MAX_CONCURRENT must be at least 1")
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

// MustValidate calls Validate and fatally exits if validation fails.
// Call this at startup before starting the server.
func (c *Config) MustValidate() {
	if err := c.Validate(); err != nil {
		log.Fatalf("[STARTUP] FATAL: Configuration validation failed: %v", err)
	}
	log.Println("[STARTUP] Configuration validated successfully")
}

// clampInt ensures a value is within bounds
func clampInt(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Helper functions for environment variable parsing.
// These are exported for use by other packages.

// GetEnv returns the value of an environment variable or a default value.
func GetEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

// GetEnvBool returns the boolean value of an environment variable or a default value.
func GetEnvBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return defaultValue
}

// GetEnvInt returns the integer value of an environment variable or a default value.
func GetEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return defaultValue
}

// GetEnvFloat returns the float64 value of an environment variable or a default value.
func GetEnvFloat(key string, defaultValue float64) float64 {
	if v := os.Getenv(key); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err == nil {
			return f
		}
	}
	return defaultValue
}

// GetEnvSlice returns a comma-separated list from an environment variable or a default value.
func GetEnvSlice(key string, defaultValue []string) []string {
	if v := os.Getenv(key); v != "" {
		var parts []string
		for _, p := range strings.Split(v, ",") {
			trimmed := strings.TrimSpace(p)
			if trimmed != "" {
				parts = append(parts, trimmed)
			}
		}
		if len(parts) > 0 {
			return parts
		}
	}
	return defaultValue
}
