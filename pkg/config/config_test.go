package config

import (
	"testing"
	"time"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	if cfg.Port != "3000" {
		t.Errorf("Port = %q, want 3000", cfg.Port)
	}
	if cfg.EnableCache {
		t.Error("cache should be disabled by default")
	}
	if cfg.CacheTTL != time.Hour {
		t.Errorf("CacheTTL = %v, want 1h", cfg.CacheTTL)
	}
	if cfg.BatchLimit != 256 {
		t.Errorf("BatchLimit = %d, want 256", cfg.BatchLimit)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("VIGILANT_PORT", "9999")
	t.Setenv("VIGILANT_ENABLE_CACHE", "true")
	t.Setenv("VIGILANT_BATCH_LIMIT", "42")

	cfg := NewDefaultConfig()
	if cfg.Port != "9999" {
		t.Errorf("Port = %q, want 9999", cfg.Port)
	}
	if !cfg.EnableCache {
		t.Error("EnableCache should honor env override")
	}
	if cfg.BatchLimit != 42 {
		t.Errorf("BatchLimit = %d, want 42", cfg.BatchLimit)
	}
}

func TestBatchLimitClamped(t *testing.T) {
	t.Setenv("VIGILANT_BATCH_LIMIT", "0")
	if cfg := NewDefaultConfig(); cfg.BatchLimit != 1 {
		t.Errorf("BatchLimit = %d, want clamp to 1", cfg.BatchLimit)
	}

	t.Setenv("VIGILANT_BATCH_LIMIT", "999999")
	if cfg := NewDefaultConfig(); cfg.BatchLimit != 10000 {
		t.Errorf("BatchLimit = %d, want clamp to 10000", cfg.BatchLimit)
	}
}

func TestValidateFailures(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty port", func(c *Config) { c.Port = "" }},
		{"cache without addr", func(c *Config) { c.EnableCache = true; c.RedisAddr = "" }},
		{"zero batch limit", func(c *Config) { c.BatchLimit = 0 }},
		{"zero concurrency", func(c *Config) { c.MaxConcurrent = 0 }},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := NewDefaultConfig()
			tc.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestPresets(t *testing.T) {
	local := NewLocalConfig()
	if local.EnableCache {
		t.Error("local preset should not use Redis")
	}
	bulk := NewHighThroughputConfig()
	if !bulk.EnableCache || bulk.BatchLimit <= local.BatchLimit {
		t.Error("high-throughput preset should enable cache and raise limits")
	}
}

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("VIGILANT_TEST_STR", "value")
	t.Setenv("VIGILANT_TEST_BOOL", "true")
	t.Setenv("VIGILANT_TEST_INT", "7")
	t.Setenv("VIGILANT_TEST_FLOAT", "0.25")
	t.Setenv("VIGILANT_TEST_SLICE", "a, b ,,c")

	if got := GetEnv("VIGILANT_TEST_STR", "d"); got != "value" {
		t.Errorf("GetEnv = %q", got)
	}
	if got := GetEnv("VIGILANT_TEST_MISSING", "d"); got != "d" {
		t.Errorf("GetEnv default = %q", got)
	}
	if !GetEnvBool("VIGILANT_TEST_BOOL", false) {
		t.Error("GetEnvBool should parse true")
	}
	if got := GetEnvInt("VIGILANT_TEST_INT", 0); got != 7 {
		t.Errorf("GetEnvInt = %d", got)
	}
	if got := GetEnvFloat("VIGILANT_TEST_FLOAT", 0); got != 0.25 {
		t.Errorf("GetEnvFloat = %v", got)
	}
	got := GetEnvSlice("VIGILANT_TEST_SLICE", nil)
	if len(got) != 3 || got[0] != "a" || got[1] != "b" || got[2] != "c" {
		t.Errorf("GetEnvSlice = %v", got)
	}

	t.Setenv("VIGILANT_TEST_INT", "notanint")
	if got := GetEnvInt("VIGILANT_TEST_INT", 5); got != 5 {
		t.Errorf("GetEnvInt fallback = %d, want 5", got)
	}
}
