package config

import (
	"os"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	os.Unsetenv("PORT")
	os.Unsetenv("APP_ENV")
	os.Unsetenv("RATE_LIMIT_MAX")

	cfg := Load()
	if cfg.Port != "5000" {
		t.Errorf("default port %q, want 5000", cfg.Port)
	}
	if !cfg.IsDevelopment() {
		t.Error("default environment is not development")
	}
	if cfg.RateLimitMax != 100 || cfg.RateLimitWindowSec != 900 {
		t.Errorf("rate limit defaults %d/%d, want 100/900", cfg.RateLimitMax, cfg.RateLimitWindowSec)
	}
	if cfg.AMQPUrl != "" {
		t.Errorf("alert queue enabled by default: %q", cfg.AMQPUrl)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	os.Setenv("PORT", "8080")
	os.Setenv("APP_ENV", "production")
	os.Setenv("RATE_LIMIT_MAX", "10")
	defer func() {
		os.Unsetenv("PORT")
		os.Unsetenv("APP_ENV")
		os.Unsetenv("RATE_LIMIT_MAX")
	}()

	cfg := Load()
	if cfg.Port != "8080" {
		t.Errorf("port %q, want 8080", cfg.Port)
	}
	if cfg.IsDevelopment() {
		t.Error("production environment reported as development")
	}
	if cfg.RateLimitMax != 10 {
		t.Errorf("rate limit max %d, want 10", cfg.RateLimitMax)
	}
}

func TestGetIntEnvBadValue(t *testing.T) {
	os.Setenv("RATE_LIMIT_MAX", "not-a-number")
	defer os.Unsetenv("RATE_LIMIT_MAX")

	if v := getIntEnv("RATE_LIMIT_MAX", 100); v != 100 {
		t.Errorf("got %d, want the default 100", v)
	}
}
