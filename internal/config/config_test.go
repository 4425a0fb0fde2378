package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Auth.TokenTTL != 24*time.Hour {
		t.Errorf("expected default token TTL 24h, got %v", cfg.Auth.TokenTTL)
	}
	if cfg.Auth.OTPTTL != 10*time.Minute {
		t.Errorf("expected default OTP TTL 10m, got %v", cfg.Auth.OTPTTL)
	}
	if cfg.Catalog.Dir != "./data" {
		t.Errorf("expected default catalog dir ./data, got %q", cfg.Catalog.Dir)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("SERVER_PORT", "9999")
	t.Setenv("CLEANUP_INTERVAL", "15m")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 9999 {
		t.Errorf("expected port 9999, got %d", cfg.Server.Port)
	}
	if cfg.Cleanup.Interval != 15*time.Minute {
		t.Errorf("expected cleanup interval 15m, got %v", cfg.Cleanup.Interval)
	}
}

func TestValidate(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	if _, err := Load(); err == nil {
		t.Error("expected error for missing JWT secret")
	}

	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("SERVER_PORT", "70000")
	if _, err := Load(); err == nil {
		t.Error("expected error for out-of-range port")
	}
}
