package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Port)
	}
	if cfg.TrashRetention != 90*24*time.Hour {
		t.Errorf("TrashRetention = %s, want 2160h", cfg.TrashRetention)
	}
	if cfg.SweepInterval != 24*time.Hour {
		t.Errorf("SweepInterval = %s, want 24h", cfg.SweepInterval)
	}
	if !cfg.SweepEnabled {
		t.Error("SweepEnabled should default to true")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("TRASH_RETENTION", "720h")
	t.Setenv("SWEEP_ENABLED", "false")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("CACHE_TTL_STATS", "30s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != 9090 {
		t.Errorf("Port = %d, want 9090", cfg.Port)
	}
	if cfg.TrashRetention != 720*time.Hour {
		t.Errorf("TrashRetention = %s, want 720h", cfg.TrashRetention)
	}
	if cfg.SweepEnabled {
		t.Error("SweepEnabled should be false")
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "https://b.example" {
		t.Errorf("CORSOrigins = %v, want two trimmed origins", cfg.CORSOrigins)
	}
	if cfg.CacheTTLStats != 30*time.Second {
		t.Errorf("CacheTTLStats = %s, want 30s", cfg.CacheTTLStats)
	}
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Setenv("PORT", "99999")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for out-of-range port")
	}
}

func TestLoad_InvalidDurationFallsBack(t *testing.T) {
	t.Setenv("SWEEP_INTERVAL", "not-a-duration")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.SweepInterval != 24*time.Hour {
		t.Errorf("SweepInterval = %s, want the default on parse failure", cfg.SweepInterval)
	}
}
