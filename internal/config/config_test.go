package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("ENV", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("DEFAULT_LEAD_ORIGIN", "")
	t.Setenv("CACHE_TTL", "")
	cfg := Load()
	if cfg.Port != "8080" {
		t.Fatalf("expected default port, got %s", cfg.Port)
	}
	if cfg.Env != "development" {
		t.Fatalf("expected default env, got %s", cfg.Env)
	}
	if cfg.DefaultLeadOrigin != "site" {
		t.Fatalf("expected default lead origin, got %s", cfg.DefaultLeadOrigin)
	}
	if cfg.CacheTTL != 5*time.Minute {
		t.Fatalf("expected default cache ttl, got %s", cfg.CacheTTL)
	}
	if cfg.IntakeRateBurst != 5 {
		t.Fatalf("expected default intake burst, got %d", cfg.IntakeRateBurst)
	}
	if cfg.CORSAllowedOrigins != nil {
		t.Fatalf("expected no CORS origins by default, got %v", cfg.CORSAllowedOrigins)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENV", "production")
	t.Setenv("DATABASE_URL", "postgres://user@host/db")
	t.Setenv("DEFAULT_LEAD_ORIGIN", "landing-page")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://matra.com.br, https://www.matra.com.br")
	t.Setenv("CACHE_TTL", "90s")
	t.Setenv("INTAKE_RATE_LIMIT", "0.5")
	cfg := Load()
	if cfg.Port != "9090" {
		t.Fatalf("expected override port, got %s", cfg.Port)
	}
	if cfg.DatabaseURL != "postgres://user@host/db" {
		t.Fatalf("expected db override, got %s", cfg.DatabaseURL)
	}
	if cfg.DefaultLeadOrigin != "landing-page" {
		t.Fatalf("expected lead origin override, got %s", cfg.DefaultLeadOrigin)
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[1] != "https://www.matra.com.br" {
		t.Fatalf("expected trimmed CORS origins, got %v", cfg.CORSAllowedOrigins)
	}
	if cfg.CacheTTL != 90*time.Second {
		t.Fatalf("expected cache ttl override, got %s", cfg.CacheTTL)
	}
	if cfg.IntakeRateLimit != 0.5 {
		t.Fatalf("expected intake rate override, got %f", cfg.IntakeRateLimit)
	}
}
