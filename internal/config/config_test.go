package config

import "testing"

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("LEARNCHECK_ADDR", ":9000")
	t.Setenv("LEARNCHECK_MATERIAL_URL", "https://content.example.com/api")
	t.Setenv("LEARNCHECK_CORS_ORIGINS", "https://app.example.com, https://staging.example.com")
	t.Setenv("LEARNCHECK_STRICT_AUDIT", "true")

	cfg := FromEnv()
	if cfg.Addr != ":9000" {
		t.Errorf("Addr = %q", cfg.Addr)
	}
	if cfg.MaterialBaseURL != "https://content.example.com/api" {
		t.Errorf("MaterialBaseURL = %q", cfg.MaterialBaseURL)
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[1] != "https://staging.example.com" {
		t.Errorf("AllowedOrigins = %v", cfg.AllowedOrigins)
	}
	if !cfg.StrictAudit {
		t.Error("StrictAudit should be true")
	}
	if cfg.Debug {
		t.Error("Debug should default to false")
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}

	cfg.MaterialBaseURL = "content.example.com"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for scheme-less material URL")
	}

	cfg = Default()
	cfg.Addr = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for empty address")
	}
}
