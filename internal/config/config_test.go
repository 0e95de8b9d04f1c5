package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"ENV", "PORT", "DB_PATH", "TZ", "AUTH_SECRET", "WEBHOOK_SECRET", "CORS_ORIGIN"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if cfg.Env != "development" {
		t.Fatalf("Env = %q, want development", cfg.Env)
	}
	if cfg.Port != "8080" {
		t.Fatalf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.DBPath != "data/bloom.db" {
		t.Fatalf("DBPath = %q", cfg.DBPath)
	}
	if cfg.WebhookSecret != "" {
		t.Fatalf("WebhookSecret = %q, want empty", cfg.WebhookSecret)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("PORT", "9000")
	t.Setenv("DB_PATH", "/tmp/bloom-test.db")
	t.Setenv("AUTH_SECRET", "secret-under-test")
	t.Setenv("WEBHOOK_SECRET", "whsec_dGVzdA==")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if cfg.Env != "production" || cfg.Port != "9000" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.AuthSecret != "secret-under-test" {
		t.Fatalf("AuthSecret = %q", cfg.AuthSecret)
	}
	if cfg.WebhookSecret != "whsec_dGVzdA==" {
		t.Fatalf("WebhookSecret = %q", cfg.WebhookSecret)
	}
}
