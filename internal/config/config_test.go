package config

import (
	"os"
	"testing"
)

func TestLoadLegacyEnv(t *testing.T) {
	tmpDir := t.TempDir()
	oldWD, err := os.Getwd()
	if err != nil {
		t.Fatalf("get wd failed: %v", err)
	}
	t.Cleanup(func() {
		_ = os.Chdir(oldWD)
	})
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("chdir failed: %v", err)
	}

	t.Setenv("PORT", "4100")
	t.Setenv("NODE_ENV", "production")
	t.Setenv("FRONTEND_URL", "https://admin.example.com, https://ops.example.com")

	cfg := Load()
	if cfg.Server.Port != "4100" {
		t.Fatalf("port want 4100 got %s", cfg.Server.Port)
	}
	if !cfg.Server.IsProduction() {
		t.Fatalf("NODE_ENV=production should mark production, got %s", cfg.Server.Env)
	}
	if cfg.Server.Mode != "release" {
		t.Fatalf("production should force release mode, got %s", cfg.Server.Mode)
	}
	if len(cfg.CORS.AllowedOrigins) != 2 || cfg.CORS.AllowedOrigins[1] != "https://ops.example.com" {
		t.Fatalf("unexpected origins: %v", cfg.CORS.AllowedOrigins)
	}
	if cfg.Procedures.Backend != "local" {
		t.Fatalf("procedures backend want local got %s", cfg.Procedures.Backend)
	}
}

func TestLoadRateLimitSections(t *testing.T) {
	tmpDir := t.TempDir()
	oldWD, err := os.Getwd()
	if err != nil {
		t.Fatalf("get wd failed: %v", err)
	}
	t.Cleanup(func() {
		_ = os.Chdir(oldWD)
	})
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("chdir failed: %v", err)
	}

	t.Setenv("SECURITY_ADD_XP_RATE_LIMIT_MAX_REQUESTS", "3")

	cfg := Load()
	if cfg.Security.WriteRateLimit.MaxRequests != 30 || cfg.Security.WriteRateLimit.WindowSeconds != 60 {
		t.Fatalf("unexpected write limit: %+v", cfg.Security.WriteRateLimit)
	}
	if cfg.Security.AddXPRateLimit.MaxRequests != 3 {
		t.Fatalf("add-xp max requests want 3 got %d", cfg.Security.AddXPRateLimit.MaxRequests)
	}
	if cfg.Security.AddXPRateLimit.WindowSeconds != 60 {
		t.Fatalf("add-xp window want 60 got %d", cfg.Security.AddXPRateLimit.WindowSeconds)
	}
}

func TestSplitOrigins(t *testing.T) {
	got := splitOrigins(" http://a.test ,, http://b.test ")
	if len(got) != 2 {
		t.Fatalf("origins len want 2 got %d", len(got))
	}
	if got[0] != "http://a.test" || got[1] != "http://b.test" {
		t.Fatalf("unexpected origins: %v", got)
	}
}
