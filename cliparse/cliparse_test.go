// Copyright (c) 2026 Pollcast Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"testing"
)

func TestParseFlags_EnvVars(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_URL", "polls.db")
	t.Setenv("ADMIN_PASSWORD", "hunter2")

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.DatabaseType != "sqlite" {
		t.Errorf("expected default type sqlite, got %s", cfg.DatabaseType)
	}
	if cfg.AdminPassword != "hunter2" {
		t.Errorf("expected password from env, got %q", cfg.AdminPassword)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_URL", "env.db")
	t.Setenv("ADMIN_PASSWORD", "env-pass")

	cfg, err := ParseFlags([]string{"-p", "8080", "-d", "cli.db", "-admin-password", "cli-pass"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if cfg.DatabaseURL != "cli.db" {
		t.Errorf("CLI should override env: expected cli.db, got %s", cfg.DatabaseURL)
	}
	if cfg.AdminPassword != "cli-pass" {
		t.Errorf("CLI should override env: expected cli-pass, got %s", cfg.AdminPassword)
	}
}

func TestParseFlags_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("PUBLIC_DIR", "")
	t.Setenv("BASE_URL", "")

	cfg, err := ParseFlags([]string{"-d", "polls.db", "-admin-password", "secret"})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 3000 {
		t.Errorf("expected default port 3000, got %d", cfg.Port)
	}
	if cfg.PublicDir != "./public" {
		t.Errorf("expected default public dir, got %s", cfg.PublicDir)
	}
	if cfg.BaseURL != "http://localhost:3000" {
		t.Errorf("expected base URL derived from port, got %s", cfg.BaseURL)
	}
}

func TestParseFlags_MissingDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("ADMIN_PASSWORD", "secret")

	_, err := ParseFlags([]string{})
	if err == nil {
		t.Error("expected error for missing database URL")
	}
}

func TestParseFlags_MissingAdminPassword(t *testing.T) {
	t.Setenv("DATABASE_URL", "polls.db")
	t.Setenv("ADMIN_PASSWORD", "")

	_, err := ParseFlags([]string{})
	if err == nil {
		t.Error("expected error for missing admin password")
	}
}

func TestParseFlags_InvalidDatabaseType(t *testing.T) {
	t.Setenv("DATABASE_URL", "polls.db")
	t.Setenv("ADMIN_PASSWORD", "secret")

	_, err := ParseFlags([]string{"-t", "oracle"})
	if err == nil {
		t.Error("expected error for unsupported database type")
	}
}
