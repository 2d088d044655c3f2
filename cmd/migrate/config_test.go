package main

import (
	"path/filepath"
	"testing"

	"bookstore/internal/config"
)

func TestMigrationsDir_Override(t *testing.T) {
	cfg := config.Config{MigrationsDir: "/custom/migrations"}

	if got := migrationsDir(cfg); got != "/custom/migrations" {
		t.Fatalf("expected MIGRATIONS_DIR override, got %q", got)
	}
	if got := dialectDir(cfg, "sqlite"); got != filepath.Join("/custom/migrations", "sqlite") {
		t.Fatalf("expected dialect subdirectory, got %q", got)
	}
}

func TestMigrationsDir_Default(t *testing.T) {
	if got := migrationsDir(config.Config{}); got != "db/migrations" {
		t.Fatalf("expected default migrations dir, got %q", got)
	}
}
