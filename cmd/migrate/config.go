package main

import (
	"path/filepath"

	"bookstore/internal/config"
)

func migrationsDir(cfg config.Config) string {
	if cfg.MigrationsDir != "" {
		return cfg.MigrationsDir
	}
	return "db/migrations"
}

// dialectDir is where new migrations for driver are written.
func dialectDir(cfg config.Config, driver string) string {
	return filepath.Join(migrationsDir(cfg), driver)
}
