package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"bookstore/db"
	"bookstore/internal/config"
	"bookstore/internal/logger"
	"bookstore/internal/store"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.LogLevel, cfg.LogFormat)

	if err := newRootCmd(cfg).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(cfg config.Config) *cobra.Command {
	var driver string

	root := &cobra.Command{
		Use:           "migrate",
		Short:         "Apply or inspect the catalog schema",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := dialectFor(driver); err != nil {
				return err
			}
			return nil
		},
	}
	root.PersistentFlags().StringVar(&driver, "driver", defaultDriver(cfg.DBDriver), "database driver: postgres or sqlite")

	withDB := func(action string, fn func(*sql.DB, db.Dialect) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, _ []string) error {
			dialect, _ := dialectFor(driver)
			conn, closeFn, err := openDB(cmd.Context(), driver, cfg)
			if err != nil {
				return err
			}
			defer closeFn()

			if err := fn(conn, dialect); err != nil {
				return fmt.Errorf("%s: %w", action, err)
			}
			log.Info().Str("driver", driver).Msgf("%s finished", action)
			return nil
		}
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			RunE:  withDB("migrate up", db.Up),
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back the most recent migration",
			RunE:  withDB("migrate down", db.Down),
		},
		&cobra.Command{
			Use:   "status",
			Short: "Show applied and pending migrations",
			RunE:  withDB("migrate status", db.Status),
		},
		&cobra.Command{
			Use:   "create NAME",
			Short: "Create a new SQL migration for the selected driver",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				dir := dialectDir(cfg, driver)
				if err := goose.Create(nil, dir, args[0], "sql"); err != nil {
					return fmt.Errorf("create migration: %w", err)
				}
				log.Info().Str("dir", dir).Str("name", args[0]).Msg("migration created")
				return nil
			},
		},
	)
	return root
}

func defaultDriver(configured string) string {
	if configured == store.DriverSQLite {
		return store.DriverSQLite
	}
	return store.DriverPostgres
}

func dialectFor(driver string) (db.Dialect, error) {
	switch driver {
	case store.DriverPostgres:
		return db.DialectPostgres, nil
	case store.DriverSQLite:
		return db.DialectSQLite, nil
	default:
		return "", fmt.Errorf("unsupported driver %q: use postgres or sqlite", driver)
	}
}

func openDB(ctx context.Context, driver string, cfg config.Config) (*sql.DB, func(), error) {
	if ctx == nil {
		ctx = context.Background()
	}

	if driver == store.DriverSQLite {
		conn, err := sql.Open("sqlite3", cfg.SQLitePath+"?_foreign_keys=1")
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite: %w", err)
		}
		return conn, func() { _ = conn.Close() }, nil
	}

	pool, err := pgxpool.New(ctx, cfg.DBDSN)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	conn := stdlib.OpenDBFromPool(pool)
	return conn, func() {
		_ = conn.Close()
		pool.Close()
	}, nil
}
