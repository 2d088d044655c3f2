// Package db embeds the schema migrations for each supported SQL dialect.
package db

import (
	"database/sql"
	"embed"
	"fmt"
	"strings"
	"sync"

	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog/log"
)

//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var migrations embed.FS

type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite3"
)

// goose keeps its dialect, filesystem and logger in package globals.
var gooseMu sync.Mutex

// gooseLogger routes goose output through the global zerolog logger.
type gooseLogger struct{}

func (gooseLogger) Printf(format string, v ...interface{}) {
	log.Info().Str("component", "migrate").Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (gooseLogger) Fatalf(format string, v ...interface{}) {
	log.Fatal().Str("component", "migrate").Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

// Dir returns the embedded migrations directory for d.
func Dir(d Dialect) (string, error) {
	switch d {
	case DialectPostgres:
		return "migrations/postgres", nil
	case DialectSQLite:
		return "migrations/sqlite", nil
	default:
		return "", fmt.Errorf("unsupported migration dialect %q", d)
	}
}

func Up(conn *sql.DB, d Dialect) error {
	return run(conn, d, goose.Up)
}

func Down(conn *sql.DB, d Dialect) error {
	return run(conn, d, goose.Down)
}

func Status(conn *sql.DB, d Dialect) error {
	return run(conn, d, goose.Status)
}

func Version(conn *sql.DB, d Dialect) (int64, error) {
	var version int64
	err := run(conn, d, func(conn *sql.DB, _ string, _ ...goose.OptionsFunc) error {
		v, err := goose.GetDBVersion(conn)
		version = v
		return err
	})
	return version, err
}

func run(conn *sql.DB, d Dialect, fn func(*sql.DB, string, ...goose.OptionsFunc) error) error {
	dir, err := Dir(d)
	if err != nil {
		return err
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetLogger(gooseLogger{})
	goose.SetBaseFS(migrations)
	defer goose.SetBaseFS(nil)
	if err := goose.SetDialect(string(d)); err != nil {
		return err
	}
	return fn(conn, dir)
}
