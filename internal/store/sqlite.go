package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"bookstore/db"

	_ "github.com/doug-martin/goqu/v9/dialect/sqlite3"
	_ "github.com/mattn/go-sqlite3"
)

// SQLite is a file (or ":memory:") backed Store. The schema is migrated when
// the store is opened.
type SQLite struct {
	db      *sql.DB
	timeout time.Duration
	sql     sqlBuilder
}

func NewSQLite(ctx context.Context, path string, timeout time.Duration) (*SQLite, error) {
	dsn := path + "?_foreign_keys=1&_busy_timeout=5000"
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
		dsn += "&_journal_mode=WAL"
	}

	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// ":memory:" lives only as long as its connection.
	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)
	conn.SetConnMaxLifetime(0)

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	if err := db.Up(conn, db.DialectSQLite); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate sqlite: %w", err)
	}

	return &SQLite{db: conn, timeout: timeout, sql: newSQLBuilder("sqlite3")}, nil
}

func (s *SQLite) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return withTimeout(ctx, s.timeout)
}

func (s *SQLite) FindAll(ctx context.Context, kind Kind) ([]Record, error) {
	query, args, err := s.sql.findAll(kind)
	if err != nil {
		return nil, err
	}
	return s.query(ctx, query, args)
}

func (s *SQLite) FindByID(ctx context.Context, kind Kind, id int64) (Record, error) {
	query, args, err := s.sql.findByID(kind, id)
	if err != nil {
		return nil, err
	}
	recs, err := s.query(ctx, query, args)
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, ErrNotFound
	}
	return recs[0], nil
}

func (s *SQLite) FindByPredicate(ctx context.Context, kind Kind, p Predicate) ([]Record, error) {
	query, args, err := s.sql.findByPredicate(kind, p)
	if err != nil {
		return nil, err
	}
	return s.query(ctx, query, args)
}

func (s *SQLite) Insert(ctx context.Context, kind Kind, rec Record) (int64, error) {
	query, args, err := s.sql.insert(kind, rec, false)
	if err != nil {
		return 0, err
	}

	timeoutCtx, cancel := s.withTimeout(ctx)
	defer cancel()
	res, err := s.db.ExecContext(timeoutCtx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("insert %s: %w", kind, err)
	}
	return res.LastInsertId()
}

func (s *SQLite) Replace(ctx context.Context, kind Kind, rec Record) error {
	query, args, err := s.sql.replace(kind, rec)
	if err != nil {
		return err
	}

	timeoutCtx, cancel := s.withTimeout(ctx)
	defer cancel()
	res, err := s.db.ExecContext(timeoutCtx, query, args...)
	if err != nil {
		return fmt.Errorf("update %s: %w", kind, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLite) Delete(ctx context.Context, kind Kind, id int64) (bool, error) {
	query, args, err := s.sql.delete(kind, id)
	if err != nil {
		return false, err
	}

	timeoutCtx, cancel := s.withTimeout(ctx)
	defer cancel()
	res, err := s.db.ExecContext(timeoutCtx, query, args...)
	if err != nil {
		return false, fmt.Errorf("delete %s: %w", kind, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *SQLite) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *SQLite) Close() {
	_ = s.db.Close()
}

func (s *SQLite) query(ctx context.Context, query string, args []any) ([]Record, error) {
	timeoutCtx, cancel := s.withTimeout(ctx)
	defer cancel()
	rows, err := s.db.QueryContext(timeoutCtx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	out := []Record{}
	for rows.Next() {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		rec := make(Record, len(cols))
		for i, c := range cols {
			rec[strings.ToLower(c)] = vals[i]
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
