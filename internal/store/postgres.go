package store

import (
	"context"
	"fmt"
	"time"

	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Postgres struct {
	db      *pgxpool.Pool
	timeout time.Duration
	sql     sqlBuilder
}

func NewPostgres(db *pgxpool.Pool, timeout time.Duration) *Postgres {
	return &Postgres{db: db, timeout: timeout, sql: newSQLBuilder("postgres")}
}

func (s *Postgres) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return withTimeout(ctx, s.timeout)
}

func (s *Postgres) FindAll(ctx context.Context, kind Kind) ([]Record, error) {
	query, args, err := s.sql.findAll(kind)
	if err != nil {
		return nil, err
	}
	return s.query(ctx, query, args)
}

func (s *Postgres) FindByID(ctx context.Context, kind Kind, id int64) (Record, error) {
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

func (s *Postgres) FindByPredicate(ctx context.Context, kind Kind, p Predicate) ([]Record, error) {
	query, args, err := s.sql.findByPredicate(kind, p)
	if err != nil {
		return nil, err
	}
	return s.query(ctx, query, args)
}

func (s *Postgres) Insert(ctx context.Context, kind Kind, rec Record) (int64, error) {
	query, args, err := s.sql.insert(kind, rec, true)
	if err != nil {
		return 0, err
	}

	timeoutCtx, cancel := s.withTimeout(ctx)
	defer cancel()
	var id int64
	if err := s.db.QueryRow(timeoutCtx, query, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("insert %s: %w", kind, err)
	}
	return id, nil
}

func (s *Postgres) Replace(ctx context.Context, kind Kind, rec Record) error {
	query, args, err := s.sql.replace(kind, rec)
	if err != nil {
		return err
	}

	timeoutCtx, cancel := s.withTimeout(ctx)
	defer cancel()
	tag, err := s.db.Exec(timeoutCtx, query, args...)
	if err != nil {
		return fmt.Errorf("update %s: %w", kind, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Postgres) Delete(ctx context.Context, kind Kind, id int64) (bool, error) {
	query, args, err := s.sql.delete(kind, id)
	if err != nil {
		return false, err
	}

	timeoutCtx, cancel := s.withTimeout(ctx)
	defer cancel()
	tag, err := s.db.Exec(timeoutCtx, query, args...)
	if err != nil {
		return false, fmt.Errorf("delete %s: %w", kind, err)
	}
	return tag.RowsAffected() > 0, nil
}

func (s *Postgres) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

func (s *Postgres) Close() {
	s.db.Close()
}

func (s *Postgres) query(ctx context.Context, query string, args []any) ([]Record, error) {
	timeoutCtx, cancel := s.withTimeout(ctx)
	defer cancel()
	rows, err := s.db.Query(timeoutCtx, query, args...)
	if err != nil {
		return nil, err
	}
	maps, err := pgx.CollectRows(rows, pgx.RowToMap)
	if err != nil {
		return nil, err
	}

	out := make([]Record, 0, len(maps))
	for _, m := range maps {
		rec := Record(m)
		for k, v := range rec {
			rec[k] = fromPG(v)
		}
		out = append(out, rec)
	}
	return out, nil
}

// fromPG unwraps the pgtype values pgx returns for NUMERIC and INTEGER columns.
func fromPG(v any) any {
	switch x := v.(type) {
	case pgtype.Numeric:
		f, err := x.Float64Value()
		if err != nil || !f.Valid {
			return nil
		}
		return f.Float64
	case int32:
		return int64(x)
	}
	return v
}
