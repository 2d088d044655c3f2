// Package store holds the persistence capability the repositories consume:
// two collections keyed by an integer id, with point lookups, full scans,
// predicate filters and single-row writes.
package store

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrNotFound    = errors.New("record not found")
	ErrUnknownKind = errors.New("unknown record kind")
)

// Kind names a collection.
type Kind string

const (
	Categories Kind = "categories"
	Books      Kind = "books"
)

const ColID = "id"

// columns lists the persisted columns per kind. Writes ignore anything else.
var columns = map[Kind][]string{
	Categories: {ColID, "name"},
	Books:      {ColID, "name", "author", "description", "value", "publish_date", "category_id"},
}

// Columns returns the column list of kind.
func Columns(kind Kind) ([]string, error) {
	cols, ok := columns[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	return cols, nil
}

// Store is implemented by Memory, SQLite and Postgres. Results are ordered by
// id ascending, which is insertion order since ids are never reused.
type Store interface {
	FindAll(ctx context.Context, kind Kind) ([]Record, error)
	// FindByID returns ErrNotFound when id is absent.
	FindByID(ctx context.Context, kind Kind, id int64) (Record, error)
	FindByPredicate(ctx context.Context, kind Kind, p Predicate) ([]Record, error)
	// Insert ignores any id in rec and returns the assigned one.
	Insert(ctx context.Context, kind Kind, rec Record) (int64, error)
	// Replace overwrites the row with rec's id, or returns ErrNotFound.
	Replace(ctx context.Context, kind Kind, rec Record) error
	Delete(ctx context.Context, kind Kind, id int64) (bool, error)
	Ping(ctx context.Context) error
	Close()
}

// writable returns the columns of rec that kind persists, without the id.
func writable(kind Kind, rec Record) (Record, error) {
	cols, err := Columns(kind)
	if err != nil {
		return nil, err
	}
	out := make(Record, len(cols))
	for _, c := range cols {
		if c == ColID {
			continue
		}
		if v, ok := rec[c]; ok {
			out[c] = v
		}
	}
	return out, nil
}
