package store

import (
	"fmt"
	"strings"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
)

// sqlBuilder renders store operations as parameterized SQL for one goqu
// dialect. Postgres and SQLite share it and differ only in how they execute.
type sqlBuilder struct {
	dialect goqu.DialectWrapper
}

func newSQLBuilder(dialect string) sqlBuilder {
	return sqlBuilder{dialect: goqu.Dialect(dialect)}
}

func (b sqlBuilder) selectAll(kind Kind) (*goqu.SelectDataset, error) {
	cols, err := Columns(kind)
	if err != nil {
		return nil, err
	}
	sel := make([]any, len(cols))
	for i, c := range cols {
		sel[i] = c
	}
	return b.dialect.From(string(kind)).Prepared(true).
		Select(sel...).
		Order(goqu.I(ColID).Asc()), nil
}

func (b sqlBuilder) findAll(kind Kind) (string, []any, error) {
	ds, err := b.selectAll(kind)
	if err != nil {
		return "", nil, err
	}
	return ds.ToSQL()
}

func (b sqlBuilder) findByID(kind Kind, id int64) (string, []any, error) {
	ds, err := b.selectAll(kind)
	if err != nil {
		return "", nil, err
	}
	return ds.Where(goqu.C(ColID).Eq(id)).ToSQL()
}

func (b sqlBuilder) findByPredicate(kind Kind, p Predicate) (string, []any, error) {
	if err := p.validate(kind); err != nil {
		return "", nil, err
	}
	ds, err := b.selectAll(kind)
	if err != nil {
		return "", nil, err
	}
	return ds.Where(whereExpression(p)).ToSQL()
}

func (b sqlBuilder) insert(kind Kind, rec Record, returning bool) (string, []any, error) {
	row, err := writable(kind, rec)
	if err != nil {
		return "", nil, err
	}
	ds := b.dialect.Insert(string(kind)).Prepared(true).Rows(goqu.Record(row))
	if returning {
		ds = ds.Returning(goqu.C(ColID))
	}
	return ds.ToSQL()
}

func (b sqlBuilder) replace(kind Kind, rec Record) (string, []any, error) {
	row, err := writable(kind, rec)
	if err != nil {
		return "", nil, err
	}
	if len(row) == 0 {
		return "", nil, fmt.Errorf("nothing to update on %s", kind)
	}
	return b.dialect.Update(string(kind)).Prepared(true).
		Set(goqu.Record(row)).
		Where(goqu.C(ColID).Eq(rec.ID())).
		ToSQL()
}

func (b sqlBuilder) delete(kind Kind, id int64) (string, []any, error) {
	if _, err := Columns(kind); err != nil {
		return "", nil, err
	}
	return b.dialect.Delete(string(kind)).Prepared(true).
		Where(goqu.C(ColID).Eq(id)).
		ToSQL()
}

// likeEscaper makes a search term literal inside a LIKE pattern. The pattern
// is emitted with ESCAPE '\' so both dialects agree on the escape character.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// whereExpression translates a validated predicate. Case-insensitive matches
// go through LOWER() so both dialects behave the same. SQLite's LOWER only
// folds ASCII letters.
func whereExpression(p Predicate) exp.Expression {
	exprs := make([]exp.Expression, 0, len(p.Conditions))
	for _, c := range p.Conditions {
		col := goqu.C(c.Column)
		switch c.Op {
		case OpEq:
			exprs = append(exprs, col.Eq(c.Value))
		case OpEqFold:
			exprs = append(exprs, goqu.Func("LOWER", col).Eq(strings.ToLower(fmt.Sprint(c.Value))))
		case OpIn:
			vals := c.Value.([]any)
			if len(vals) == 0 {
				exprs = append(exprs, goqu.L("1 = 0"))
				continue
			}
			exprs = append(exprs, col.In(vals...))
		case OpContainsFold:
			pattern := "%" + likeEscaper.Replace(strings.ToLower(fmt.Sprint(c.Value))) + "%"
			exprs = append(exprs, goqu.L(`LOWER(?) LIKE ? ESCAPE '\'`, col, pattern))
		}
	}
	if p.Any {
		return goqu.Or(exprs...)
	}
	return goqu.And(exprs...)
}
