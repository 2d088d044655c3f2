package store

import (
	"fmt"
	"strings"
)

type Operator int

const (
	OpEq Operator = iota
	// OpEqFold is a case-insensitive string equality.
	OpEqFold
	OpIn
	// OpContainsFold is a case-insensitive substring match.
	OpContainsFold
)

type Condition struct {
	Column string
	Op     Operator
	Value  any
}

// Predicate combines conditions with AND, or with OR when Any is set.
type Predicate struct {
	Conditions []Condition
	Any        bool
}

func Eq(col string, v any) Predicate {
	return Predicate{Conditions: []Condition{{Column: col, Op: OpEq, Value: v}}}
}

func EqFold(col, s string) Predicate {
	return Predicate{Conditions: []Condition{{Column: col, Op: OpEqFold, Value: s}}}
}

func In(col string, vals []any) Predicate {
	return Predicate{Conditions: []Condition{{Column: col, Op: OpIn, Value: vals}}}
}

// ContainsFold matches records where any of cols contains text, ignoring case.
func ContainsFold(text string, cols ...string) Predicate {
	p := Predicate{Any: true}
	for _, c := range cols {
		p.Conditions = append(p.Conditions, Condition{Column: c, Op: OpContainsFold, Value: text})
	}
	return p
}

func (p Predicate) validate(kind Kind) error {
	cols, err := Columns(kind)
	if err != nil {
		return err
	}
	if len(p.Conditions) == 0 {
		return fmt.Errorf("empty predicate on %s", kind)
	}
	for _, c := range p.Conditions {
		if !contains(cols, c.Column) {
			return fmt.Errorf("unknown column %q on %s", c.Column, kind)
		}
		if c.Op == OpIn {
			if _, ok := c.Value.([]any); !ok {
				return fmt.Errorf("IN on %q needs a []any value", c.Column)
			}
		}
	}
	return nil
}

func (p Predicate) matches(rec Record) bool {
	for _, c := range p.Conditions {
		ok := c.matches(rec)
		if p.Any && ok {
			return true
		}
		if !p.Any && !ok {
			return false
		}
	}
	return !p.Any
}

func (c Condition) matches(rec Record) bool {
	switch c.Op {
	case OpEq:
		return equal(rec[c.Column], c.Value)
	case OpEqFold:
		return strings.EqualFold(rec.String(c.Column), fmt.Sprint(c.Value))
	case OpIn:
		for _, v := range c.Value.([]any) {
			if equal(rec[c.Column], v) {
				return true
			}
		}
		return false
	case OpContainsFold:
		return strings.Contains(strings.ToLower(rec.String(c.Column)), strings.ToLower(fmt.Sprint(c.Value)))
	}
	return false
}

// equal compares values after widening integers, so an int64 column matches
// an int argument.
func equal(a, b any) bool {
	ai, aok := asInt64(a)
	bi, bok := asInt64(b)
	if aok && bok {
		return ai == bi
	}
	if bs, ok := a.([]byte); ok {
		a = string(bs)
	}
	if bs, ok := b.([]byte); ok {
		b = string(bs)
	}
	return a == b
}

func asInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	}
	return 0, false
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
