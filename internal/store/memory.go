package store

import (
	"context"
	"sort"
	"sync"
)

// Memory is an in-process Store. Ids come from a per-kind counter and are
// never handed out twice.
type Memory struct {
	mu     sync.RWMutex
	tables map[Kind]map[int64]Record
	nextID map[Kind]int64
}

func NewMemory() *Memory {
	m := &Memory{
		tables: make(map[Kind]map[int64]Record),
		nextID: make(map[Kind]int64),
	}
	for kind := range columns {
		m.tables[kind] = make(map[int64]Record)
	}
	return m
}

func (m *Memory) table(kind Kind) (map[int64]Record, error) {
	t, ok := m.tables[kind]
	if !ok {
		_, err := Columns(kind)
		return nil, err
	}
	return t, nil
}

func (m *Memory) FindAll(ctx context.Context, kind Kind) ([]Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	t, err := m.table(kind)
	if err != nil {
		return nil, err
	}
	return sorted(t, nil), nil
}

func (m *Memory) FindByID(ctx context.Context, kind Kind, id int64) (Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	t, err := m.table(kind)
	if err != nil {
		return nil, err
	}
	rec, ok := t[id]
	if !ok {
		return nil, ErrNotFound
	}
	return rec.clone(), nil
}

func (m *Memory) FindByPredicate(ctx context.Context, kind Kind, p Predicate) ([]Record, error) {
	if err := p.validate(kind); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	t, err := m.table(kind)
	if err != nil {
		return nil, err
	}
	return sorted(t, p.matches), nil
}

func (m *Memory) Insert(ctx context.Context, kind Kind, rec Record) (int64, error) {
	row, err := writable(kind, rec)
	if err != nil {
		return 0, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID[kind]++
	id := m.nextID[kind]
	row[ColID] = id
	m.tables[kind][id] = row
	return id, nil
}

func (m *Memory) Replace(ctx context.Context, kind Kind, rec Record) error {
	row, err := writable(kind, rec)
	if err != nil {
		return err
	}
	id := rec.ID()

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.tables[kind][id]; !ok {
		return ErrNotFound
	}
	row[ColID] = id
	m.tables[kind][id] = row
	return nil
}

func (m *Memory) Delete(ctx context.Context, kind Kind, id int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, err := m.table(kind)
	if err != nil {
		return false, err
	}
	if _, ok := t[id]; !ok {
		return false, nil
	}
	delete(t, id)
	return true, nil
}

func (m *Memory) Ping(ctx context.Context) error { return nil }

func (m *Memory) Close() {}

func sorted(t map[int64]Record, keep func(Record) bool) []Record {
	out := make([]Record, 0, len(t))
	for _, rec := range t {
		if keep == nil || keep(rec) {
			out = append(out, rec.clone())
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out
}
