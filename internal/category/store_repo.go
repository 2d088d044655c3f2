package category

import (
	"context"
	"errors"

	"bookstore/internal/entity"
	"bookstore/internal/store"
)

const colName = "name"

// StoreRepo implements Repository on top of a store.Store.
type StoreRepo struct {
	store store.Store
}

func NewStoreRepo(s store.Store) *StoreRepo {
	return &StoreRepo{store: s}
}

func (r *StoreRepo) GetAll(ctx context.Context) ([]entity.Category, error) {
	recs, err := r.store.FindAll(ctx, store.Categories)
	if err != nil {
		return nil, err
	}
	return fromRecords(recs), nil
}

func (r *StoreRepo) GetByID(ctx context.Context, id int64) (entity.Category, error) {
	rec, err := r.store.FindByID(ctx, store.Categories, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return entity.Category{}, entity.ErrNotFound
		}
		return entity.Category{}, err
	}
	return fromRecord(rec), nil
}

func (r *StoreRepo) Search(ctx context.Context, name string) ([]entity.Category, error) {
	recs, err := r.store.FindByPredicate(ctx, store.Categories, store.ContainsFold(name, colName))
	if err != nil {
		return nil, err
	}
	return fromRecords(recs), nil
}

func (r *StoreRepo) FindByName(ctx context.Context, name string) ([]entity.Category, error) {
	recs, err := r.store.FindByPredicate(ctx, store.Categories, store.EqFold(colName, name))
	if err != nil {
		return nil, err
	}
	return fromRecords(recs), nil
}

func (r *StoreRepo) Add(ctx context.Context, c entity.Category) (entity.Category, error) {
	id, err := r.store.Insert(ctx, store.Categories, toRecord(c))
	if err != nil {
		return entity.Category{}, err
	}
	c.ID = id
	return c, nil
}

func (r *StoreRepo) Update(ctx context.Context, c entity.Category) error {
	err := r.store.Replace(ctx, store.Categories, toRecord(c))
	if errors.Is(err, store.ErrNotFound) {
		return entity.ErrNotFound
	}
	return err
}

func (r *StoreRepo) Remove(ctx context.Context, c entity.Category) (bool, error) {
	return r.store.Delete(ctx, store.Categories, c.ID)
}

func toRecord(c entity.Category) store.Record {
	return store.Record{
		store.ColID: c.ID,
		colName:     c.Name,
	}
}

func fromRecord(rec store.Record) entity.Category {
	return entity.Category{
		ID:   rec.ID(),
		Name: rec.String(colName),
	}
}

func fromRecords(recs []store.Record) []entity.Category {
	out := make([]entity.Category, 0, len(recs))
	for _, rec := range recs {
		out = append(out, fromRecord(rec))
	}
	return out
}
