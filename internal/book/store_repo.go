package book

import (
	"context"
	"errors"
	"sort"

	"bookstore/internal/entity"
	"bookstore/internal/store"
)

const (
	colName        = "name"
	colAuthor      = "author"
	colDescription = "description"
	colValue       = "value"
	colPublishDate = "publish_date"
	colCategoryID  = "category_id"
)

// StoreRepo implements Repository on top of a store.Store. Categories are
// loaded with one extra query per call.
type StoreRepo struct {
	store store.Store
}

func NewStoreRepo(s store.Store) *StoreRepo {
	return &StoreRepo{store: s}
}

func (r *StoreRepo) GetAll(ctx context.Context) ([]entity.Book, error) {
	recs, err := r.store.FindAll(ctx, store.Books)
	if err != nil {
		return nil, err
	}
	return r.withCategories(ctx, recs)
}

func (r *StoreRepo) GetByID(ctx context.Context, id int64) (entity.Book, error) {
	rec, err := r.store.FindByID(ctx, store.Books, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return entity.Book{}, entity.ErrNotFound
		}
		return entity.Book{}, err
	}
	books, err := r.withCategories(ctx, []store.Record{rec})
	if err != nil {
		return entity.Book{}, err
	}
	return books[0], nil
}

func (r *StoreRepo) GetByCategory(ctx context.Context, categoryID int64) ([]entity.Book, error) {
	return r.find(ctx, store.Eq(colCategoryID, categoryID))
}

func (r *StoreRepo) Search(ctx context.Context, text string) ([]entity.Book, error) {
	return r.find(ctx, store.ContainsFold(text, colName, colAuthor, colDescription))
}

// SearchWithCategory matches like Search and also returns books whose
// category name contains text.
func (r *StoreRepo) SearchWithCategory(ctx context.Context, text string) ([]entity.Book, error) {
	recs, err := r.store.FindByPredicate(ctx, store.Books, store.ContainsFold(text, colName, colAuthor, colDescription))
	if err != nil {
		return nil, err
	}

	cats, err := r.store.FindByPredicate(ctx, store.Categories, store.ContainsFold(text, colName))
	if err != nil {
		return nil, err
	}
	if len(cats) > 0 {
		ids := make([]any, 0, len(cats))
		for _, c := range cats {
			ids = append(ids, c.ID())
		}
		byCategory, err := r.store.FindByPredicate(ctx, store.Books, store.In(colCategoryID, ids))
		if err != nil {
			return nil, err
		}
		recs = merge(recs, byCategory)
	}
	return r.withCategories(ctx, recs)
}

func (r *StoreRepo) FindByName(ctx context.Context, name string) ([]entity.Book, error) {
	return r.find(ctx, store.EqFold(colName, name))
}

func (r *StoreRepo) Add(ctx context.Context, b entity.Book) (entity.Book, error) {
	id, err := r.store.Insert(ctx, store.Books, toRecord(b))
	if err != nil {
		return entity.Book{}, err
	}
	b.ID = id
	b.PublishDate = entity.Date(b.PublishDate)
	return b, nil
}

func (r *StoreRepo) Update(ctx context.Context, b entity.Book) error {
	err := r.store.Replace(ctx, store.Books, toRecord(b))
	if errors.Is(err, store.ErrNotFound) {
		return entity.ErrNotFound
	}
	return err
}

func (r *StoreRepo) Remove(ctx context.Context, b entity.Book) (bool, error) {
	return r.store.Delete(ctx, store.Books, b.ID)
}

func (r *StoreRepo) find(ctx context.Context, p store.Predicate) ([]entity.Book, error) {
	recs, err := r.store.FindByPredicate(ctx, store.Books, p)
	if err != nil {
		return nil, err
	}
	return r.withCategories(ctx, recs)
}

// withCategories maps recs to books and attaches each book's category.
func (r *StoreRepo) withCategories(ctx context.Context, recs []store.Record) ([]entity.Book, error) {
	books := make([]entity.Book, 0, len(recs))
	if len(recs) == 0 {
		return books, nil
	}

	seen := make(map[int64]bool)
	ids := make([]any, 0, len(recs))
	for _, rec := range recs {
		id := rec.Int64(colCategoryID)
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}

	cats, err := r.store.FindByPredicate(ctx, store.Categories, store.In(store.ColID, ids))
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]*entity.Category, len(cats))
	for _, rec := range cats {
		byID[rec.ID()] = &entity.Category{ID: rec.ID(), Name: rec.String(colName)}
	}

	for _, rec := range recs {
		b := fromRecord(rec)
		if c, ok := byID[b.CategoryID]; ok {
			cp := *c
			b.Category = &cp
		}
		books = append(books, b)
	}
	return books, nil
}

// merge returns the union of a and b by id, ordered by id.
func merge(a, b []store.Record) []store.Record {
	seen := make(map[int64]bool, len(a))
	out := make([]store.Record, 0, len(a)+len(b))
	for _, rec := range append(a, b...) {
		if seen[rec.ID()] {
			continue
		}
		seen[rec.ID()] = true
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out
}

func toRecord(b entity.Book) store.Record {
	return store.Record{
		store.ColID:    b.ID,
		colName:        b.Name,
		colAuthor:      b.Author,
		colDescription: b.Description,
		colValue:       b.Value,
		colPublishDate: entity.Date(b.PublishDate),
		colCategoryID:  b.CategoryID,
	}
}

func fromRecord(rec store.Record) entity.Book {
	return entity.Book{
		ID:          rec.ID(),
		Name:        rec.String(colName),
		Author:      rec.String(colAuthor),
		Description: rec.String(colDescription),
		Value:       rec.Float64(colValue),
		PublishDate: entity.Date(rec.Time(colPublishDate)),
		CategoryID:  rec.Int64(colCategoryID),
	}
}
