package category

import (
	"context"

	"bookstore/internal/entity"
)

//go:generate mockgen -source=ports.go -destination=mock_ports.go -package=category

// Repository defines the contract for category storage.
type Repository interface {
	GetAll(ctx context.Context) ([]entity.Category, error)
	GetByID(ctx context.Context, id int64) (entity.Category, error)
	Search(ctx context.Context, name string) ([]entity.Category, error)
	FindByName(ctx context.Context, name string) ([]entity.Category, error)
	Add(ctx context.Context, c entity.Category) (entity.Category, error)
	Update(ctx context.Context, c entity.Category) error
	Remove(ctx context.Context, c entity.Category) (bool, error)
}

// BookLookup reports the books filed under a category. The book repository
// satisfies it.
type BookLookup interface {
	GetByCategory(ctx context.Context, categoryID int64) ([]entity.Book, error)
}
