package book

import (
	"context"

	"bookstore/internal/entity"
)

//go:generate mockgen -source=ports.go -destination=mock_ports.go -package=book

// Repository defines the contract for book storage. Every returned book
// carries its Category.
type Repository interface {
	GetAll(ctx context.Context) ([]entity.Book, error)
	GetByID(ctx context.Context, id int64) (entity.Book, error)
	GetByCategory(ctx context.Context, categoryID int64) ([]entity.Book, error)
	Search(ctx context.Context, text string) ([]entity.Book, error)
	SearchWithCategory(ctx context.Context, text string) ([]entity.Book, error)
	FindByName(ctx context.Context, name string) ([]entity.Book, error)
	Add(ctx context.Context, b entity.Book) (entity.Book, error)
	Update(ctx context.Context, b entity.Book) error
	Remove(ctx context.Context, b entity.Book) (bool, error)
}

// CategoryLookup resolves a category by id. The category repository
// satisfies it.
type CategoryLookup interface {
	GetByID(ctx context.Context, id int64) (entity.Category, error)
}
