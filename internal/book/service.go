package book

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"bookstore/internal/entity"
)

// Service provides book-related business logic.
type Service struct {
	repo       Repository
	categories CategoryLookup
}

// NewService creates a new book service.
func NewService(repo Repository, categories CategoryLookup) *Service {
	return &Service{repo: repo, categories: categories}
}

func (s *Service) GetAll(ctx context.Context) ([]entity.Book, error) {
	return s.repo.GetAll(ctx)
}

// GetByID returns entity.ErrNotFound when the book does not exist.
func (s *Service) GetByID(ctx context.Context, id int64) (entity.Book, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetByCategory(ctx context.Context, categoryID int64) ([]entity.Book, error) {
	return s.repo.GetByCategory(ctx, categoryID)
}

// Add stores a new book after checking its fields, its category and the
// uniqueness of its name. Nothing is written when a check fails.
func (s *Service) Add(ctx context.Context, b entity.Book) (entity.Book, error) {
	b = normalize(b)
	if err := s.validate(ctx, b); err != nil {
		return entity.Book{}, err
	}
	return s.repo.Add(ctx, b)
}

// Update applies the same checks as Add, then overwrites the book.
// A missing id yields entity.ErrNotFound.
func (s *Service) Update(ctx context.Context, b entity.Book) error {
	b = normalize(b)
	if err := s.validate(ctx, b); err != nil {
		return err
	}
	return s.repo.Update(ctx, b)
}

func (s *Service) Remove(ctx context.Context, b entity.Book) (bool, error) {
	return s.repo.Remove(ctx, b)
}

// Search matches name, author and description case-insensitively. A blank
// term matches nothing.
func (s *Service) Search(ctx context.Context, text string) ([]entity.Book, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return []entity.Book{}, nil
	}
	return s.repo.Search(ctx, text)
}

// SearchWithCategory is Search extended to category names.
func (s *Service) SearchWithCategory(ctx context.Context, text string) ([]entity.Book, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return []entity.Book{}, nil
	}
	return s.repo.SearchWithCategory(ctx, text)
}

func normalize(b entity.Book) entity.Book {
	b.Name = strings.TrimSpace(b.Name)
	b.Author = strings.TrimSpace(b.Author)
	b.Description = strings.TrimSpace(b.Description)
	b.PublishDate = entity.Date(b.PublishDate)
	b.Category = nil
	return b
}

// validate checks b before a write. The category check and the write are
// separate store calls; a category removed in between is not seen.
func (s *Service) validate(ctx context.Context, b entity.Book) error {
	switch {
	case b.Name == "":
		return fmt.Errorf("%w: book name is required", entity.ErrValidation)
	case b.Author == "":
		return fmt.Errorf("%w: book author is required", entity.ErrValidation)
	case b.Value < 0:
		return fmt.Errorf("%w: book value must not be negative", entity.ErrValidation)
	}

	if _, err := s.categories.GetByID(ctx, b.CategoryID); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return fmt.Errorf("%w: category %d does not exist", entity.ErrValidation, b.CategoryID)
		}
		return err
	}

	same, err := s.repo.FindByName(ctx, b.Name)
	if err != nil {
		return err
	}
	for _, other := range same {
		if other.ID != b.ID {
			return fmt.Errorf("%w: book %q already exists", entity.ErrValidation, b.Name)
		}
	}
	return nil
}
