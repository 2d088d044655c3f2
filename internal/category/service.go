package category

import (
	"context"
	"fmt"
	"strings"

	"bookstore/internal/entity"
)

// Service provides category business rules.
type Service struct {
	repo  Repository
	books BookLookup
}

// NewService creates a new category service.
func NewService(repo Repository, books BookLookup) *Service {
	return &Service{repo: repo, books: books}
}

func (s *Service) GetAll(ctx context.Context) ([]entity.Category, error) {
	return s.repo.GetAll(ctx)
}

// GetByID returns entity.ErrNotFound when the category does not exist.
func (s *Service) GetByID(ctx context.Context, id int64) (entity.Category, error) {
	return s.repo.GetByID(ctx, id)
}

// Add stores a new category. Blank and duplicate names are rejected with
// entity.ErrValidation.
func (s *Service) Add(ctx context.Context, c entity.Category) (entity.Category, error) {
	c.Name = strings.TrimSpace(c.Name)
	if err := s.validate(ctx, c); err != nil {
		return entity.Category{}, err
	}
	return s.repo.Add(ctx, c)
}

// Update applies the same checks as Add, then overwrites the category.
// A missing id yields entity.ErrNotFound.
func (s *Service) Update(ctx context.Context, c entity.Category) error {
	c.Name = strings.TrimSpace(c.Name)
	if err := s.validate(ctx, c); err != nil {
		return err
	}
	return s.repo.Update(ctx, c)
}

// Remove deletes c unless a book still references it, in which case it
// returns false and an error wrapping entity.ErrOperationRejected.
//
// The reference check and the delete are separate store calls; a book added
// in between is not seen.
func (s *Service) Remove(ctx context.Context, c entity.Category) (bool, error) {
	books, err := s.books.GetByCategory(ctx, c.ID)
	if err != nil {
		return false, err
	}
	if len(books) > 0 {
		return false, fmt.Errorf("%w: category %d has %d book(s)", entity.ErrOperationRejected, c.ID, len(books))
	}
	return s.repo.Remove(ctx, c)
}

// Search matches category names case-insensitively. A blank term matches
// nothing.
func (s *Service) Search(ctx context.Context, name string) ([]entity.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return []entity.Category{}, nil
	}
	return s.repo.Search(ctx, name)
}

func (s *Service) validate(ctx context.Context, c entity.Category) error {
	if c.Name == "" {
		return fmt.Errorf("%w: category name is required", entity.ErrValidation)
	}
	same, err := s.repo.FindByName(ctx, c.Name)
	if err != nil {
		return err
	}
	for _, other := range same {
		if other.ID != c.ID {
			return fmt.Errorf("%w: category %q already exists", entity.ErrValidation, c.Name)
		}
	}
	return nil
}
