package category

import (
	"context"
	"errors"
	"testing"

	"bookstore/internal/entity"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (*Service, *MockRepository, *MockBookLookup) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepository(ctrl)
	books := NewMockBookLookup(ctrl)
	return NewService(repo, books), repo, books
}

func TestService_Add(t *testing.T) {
	ctx := context.Background()

	t.Run("trims and stores", func(t *testing.T) {
		svc, repo, _ := newTestService(t)
		repo.EXPECT().FindByName(gomock.Any(), "Fiction").Return(nil, nil)
		repo.EXPECT().Add(gomock.Any(), entity.Category{Name: "Fiction"}).Return(entity.Category{ID: 1, Name: "Fiction"}, nil)

		c, err := svc.Add(ctx, entity.Category{Name: "  Fiction "})
		require.NoError(t, err)
		assert.Equal(t, entity.Category{ID: 1, Name: "Fiction"}, c)
	})

	t.Run("blank name", func(t *testing.T) {
		svc, _, _ := newTestService(t)

		_, err := svc.Add(ctx, entity.Category{Name: "   "})
		assert.ErrorIs(t, err, entity.ErrValidation)
	})

	t.Run("duplicate name", func(t *testing.T) {
		svc, repo, _ := newTestService(t)
		repo.EXPECT().FindByName(gomock.Any(), "fiction").Return([]entity.Category{{ID: 1, Name: "Fiction"}}, nil)

		_, err := svc.Add(ctx, entity.Category{Name: "fiction"})
		assert.ErrorIs(t, err, entity.ErrValidation)
	})

	t.Run("store failure", func(t *testing.T) {
		svc, repo, _ := newTestService(t)
		boom := errors.New("boom")
		repo.EXPECT().FindByName(gomock.Any(), "Fiction").Return(nil, boom)

		_, err := svc.Add(ctx, entity.Category{Name: "Fiction"})
		assert.ErrorIs(t, err, boom)
	})
}

func TestService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("same name on same id is allowed", func(t *testing.T) {
		svc, repo, _ := newTestService(t)
		c := entity.Category{ID: 1, Name: "Fiction"}
		repo.EXPECT().FindByName(gomock.Any(), "Fiction").Return([]entity.Category{c}, nil)
		repo.EXPECT().Update(gomock.Any(), c).Return(nil)

		assert.NoError(t, svc.Update(ctx, c))
	})

	t.Run("absent id", func(t *testing.T) {
		svc, repo, _ := newTestService(t)
		c := entity.Category{ID: 99, Name: "Fiction"}
		repo.EXPECT().FindByName(gomock.Any(), "Fiction").Return(nil, nil)
		repo.EXPECT().Update(gomock.Any(), c).Return(entity.ErrNotFound)

		assert.ErrorIs(t, svc.Update(ctx, c), entity.ErrNotFound)
	})
}

func TestService_Remove(t *testing.T) {
	ctx := context.Background()
	c := entity.Category{ID: 1, Name: "Fiction"}

	t.Run("unreferenced", func(t *testing.T) {
		svc, repo, books := newTestService(t)
		books.EXPECT().GetByCategory(gomock.Any(), int64(1)).Return([]entity.Book{}, nil)
		repo.EXPECT().Remove(gomock.Any(), c).Return(true, nil)

		removed, err := svc.Remove(ctx, c)
		require.NoError(t, err)
		assert.True(t, removed)
	})

	t.Run("referenced by a book", func(t *testing.T) {
		svc, _, books := newTestService(t)
		books.EXPECT().GetByCategory(gomock.Any(), int64(1)).Return([]entity.Book{{ID: 5, Name: "Dune", CategoryID: 1}}, nil)

		removed, err := svc.Remove(ctx, c)
		assert.False(t, removed)
		assert.ErrorIs(t, err, entity.ErrOperationRejected)
	})
}

func TestService_Search(t *testing.T) {
	ctx := context.Background()

	t.Run("blank text skips the store", func(t *testing.T) {
		svc, _, _ := newTestService(t)

		found, err := svc.Search(ctx, " ")
		require.NoError(t, err)
		assert.NotNil(t, found)
		assert.Empty(t, found)
	})

	t.Run("delegates", func(t *testing.T) {
		svc, repo, _ := newTestService(t)
		repo.EXPECT().Search(gomock.Any(), "fic").Return([]entity.Category{{ID: 1, Name: "Fiction"}}, nil)

		found, err := svc.Search(ctx, "fic")
		require.NoError(t, err)
		assert.Len(t, found, 1)
	})
}
