package book

import (
	"testing"
	"time"

	"bookstore/internal/entity"

	"github.com/stretchr/testify/assert"
)

func TestToResult(t *testing.T) {
	b := dune(1)
	b.ID = 5
	b.Category = &entity.Category{ID: 1, Name: "Fiction"}

	assert.Equal(t, BookResult{
		ID:           5,
		Name:         "Dune",
		Author:       "Frank Herbert",
		Description:  "Desert planet",
		Value:        9.99,
		PublishDate:  "1965-08-01",
		CategoryID:   1,
		CategoryName: "Fiction",
	}, ToResult(b))

	assert.Equal(t, "", ToResult(entity.Book{}).PublishDate)
	assert.NotNil(t, ToResults(nil))
}

func TestFromEdit(t *testing.T) {
	b := FromEdit(BookEdit{ID: 2, Name: "Dune", Author: "Frank Herbert", PublishDate: "1965-08-01", CategoryID: 1})

	assert.Equal(t, int64(2), b.ID)
	assert.Equal(t, time.Date(1965, time.August, 1, 0, 0, 0, 0, time.UTC), b.PublishDate)
	assert.True(t, FromAdd(BookAdd{PublishDate: "bad"}).PublishDate.IsZero())
}
