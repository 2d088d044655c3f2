package book

import (
	"time"

	"bookstore/internal/entity"
)

// DateLayout is the wire format of PublishDate.
const DateLayout = "2006-01-02"

func ToResult(b entity.Book) BookResult {
	res := BookResult{
		ID:          b.ID,
		Name:        b.Name,
		Author:      b.Author,
		Description: b.Description,
		Value:       b.Value,
		CategoryID:  b.CategoryID,
	}
	if !b.PublishDate.IsZero() {
		res.PublishDate = b.PublishDate.Format(DateLayout)
	}
	if b.Category != nil {
		res.CategoryName = b.Category.Name
	}
	return res
}

// ToResults never returns nil.
func ToResults(bs []entity.Book) []BookResult {
	out := make([]BookResult, 0, len(bs))
	for _, b := range bs {
		out = append(out, ToResult(b))
	}
	return out
}

// FromAdd expects in to have passed validation; an unparsable date maps to
// the zero time.
func FromAdd(in BookAdd) entity.Book {
	return entity.Book{
		Name:        in.Name,
		Author:      in.Author,
		Description: in.Description,
		Value:       in.Value,
		PublishDate: parseDate(in.PublishDate),
		CategoryID:  in.CategoryID,
	}
}

func FromEdit(in BookEdit) entity.Book {
	return entity.Book{
		ID:          in.ID,
		Name:        in.Name,
		Author:      in.Author,
		Description: in.Description,
		Value:       in.Value,
		PublishDate: parseDate(in.PublishDate),
		CategoryID:  in.CategoryID,
	}
}

func parseDate(s string) time.Time {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
