package category

import "bookstore/internal/entity"

func ToResult(c entity.Category) CategoryResult {
	return CategoryResult{ID: c.ID, Name: c.Name}
}

// ToResults never returns nil.
func ToResults(cs []entity.Category) []CategoryResult {
	out := make([]CategoryResult, 0, len(cs))
	for _, c := range cs {
		out = append(out, ToResult(c))
	}
	return out
}

func FromAdd(in CategoryAdd) entity.Category {
	return entity.Category{Name: in.Name}
}

func FromEdit(in CategoryEdit) entity.Category {
	return entity.Category{ID: in.ID, Name: in.Name}
}
