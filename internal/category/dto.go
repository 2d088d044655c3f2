package category

// CategoryResult is the category representation returned to clients.
type CategoryResult struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type CategoryAdd struct {
	Name string `json:"name" validate:"notblank,max=150"`
}

type CategoryEdit struct {
	ID   int64  `json:"id" validate:"required,gt=0"`
	Name string `json:"name" validate:"notblank,max=150"`
}
