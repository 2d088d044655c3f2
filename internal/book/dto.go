package book

// BookResult is the book representation returned to clients.
type BookResult struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Author       string  `json:"author"`
	Description  string  `json:"description"`
	Value        float64 `json:"value"`
	PublishDate  string  `json:"publishDate"`
	CategoryID   int64   `json:"categoryId"`
	CategoryName string  `json:"categoryName,omitempty"`
}

type BookAdd struct {
	Name        string  `json:"name" validate:"notblank,min=2,max=150"`
	Author      string  `json:"author" validate:"notblank,min=2,max=150"`
	Description string  `json:"description" validate:"max=350"`
	Value       float64 `json:"value" validate:"gte=0,lt=10000000000,cents"`
	PublishDate string  `json:"publishDate" validate:"required,datetime=2006-01-02"`
	CategoryID  int64   `json:"categoryId" validate:"required,gt=0"`
}

type BookEdit struct {
	ID          int64   `json:"id" validate:"required,gt=0"`
	Name        string  `json:"name" validate:"notblank,min=2,max=150"`
	Author      string  `json:"author" validate:"notblank,min=2,max=150"`
	Description string  `json:"description" validate:"max=350"`
	Value       float64 `json:"value" validate:"gte=0,lt=10000000000,cents"`
	PublishDate string  `json:"publishDate" validate:"required,datetime=2006-01-02"`
	CategoryID  int64   `json:"categoryId" validate:"required,gt=0"`
}
