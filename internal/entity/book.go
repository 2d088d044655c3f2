package entity

import "time"

// Book is a catalog entry. Category is loaded alongside the book on reads
// and is not owned by it.
type Book struct {
	ID          int64
	Name        string
	Author      string
	Description string
	Value       float64
	PublishDate time.Time
	CategoryID  int64
	Category    *Category
}

// Date truncates t to a calendar date in UTC.
func Date(t time.Time) time.Time {
	if t.IsZero() {
		return time.Time{}
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
