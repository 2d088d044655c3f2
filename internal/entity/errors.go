package entity

import "errors"

var (
	// ErrNotFound is returned when a lookup by id or predicate yields nothing.
	ErrNotFound = errors.New("not found")
	// ErrValidation covers malformed input and referential checks done before a write.
	ErrValidation = errors.New("validation failed")
	// ErrOperationRejected is returned when a business rule forbids the operation.
	ErrOperationRejected = errors.New("operation rejected")
)
