package service

import "fmt"

// Business-rule errors carry a stable kind so handlers can map them to
// HTTP statuses without string matching. Messages are user-facing; no
// internals leak through them.

// NotFoundError: a referenced item code or keyed record does not exist.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

func notFound(format string, args ...interface{}) *NotFoundError {
	return &NotFoundError{Message: fmt.Sprintf(format, args...)}
}

// ConflictError: creating a record whose unique key already exists.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

// InsufficientStockError: a sale line asks for more than is on the shelf.
type InsufficientStockError struct {
	ItemName string
}

func (e *InsufficientStockError) Error() string {
	return "Insufficient stock for " + e.ItemName
}

// ValidationError: the request body failed struct validation.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }
